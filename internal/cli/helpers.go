package cli

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"beast/internal/app"
)

// newAppService locates the project and loads its manifest.
func newAppService(ctx context.Context, cmd *cobra.Command) (app.Service, error) {
	manifest := resolveString(cmd, "", "manifest", "manifest")
	projectDir := resolveString(cmd, "", "project_dir", "project-dir")
	if strings.TrimSpace(projectDir) == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return app.Service{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to determine working directory").
				WithCause(err)
		}
		projectDir, err = app.DiscoverProjectDir(cwd, manifest)
		if err != nil {
			return app.Service{}, err
		}
	}
	return app.NewService(ctx, app.Settings{
		ProjectDir:     projectDir,
		ManifestPath:   manifest,
		BuildDirName:   resolveString(cmd, "", "build_dir", "build-dir"),
		CMakeBinary:    viper.GetString("cmake_bin"),
		ConanBinary:    viper.GetString("conan_bin"),
		ConanGenerator: viper.GetString("conan_generator"),
	})
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		if flag := lookupFlag(cmd, flagName); flag != nil && value == "" {
			return flag.Value.String()
		}
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if flag := lookupFlag(cmd, name); flag != nil {
		return flag.Changed
	}
	return false
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return nil
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag
	}
	if flag := cmd.InheritedFlags().Lookup(name); flag != nil {
		return flag
	}
	return cmd.PersistentFlags().Lookup(name)
}
