package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"beast/internal/app"
	"beast/internal/types"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   string(types.CommandInit),
		Short: "Recreate the build directory, install dependencies and generate CMake configs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			result, err := service.Init(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), labelled("build directory", result.BuildDir))
			return nil
		},
	}
}

func newConfigureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   string(types.CommandConfigure),
		Short: "Generate CMake configs and configure the project inside the build directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			return service.Configure(cmd.Context())
		},
	}
}

func newInstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   string(types.CommandInstall),
		Short: "Install or update project dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			return service.Install(cmd.Context())
		},
	}
}

type buildOptions struct {
	Config string
}

func newBuildCommand() *cobra.Command {
	opts := buildOptions{}
	cmd := &cobra.Command{
		Use:   string(types.CommandBuild),
		Short: "Build the project",
		Long: "Builds the project in the given configuration. The available configurations are: " +
			app.AvailableBuildConfigs() + ".\nWithout --config-name every configuration is built.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newAppService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			result, err := service.Build(cmd.Context(), app.BuildRequest{
				Config: resolveString(cmd, opts.Config, "build_config", "config-name"),
			})
			if err != nil {
				return err
			}
			for _, config := range result.Configs {
				fmt.Fprintln(cmd.OutOrStdout(), labelled("built", string(config)))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Config, "config-name", "c", "", "Build configuration (default: all)")
	_ = viper.BindPFlag("build_config", cmd.Flags().Lookup("config-name"))
	return cmd
}
