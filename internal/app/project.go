package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"beast/internal/shared"
	"beast/internal/types"
)

// Init recreates the build directory from scratch, installs dependencies
// for every build configuration and generates the CMake config files.
func (s Service) Init(ctx context.Context) (InitResult, error) {
	result := InitResult{BuildDir: s.BuildDir}
	exists, err := s.dirExists(s.BuildDir)
	if err != nil {
		return InitResult{}, err
	}
	if exists {
		log.Info().Str("dir", s.BuildDir).Msg("removing build directory")
		if err := s.FS.RemoveAll(s.BuildDir); err != nil {
			return InitResult{}, shared.IOError("failed to remove build directory", err)
		}
		result.Removed = true
	}
	log.Info().Str("dir", s.BuildDir).Msg("creating build directory")
	if err := s.FS.MkdirAll(s.BuildDir, 0o755); err != nil {
		return InitResult{}, shared.IOError("failed to create build directory", err)
	}
	if err := s.Install(ctx); err != nil {
		return InitResult{}, err
	}
	if err := s.GenerateConfigs(ctx); err != nil {
		return InitResult{}, err
	}
	return result, nil
}

// Configure regenerates the config files and configures the CMake project.
func (s Service) Configure(ctx context.Context) error {
	if err := s.GenerateConfigs(ctx); err != nil {
		return err
	}
	return s.BuildTool.Configure(ctx)
}

// Install installs dependencies for every build configuration in order.
func (s Service) Install(ctx context.Context) error {
	for _, config := range types.BuildConfigs() {
		if err := s.Dependencies.Install(ctx, config); err != nil {
			return err
		}
	}
	return nil
}

// Build builds one configuration, or all of them when none is given.
func (s Service) Build(ctx context.Context, req BuildRequest) (BuildResult, error) {
	configs := types.BuildConfigs()
	if name := strings.TrimSpace(req.Config); name != "" {
		config, ok := types.ParseBuildConfig(name)
		if !ok {
			return BuildResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("'%s' is not a valid configuration, available configurations are: %s", name, AvailableBuildConfigs()))
		}
		configs = []types.BuildConfig{config}
	} else {
		log.Info().Msg("no configuration specified, building all configurations")
	}
	for _, config := range configs {
		if err := s.BuildTool.Build(ctx, config); err != nil {
			return BuildResult{}, err
		}
	}
	return BuildResult{Configs: configs}, nil
}

// GenerateConfigs renders the main config file and every target config.
func (s Service) GenerateConfigs(ctx context.Context) error {
	if err := s.ConfigFiles.GenerateMain(s.Manifest.CMake); err != nil {
		return err
	}
	for _, key := range s.Manifest.CMake.Targets.Keys() {
		if err := ctx.Err(); err != nil {
			return err
		}
		target, _ := s.Manifest.CMake.Targets.Get(key)
		if err := s.ConfigFiles.GenerateTarget(target); err != nil {
			return err
		}
	}
	return nil
}

// ListTargets returns target names in manifest order.
func (s Service) ListTargets() []string {
	return s.Manifest.CMake.Targets.Keys()
}

// AvailableBuildConfigs renders the build configurations as "[a, b, ...]".
func AvailableBuildConfigs() string {
	names := make([]string, 0, len(types.BuildConfigs()))
	for _, config := range types.BuildConfigs() {
		names = append(names, string(config))
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func (s Service) dirExists(path string) (bool, error) {
	info, err := s.FS.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, shared.IOError("failed to stat "+path, err)
	}
	return info.IsDir(), nil
}
