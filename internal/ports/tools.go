package ports

import (
	"context"

	"beast/internal/types"
)

// CommandRunnerPort runs an external program in dir and returns its exit
// code.
type CommandRunnerPort interface {
	Run(ctx context.Context, dir string, name string, args ...string) (int, error)
}

// BuildToolPort drives the build-configuration tool.
type BuildToolPort interface {
	Configure(ctx context.Context) error
	Build(ctx context.Context, config types.BuildConfig) error
}

// DependencyToolPort drives the package-dependency tool.
type DependencyToolPort interface {
	Install(ctx context.Context, config types.BuildConfig) error
}

// ConfigFilesPort renders the build-tool config files from their templates.
type ConfigFilesPort interface {
	GenerateMain(config types.CMakeConfig) error
	GenerateTarget(target *types.TargetConfig) error
}
