package adapters

import (
	"context"

	"beast/internal/ports"
	"beast/internal/types"
)

// CMakeAdapter configures the project into the build directory and builds
// it.
type CMakeAdapter struct {
	Runner     ports.CommandRunnerPort
	Binary     string
	ProjectDir string
	BuildDir   string
}

func NewCMakeAdapter(runner ports.CommandRunnerPort, binary string, projectDir string, buildDir string) CMakeAdapter {
	if binary == "" {
		binary = "cmake"
	}
	return CMakeAdapter{Runner: runner, Binary: binary, ProjectDir: projectDir, BuildDir: buildDir}
}

// Configure runs "cmake -S . -B <build dir>" from the project directory.
func (a CMakeAdapter) Configure(ctx context.Context) error {
	return runChecked(ctx, a.Runner, a.ProjectDir, a.Binary, "-S", ".", "-B", a.BuildDir)
}

// Build runs "cmake --build . --config <config>" from the build directory.
func (a CMakeAdapter) Build(ctx context.Context, config types.BuildConfig) error {
	return runChecked(ctx, a.Runner, a.BuildDir, a.Binary, "--build", ".", "--config", string(config))
}

var _ ports.BuildToolPort = CMakeAdapter{}
