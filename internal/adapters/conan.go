package adapters

import (
	"context"

	"beast/internal/ports"
	"beast/internal/types"
)

const defaultConanGenerator = "cmake_multi"

// ConanAdapter installs project dependencies into the build directory.
type ConanAdapter struct {
	Runner    ports.CommandRunnerPort
	Binary    string
	Generator string
	BuildDir  string
}

func NewConanAdapter(runner ports.CommandRunnerPort, binary string, generator string, buildDir string) ConanAdapter {
	if binary == "" {
		binary = "conan"
	}
	if generator == "" {
		generator = defaultConanGenerator
	}
	return ConanAdapter{Runner: runner, Binary: binary, Generator: generator, BuildDir: buildDir}
}

// Install runs "conan install .. -g <generator> --build=missing
// -s build_type=<config>" from the build directory.
func (a ConanAdapter) Install(ctx context.Context, config types.BuildConfig) error {
	return runChecked(ctx, a.Runner, a.BuildDir, a.Binary,
		"install", "..",
		"-g", a.Generator,
		"--build=missing",
		"-s", "build_type="+string(config),
	)
}

var _ ports.DependencyToolPort = ConanAdapter{}
