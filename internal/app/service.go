package app

import (
	"context"
	"path/filepath"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/spf13/afero"

	"beast/internal/adapters"
	"beast/internal/core"
	"beast/internal/ports"
	"beast/internal/types"
)

type Service struct {
	Store        ports.ManifestPort
	Manifest     *types.Manifest
	Paths        core.PathResolver
	ClassFiles   ports.ClassFilesPort
	ConfigFiles  ports.ConfigFilesPort
	BuildTool    ports.BuildToolPort
	Dependencies ports.DependencyToolPort
	FS           afero.Fs
	ProjectDir   string
	BuildDir     string
}

// NewService loads the manifest once and wires the adapters around it.
func NewService(ctx context.Context, settings Settings) (Service, error) {
	assert.NotEmpty(ctx, settings.ProjectDir, "project directory must be resolved")
	settings = settings.withDefaults()

	fs := afero.NewOsFs()
	store := adapters.NewManifestFileAdapter(fs, settings.manifestPath())
	manifest, err := store.Load()
	if err != nil {
		return Service{}, err
	}
	configDir := filepath.Join(settings.ProjectDir, filepath.FromSlash(manifest.CMake.DirectoryName))
	buildDir := settings.buildDirPath()
	runner := adapters.NewCommandRunnerAdapter()

	return Service{
		Store:        store,
		Manifest:     manifest,
		Paths:        core.NewPathResolver(adapters.NewVariablesFileAdapter(fs, configDir)),
		ClassFiles:   adapters.NewClassFilesAdapter(fs),
		ConfigFiles:  adapters.NewConfigFilesAdapter(fs, configDir),
		BuildTool:    adapters.NewCMakeAdapter(runner, settings.CMakeBinary, settings.ProjectDir, buildDir),
		Dependencies: adapters.NewConanAdapter(runner, settings.ConanBinary, settings.ConanGenerator, buildDir),
		FS:           fs,
		ProjectDir:   settings.ProjectDir,
		BuildDir:     buildDir,
	}, nil
}
