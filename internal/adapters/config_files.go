package adapters

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"beast/internal/core"
	"beast/internal/ports"
	"beast/internal/shared"
	"beast/internal/types"
)

// ConfigFilesAdapter renders CMake config files from their ".dist"
// templates inside the cmake config directory.
type ConfigFilesAdapter struct {
	FS        afero.Fs
	ConfigDir string
}

func NewConfigFilesAdapter(fs afero.Fs, configDir string) ConfigFilesAdapter {
	return ConfigFilesAdapter{FS: fs, ConfigDir: configDir}
}

func (a ConfigFilesAdapter) GenerateMain(config types.CMakeConfig) error {
	values, err := core.MainConfigValues(config)
	if err != nil {
		return err
	}
	return a.render(config.ConfigFiles, values)
}

// GenerateTarget renders the target's config file. Targets without a
// config template are skipped.
func (a ConfigFilesAdapter) GenerateTarget(target *types.TargetConfig) error {
	values, ok := core.TargetConfigValues(target, a.ConfigDir)
	if !ok {
		log.Debug().Str("target", target.Name).Msg("target has no config template, skipping")
		return nil
	}
	return a.render(*target.ConfigFiles, values)
}

func (a ConfigFilesAdapter) render(files types.ConfigFiles, values map[string]string) error {
	dist := filepath.Join(a.ConfigDir, filepath.FromSlash(files.DistFilename))
	dest := filepath.Join(a.ConfigDir, filepath.FromSlash(files.Filename))
	data, err := afero.ReadFile(a.FS, dist)
	if err != nil {
		return shared.IOError("failed to read config template: "+dist, err)
	}
	if err := a.FS.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return shared.IOError("failed to create config directory: "+filepath.Dir(dest), err)
	}
	content := core.RenderPlaceholders(string(data), values)
	if err := afero.WriteFile(a.FS, dest, []byte(content), 0o644); err != nil {
		return shared.IOError("failed to write config file: "+dest, err)
	}
	log.Debug().Str("template", dist).Str("file", dest).Msg("config file generated")
	return nil
}

var _ ports.ConfigFilesPort = ConfigFilesAdapter{}
