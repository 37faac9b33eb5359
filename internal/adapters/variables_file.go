package adapters

import (
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"

	"beast/internal/core"
	"beast/internal/ports"
	"beast/internal/types"
)

// VariablesFileAdapter reads target variables files written by CMake into
// the cmake config directory.
type VariablesFileAdapter struct {
	FS        afero.Fs
	ConfigDir string
}

func NewVariablesFileAdapter(fs afero.Fs, configDir string) VariablesFileAdapter {
	return VariablesFileAdapter{FS: fs, ConfigDir: configDir}
}

// Load reads the target's variables file on every call. Targets without a
// variables entry have an empty mapping.
func (a VariablesFileAdapter) Load(target *types.TargetConfig) (map[string]string, error) {
	if target.Variables == nil || target.Variables.FilePath == "" {
		return map[string]string{}, nil
	}
	path := a.Path(target)
	data, err := afero.ReadFile(a.FS, path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read target variables file: " + path).
			WithCause(err)
	}
	return core.ParseVariables(path, string(data))
}

// Path is the variables file location of target.
func (a VariablesFileAdapter) Path(target *types.TargetConfig) string {
	if target.Variables == nil {
		return ""
	}
	return filepath.Join(a.ConfigDir, filepath.FromSlash(target.Variables.FilePath))
}

var _ ports.VariablesPort = VariablesFileAdapter{}
