package adapters

import (
	"bytes"
	"encoding/json"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"beast/internal/ports"
	"beast/internal/types"
)

const manifestIndent = "    "

// ManifestFileAdapter stores the manifest as an indented JSON document.
// Every save rewrites the whole file, but only the headers and sources file
// lists of a loaded document change.
type ManifestFileAdapter struct {
	FS   afero.Fs
	Path string
}

func NewManifestFileAdapter(fs afero.Fs, path string) ManifestFileAdapter {
	return ManifestFileAdapter{FS: fs, Path: path}
}

func (a ManifestFileAdapter) Load() (*types.Manifest, error) {
	data, err := afero.ReadFile(a.FS, a.Path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found: " + a.Path).
			WithCause(err)
	}
	manifest := &types.Manifest{CMake: types.CMakeConfig{Targets: types.NewTargets()}}
	if err := json.Unmarshal(data, manifest); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse manifest json: " + a.Path).
			WithCause(err)
	}
	if err := json.Unmarshal(data, &manifest.Document); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse manifest json: " + a.Path).
			WithCause(err)
	}
	return manifest, nil
}

func (a ManifestFileAdapter) Save(manifest *types.Manifest) error {
	for _, key := range manifest.CMake.Targets.Keys() {
		target, _ := manifest.CMake.Targets.Get(key)
		if target.Headers.Files == nil {
			target.Headers.Files = []string{}
		}
		if target.Sources.Files == nil {
			target.Sources.Files = []string{}
		}
	}
	data, err := encodeManifest(manifest)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode manifest").
			WithCause(err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", manifestIndent); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to indent manifest").
			WithCause(err)
	}
	if err := afero.WriteFile(a.FS, a.Path, out.Bytes(), 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write manifest: " + a.Path).
			WithCause(err)
	}
	log.Debug().Str("path", a.Path).Int("bytes", out.Len()).Msg("manifest saved")
	return nil
}

// encodeManifest writes the file lists into the document read from disk.
// Manifests built in memory have no document and are encoded from the
// structs.
func encodeManifest(manifest *types.Manifest) ([]byte, error) {
	if manifest.Document.Len() == 0 {
		return encodeJSON(manifest)
	}
	err := patchObject(&manifest.Document, "cmake_config", func(cmake *types.RawObject) error {
		return patchObject(cmake, "targets", func(targets *types.RawObject) error {
			return patchTargets(targets, manifest.CMake.Targets)
		})
	})
	if err != nil {
		return nil, err
	}
	return encodeJSON(manifest.Document)
}

func patchTargets(raw *types.RawObject, targets types.Targets) error {
	for _, key := range targets.Keys() {
		target, _ := targets.Get(key)
		if _, ok := raw.Get(key); !ok {
			data, err := encodeJSON(target)
			if err != nil {
				return err
			}
			raw.Set(key, data)
			continue
		}
		err := patchObject(raw, key, func(entry *types.RawObject) error {
			for _, kind := range []types.FileKind{types.FileKindHeader, types.FileKindSource} {
				files := target.Section(kind).Files
				err := patchObject(entry, string(kind), func(section *types.RawObject) error {
					data, err := encodeJSON(files)
					if err != nil {
						return err
					}
					section.Set("files", data)
					return nil
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// patchObject decodes parent[key] as an object, applies patch and stores
// the result back under the same key.
func patchObject(parent *types.RawObject, key string, patch func(*types.RawObject) error) error {
	var child types.RawObject
	if raw, ok := parent.Get(key); ok {
		if err := json.Unmarshal(raw, &child); err != nil {
			return err
		}
	}
	if err := patch(&child); err != nil {
		return err
	}
	data, err := child.MarshalJSON()
	if err != nil {
		return err
	}
	parent.Set(key, data)
	return nil
}

func encodeJSON(value any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

var _ ports.ManifestPort = ManifestFileAdapter{}
