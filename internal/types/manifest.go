package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Manifest is the persisted project document (config/config.json).
// Document holds the file as read from disk, including keys the structs do
// not model; saving writes the file lists back into it.
type Manifest struct {
	DefaultBuildType string      `json:"default_build_type"`
	CMake            CMakeConfig `json:"cmake_config"`
	Document         RawObject   `json:"-"`
}

type CMakeConfig struct {
	DirectoryName string        `json:"directory_name"`
	ConfigFiles   ConfigFiles   `json:"config_files"`
	Project       ProjectConfig `json:"project"`
	Targets       Targets       `json:"targets"`
}

type ConfigFiles struct {
	DistFilename string `json:"dist_filename"`
	Filename     string `json:"filename"`
}

type ProjectConfig struct {
	Name                    string `json:"name"`
	VersionMajor            string `json:"version_major"`
	VersionMinor            string `json:"version_minor"`
	VersionPatch            string `json:"version_patch"`
	NamePlaceholder         string `json:"name_placeholder"`
	VersionMajorPlaceholder string `json:"version_major_placeholder"`
	VersionMinorPlaceholder string `json:"version_minor_placeholder"`
	VersionPatchPlaceholder string `json:"version_patch_placeholder"`
}

// TargetConfig describes one compilation-unit group. Only the file lists of
// Headers and Sources are ever mutated by this tool.
type TargetConfig struct {
	Name            string             `json:"name"`
	NamePlaceholder string             `json:"name_placeholder"`
	ConfigFiles     *ConfigFiles       `json:"config_files"`
	Variables       *TargetVariables   `json:"variables"`
	Directories     *TargetDirectories `json:"directories"`
	Headers         FileSection        `json:"headers"`
	Sources         FileSection        `json:"sources"`
}

type TargetVariables struct {
	FilePathPlaceholder string `json:"target_cmake_variables_file_path_placeholder"`
	FilePath            string `json:"target_cmake_variables_file_path"`
}

type TargetDirectories struct {
	IncludeDirectoryPlaceholder string `json:"include_directory_placeholder"`
	IncludeDirectory            string `json:"include_directory"`
	SourceDirectoryPlaceholder  string `json:"source_directory_placeholder"`
	SourceDirectory             string `json:"source_directory"`
}

type FileSection struct {
	BaseDir              string   `json:"base_dir"`
	FilesListPlaceholder string   `json:"files_list_placeholder"`
	Files                []string `json:"files"`
}

// Section returns the header or source section of the target.
func (t *TargetConfig) Section(kind FileKind) *FileSection {
	if kind == FileKindSource {
		return &t.Sources
	}
	return &t.Headers
}

// Targets is the "targets" object of the manifest. JSON objects carry no
// order in Go maps, so the key order read from disk is kept alongside.
type Targets struct {
	keys   []string
	byName map[string]*TargetConfig
}

func NewTargets() Targets {
	return Targets{byName: map[string]*TargetConfig{}}
}

// Set inserts or replaces a target, keeping first-insertion order.
func (t *Targets) Set(key string, target *TargetConfig) {
	if t.byName == nil {
		t.byName = map[string]*TargetConfig{}
	}
	if _, ok := t.byName[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.byName[key] = target
}

func (t Targets) Get(key string) (*TargetConfig, bool) {
	target, ok := t.byName[key]
	return target, ok
}

// Keys returns target keys in manifest order.
func (t Targets) Keys() []string {
	return append([]string(nil), t.keys...)
}

func (t Targets) Len() int {
	return len(t.keys)
}

func (t Targets) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(t.byName[key])
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (t *Targets) UnmarshalJSON(data []byte) error {
	var raw RawObject
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("targets: %w", err)
	}
	*t = NewTargets()
	for _, key := range raw.Keys() {
		value, _ := raw.Get(key)
		var target TargetConfig
		if err := json.Unmarshal(value, &target); err != nil {
			return fmt.Errorf("target %q: %w", key, err)
		}
		t.Set(key, &target)
	}
	return nil
}
