package types

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestSample = `{
    "default_build_type": "Debug",
    "cmake_config": {
        "directory_name": "cmake/config",
        "config_files": {"dist_filename": "config.cmake.dist", "filename": "config.cmake"},
        "project": {"name": "BeastEngine", "version_major": "0", "version_minor": "0", "version_patch": "1"},
        "targets": {
            "tests": {"name": "tests", "headers": {"base_dir": "", "files": []}, "sources": {"base_dir": "", "files": ["main.cpp"]}},
            "lib": {
                "name": "beastengine",
                "variables": {"target_cmake_variables_file_path": "beastengine/beast_vars.txt"},
                "headers": {"base_dir": "${BEAST_INCLUDE_DIR}/BeastEngine", "files": ["beastengine.h"]},
                "sources": {"base_dir": "${BEAST_SRC_DIR}/BeastEngine", "files": ["beastengine.cpp"]}
            },
            "exe": {"name": "sandbox", "config_files": null, "variables": null, "directories": null, "headers": {"base_dir": "", "files": []}, "sources": {"base_dir": "", "files": []}}
        }
    }
}`

func TestTargetsKeepManifestOrder(t *testing.T) {
	var manifest Manifest
	require.NoError(t, json.Unmarshal([]byte(manifestSample), &manifest))

	if diff := cmp.Diff([]string{"tests", "lib", "exe"}, manifest.CMake.Targets.Keys()); diff != "" {
		t.Fatalf("unexpected target order (-want +got):\n%s", diff)
	}

	lib, ok := manifest.CMake.Targets.Get("lib")
	require.True(t, ok)
	assert.Equal(t, "beastengine", lib.Name)
	require.NotNil(t, lib.Variables)
	assert.Equal(t, "beastengine/beast_vars.txt", lib.Variables.FilePath)

	exe, ok := manifest.CMake.Targets.Get("exe")
	require.True(t, ok)
	assert.Nil(t, exe.Variables)
	assert.Nil(t, exe.ConfigFiles)

	data, err := json.Marshal(manifest)
	require.NoError(t, err)
	var again Manifest
	require.NoError(t, json.Unmarshal(data, &again))
	if diff := cmp.Diff([]string{"tests", "lib", "exe"}, again.CMake.Targets.Keys()); diff != "" {
		t.Fatalf("order lost after save (-want +got):\n%s", diff)
	}
}

func TestTargetsSetKeepsFirstPosition(t *testing.T) {
	targets := NewTargets()
	targets.Set("a", &TargetConfig{Name: "a"})
	targets.Set("b", &TargetConfig{Name: "b"})
	targets.Set("a", &TargetConfig{Name: "a2"})

	assert.Equal(t, []string{"a", "b"}, targets.Keys())
	assert.Equal(t, 2, targets.Len())
	got, _ := targets.Get("a")
	assert.Equal(t, "a2", got.Name)
}

func TestTargetsRejectNonObject(t *testing.T) {
	var targets Targets
	require.Error(t, json.Unmarshal([]byte(`["lib"]`), &targets))
	require.NoError(t, json.Unmarshal([]byte(`null`), &targets))
	assert.Zero(t, targets.Len())
}

func TestTargetSection(t *testing.T) {
	target := &TargetConfig{}
	target.Section(FileKindHeader).Files = append(target.Section(FileKindHeader).Files, "a.h")
	target.Section(FileKindSource).Files = append(target.Section(FileKindSource).Files, "a.cpp")
	assert.Equal(t, []string{"a.h"}, target.Headers.Files)
	assert.Equal(t, []string{"a.cpp"}, target.Sources.Files)
}

func TestRawObjectKeepsOrderAndValues(t *testing.T) {
	var object RawObject
	require.NoError(t, json.Unmarshal([]byte(`{"z": 1, "a": {"nested": [1, 2]}, "m": null}`), &object))
	assert.Equal(t, []string{"z", "a", "m"}, object.Keys())

	object.Set("a", json.RawMessage(`"replaced"`))
	object.Set("new", json.RawMessage(`true`))
	data, err := json.Marshal(object)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":"replaced","m":null,"new":true}`, string(data))
}
