package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beast/internal/types"
)

func sampleCMakeConfig() types.CMakeConfig {
	targets := types.NewTargets()
	targets.Set("lib", &types.TargetConfig{
		Name:            "beastengine",
		NamePlaceholder: "lib_target_name",
		ConfigFiles:     &types.ConfigFiles{DistFilename: "beastengine/config.cmake.dist", Filename: "beastengine/config.cmake"},
		Variables:       &types.TargetVariables{FilePathPlaceholder: "beast_cmake_vars_file_path", FilePath: "beastengine/beast_vars.txt"},
		Directories: &types.TargetDirectories{
			IncludeDirectoryPlaceholder: "beast_include_dir",
			IncludeDirectory:            `"${BeastEngine_SOURCE_DIR}/include"`,
			SourceDirectoryPlaceholder:  "beast_src_dir",
			SourceDirectory:             `"${BeastEngine_SOURCE_DIR}/src"`,
		},
		Headers: types.FileSection{BaseDir: "${BEAST_INCLUDE_DIR}/BeastEngine", FilesListPlaceholder: "beast_headers", Files: []string{"beastengine.h", "core/Window.h"}},
		Sources: types.FileSection{BaseDir: "${BEAST_SRC_DIR}/BeastEngine", FilesListPlaceholder: "beast_sources", Files: []string{"beastengine.cpp"}},
	})
	targets.Set("exe", &types.TargetConfig{
		Name:            "sandbox",
		NamePlaceholder: "exe_target_name",
		Headers:         types.FileSection{Files: []string{}},
		Sources:         types.FileSection{Files: []string{}},
	})
	return types.CMakeConfig{
		DirectoryName: "cmake/config",
		ConfigFiles:   types.ConfigFiles{DistFilename: "config.cmake.dist", Filename: "config.cmake"},
		Project: types.ProjectConfig{
			Name:                    "BeastEngine",
			VersionMajor:            "0",
			VersionMinor:            "0",
			VersionPatch:            "1",
			NamePlaceholder:         "project_name",
			VersionMajorPlaceholder: "project_version_major",
			VersionMinorPlaceholder: "project_version_minor",
			VersionPatchPlaceholder: "project_version_patch",
		},
		Targets: targets,
	}
}

func TestRenderPlaceholders(t *testing.T) {
	content := "project({project_name} VERSION {project_version_major}.{project_version_minor})\nset(DIR ${CMAKE_SOURCE_DIR})\n{unknown}"
	got := RenderPlaceholders(content, map[string]string{
		"project_name":          "BeastEngine",
		"project_version_major": "1",
		"project_version_minor": "2",
	})
	assert.Equal(t, "project(BeastEngine VERSION 1.2)\nset(DIR ${CMAKE_SOURCE_DIR})\n{unknown}", got)
}

func TestRenderFileList(t *testing.T) {
	tests := []struct {
		name     string
		section  types.FileSection
		expected string
	}{
		{
			name:     "with base dir",
			section:  types.FileSection{BaseDir: "${INC}/Beast", Files: []string{"a.h", "sub/b.h"}},
			expected: "\"${INC}/Beast/a.h\"\n    \"${INC}/Beast/sub/b.h\"",
		},
		{
			name:     "without base dir",
			section:  types.FileSection{Files: []string{"main.cpp"}},
			expected: `"main.cpp"`,
		},
		{
			name:     "no files",
			section:  types.FileSection{BaseDir: "x"},
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderFileList(tt.section))
		})
	}
}

func TestMainConfigValues(t *testing.T) {
	values, err := MainConfigValues(sampleCMakeConfig())
	require.NoError(t, err)
	expected := map[string]string{
		"project_name":          "BeastEngine",
		"project_version_major": "0",
		"project_version_minor": "0",
		"project_version_patch": "1",
		"lib_target_name":       "beastengine",
		"exe_target_name":       "sandbox",
	}
	if diff := cmp.Diff(expected, values); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestMainConfigValuesRejectsInvalidVersion(t *testing.T) {
	config := sampleCMakeConfig()
	config.Project.VersionMinor = "x"
	_, err := MainConfigValues(config)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "0.x.1")
}

func TestTargetConfigValues(t *testing.T) {
	config := sampleCMakeConfig()
	lib, _ := config.Targets.Get("lib")

	values, ok := TargetConfigValues(lib, "/project/cmake/config")
	require.True(t, ok)
	expected := map[string]string{
		"beast_include_dir":          `"${BeastEngine_SOURCE_DIR}/include"`,
		"beast_src_dir":              `"${BeastEngine_SOURCE_DIR}/src"`,
		"beast_headers":              "\"${BEAST_INCLUDE_DIR}/BeastEngine/beastengine.h\"\n    \"${BEAST_INCLUDE_DIR}/BeastEngine/core/Window.h\"",
		"beast_sources":              `"${BEAST_SRC_DIR}/BeastEngine/beastengine.cpp"`,
		"beast_cmake_vars_file_path": `"/project/cmake/config/beastengine/beast_vars.txt"`,
	}
	if diff := cmp.Diff(expected, values); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}

	exe, _ := config.Targets.Get("exe")
	_, ok = TargetConfigValues(exe, "/project/cmake/config")
	assert.False(t, ok)
}
