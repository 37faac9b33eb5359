package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestClassNameParts(t *testing.T) {
	tests := []struct {
		name        string
		class       ClassName
		directory   string
		base        string
		directories []string
	}{
		{name: "flat", class: "Foo", directory: "", base: "Foo", directories: nil},
		{name: "one level", class: "Vulkan/Device", directory: "Vulkan", base: "Device", directories: []string{"Vulkan"}},
		{name: "nested", class: "a/b/c/Name", directory: "a/b/c", base: "Name", directories: []string{"a/b/c", "a/b", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.directory, tt.class.Directory())
			assert.Equal(t, tt.base, tt.class.Base())
			assert.Equal(t, tt.directory != "", tt.class.HasDirectories())
			if diff := cmp.Diff(tt.directories, tt.class.Directories()); diff != "" {
				t.Fatalf("unexpected directories (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassNameFilename(t *testing.T) {
	assert.Equal(t, "a/b/Name.h", ClassName("a/b/Name").Filename(FileKindHeader))
	assert.Equal(t, "a/b/Name.cpp", ClassName("a/b/Name").Filename(FileKindSource))
}

func TestBuildConfigs(t *testing.T) {
	expected := []BuildConfig{"Debug", "Release", "RelWithDebInfo", "MinSizeRel"}
	if diff := cmp.Diff(expected, BuildConfigs()); diff != "" {
		t.Fatalf("unexpected build configs (-want +got):\n%s", diff)
	}

	config, ok := ParseBuildConfig("RelWithDebInfo")
	assert.True(t, ok)
	assert.Equal(t, BuildConfigRelWithDebInfo, config)

	_, ok = ParseBuildConfig("debug")
	assert.False(t, ok, "build config names are case sensitive")
}

func TestCommandNamesAreUnique(t *testing.T) {
	seen := map[CommandName]bool{}
	for _, name := range CommandNames() {
		assert.False(t, seen[name], "duplicate command name %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, 9)
}
