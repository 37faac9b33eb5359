package types

import "strings"

// ClassSeparator separates directory segments inside a class name.
const ClassSeparator = "/"

// ClassName identifies a header/source pair relative to a base directory,
// e.g. "Vulkan/Device".
type ClassName string

// Filename returns the manifest entry for the class, e.g. "Vulkan/Device.h".
func (c ClassName) Filename(kind FileKind) string {
	return string(c) + "." + kind.Extension()
}

// HasDirectories reports whether the class lives in a subdirectory.
func (c ClassName) HasDirectories() bool {
	return strings.Contains(string(c), ClassSeparator)
}

// Directory returns the directory prefix without the base name, or "" for a
// class at the root of its base directory.
func (c ClassName) Directory() string {
	idx := strings.LastIndex(string(c), ClassSeparator)
	if idx < 0 {
		return ""
	}
	return string(c)[:idx]
}

// Base returns the last segment of the class name.
func (c ClassName) Base() string {
	idx := strings.LastIndex(string(c), ClassSeparator)
	return string(c)[idx+1:]
}

// Directories returns every directory prefix from the deepest to the
// shallowest: "a/b/Name" yields ["a/b", "a"].
func (c ClassName) Directories() []string {
	var dirs []string
	for dir := c.Directory(); dir != ""; {
		dirs = append(dirs, dir)
		idx := strings.LastIndex(dir, ClassSeparator)
		if idx < 0 {
			break
		}
		dir = dir[:idx]
	}
	return dirs
}
