package core

import (
	"path/filepath"
	"slices"

	"beast/internal/types"
)

// ClassFilePath joins a resolved base directory and a manifest entry.
func ClassFilePath(baseDir string, filename string) string {
	return filepath.Join(baseDir, filepath.FromSlash(filename))
}

// ClassFileExists is the gate between manifest and disk: a class file
// exists only when its entry is listed AND the probe finds it on disk.
func ClassFileExists(files []string, filename string, path string, onDisk func(string) bool) bool {
	return slices.Contains(files, filename) && onDisk(path)
}

// ClassExists applies ClassFileExists to one section of a target.
func ClassExists(target *types.TargetConfig, kind types.FileKind, class types.ClassName, baseDir string, onDisk func(string) bool) bool {
	filename := class.Filename(kind)
	return ClassFileExists(target.Section(kind).Files, filename, ClassFilePath(baseDir, filename), onDisk)
}

// AppendFile adds filename to the section unless it is already listed.
// It reports whether the list changed.
func AppendFile(section *types.FileSection, filename string) bool {
	if slices.Contains(section.Files, filename) {
		return false
	}
	section.Files = append(section.Files, filename)
	return true
}

// RemoveFile drops the first occurrence of filename from the section.
func RemoveFile(section *types.FileSection, filename string) bool {
	idx := slices.Index(section.Files, filename)
	if idx < 0 {
		return false
	}
	section.Files = slices.Delete(section.Files, idx, idx+1)
	return true
}
