package ports

import "beast/internal/types"

// ClassFilesPort creates and removes the files of a class under a resolved
// base directory.
type ClassFilesPort interface {
	// Create writes the file and returns its manifest entry. A nil namespace
	// means none was given.
	Create(kind types.FileKind, class types.ClassName, baseDir string, namespace *string) (string, error)

	// Remove deletes the file and prunes class subdirectories left empty.
	Remove(kind types.FileKind, class types.ClassName, baseDir string) error

	// Exists reports whether anything is present at path.
	Exists(path string) bool
}
