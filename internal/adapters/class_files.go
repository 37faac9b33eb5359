package adapters

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"beast/internal/core"
	"beast/internal/ports"
	"beast/internal/shared"
	"beast/internal/types"
)

const headerGuard = "#pragma once"

// ClassFilesAdapter scaffolds header and source files of classes.
type ClassFilesAdapter struct {
	FS afero.Fs
}

func NewClassFilesAdapter(fs afero.Fs) ClassFilesAdapter {
	return ClassFilesAdapter{FS: fs}
}

func (a ClassFilesAdapter) Create(kind types.FileKind, class types.ClassName, baseDir string, namespace *string) (string, error) {
	filename := class.Filename(kind)
	path := core.ClassFilePath(baseDir, filename)
	if a.Exists(path) {
		return "", shared.FileAlreadyExists(path)
	}
	if !a.isDir(baseDir) {
		return "", shared.BaseDirectoryNotFound(baseDir)
	}
	if class.HasDirectories() {
		dir := core.ClassFilePath(baseDir, class.Directory())
		if err := a.FS.MkdirAll(dir, 0o755); err != nil {
			return "", shared.IOError("failed to create class directory: "+dir, err)
		}
	}
	if err := a.writeNew(path, classFileContent(kind, namespace)); err != nil {
		return "", err
	}
	log.Debug().Str("path", path).Msg("class file created")
	return filename, nil
}

func (a ClassFilesAdapter) Remove(kind types.FileKind, class types.ClassName, baseDir string) error {
	path := core.ClassFilePath(baseDir, class.Filename(kind))
	if err := a.FS.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return shared.FileNotFound(path, err)
		}
		return shared.IOError("failed to remove class file: "+path, err)
	}
	return a.pruneDirectories(class, baseDir)
}

func (a ClassFilesAdapter) Exists(path string) bool {
	_, err := a.FS.Stat(path)
	return err == nil
}

// isDir treats an empty base directory as the working directory.
func (a ClassFilesAdapter) isDir(path string) bool {
	if path == "" {
		path = "."
	}
	info, err := a.FS.Stat(path)
	return err == nil && info.IsDir()
}

// pruneDirectories walks the class directories from the deepest up and
// removes each one while it is empty, stopping at the first directory that
// is missing or still holds entries. The base directory is never a
// candidate.
func (a ClassFilesAdapter) pruneDirectories(class types.ClassName, baseDir string) error {
	for _, dir := range class.Directories() {
		full := core.ClassFilePath(baseDir, dir)
		info, err := a.FS.Stat(full)
		if err != nil || !info.IsDir() {
			return nil
		}
		entries, err := afero.ReadDir(a.FS, full)
		if err != nil {
			return shared.IOError("failed to read class directory: "+full, err)
		}
		if len(entries) > 0 {
			return nil
		}
		if err := a.FS.Remove(full); err != nil {
			return shared.IOError("failed to remove class directory: "+full, err)
		}
		log.Debug().Str("dir", full).Msg("empty class directory removed")
	}
	return nil
}

func (a ClassFilesAdapter) writeNew(path string, content string) (err error) {
	file, err := a.FS.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return shared.FileAlreadyExists(path)
		}
		return shared.IOError("failed to create class file: "+path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = shared.IOError("failed to close class file: "+path, cerr)
		}
	}()
	if _, err := file.WriteString(content); err != nil {
		return shared.IOError("failed to write class file: "+path, err)
	}
	return nil
}

func classFileContent(kind types.FileKind, namespace *string) string {
	content := ""
	if kind == types.FileKindHeader {
		content = headerGuard + "\n"
	}
	if namespace == nil {
		return content
	}
	if content != "" {
		content += "\n"
	}
	return content + fmt.Sprintf("namespace %s\n{\n\n} // namespace %s\n", *namespace, *namespace)
}

var _ ports.ClassFilesPort = ClassFilesAdapter{}
