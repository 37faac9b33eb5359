package app

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"beast/internal/core"
	"beast/internal/shared"
	"beast/internal/types"
)

// AddClass scaffolds the class files of a target and records them in the
// manifest. The manifest is saved once, after every file was created; any
// failure before that leaves the stored manifest untouched.
func (s Service) AddClass(ctx context.Context, req AddClassRequest) (AddClassResult, error) {
	target, err := s.Target(req.Target)
	if err != nil {
		return AddClassResult{}, err
	}
	class, err := core.ParseClassName(req.ClassName)
	if err != nil {
		return AddClassResult{}, err
	}

	var created []string
	for _, kind := range classKinds(req.HeaderOnly, req.SourceOnly) {
		if err := ctx.Err(); err != nil {
			return AddClassResult{}, err
		}
		baseDir, err := s.baseDirectory(target, kind)
		if err != nil {
			return AddClassResult{}, err
		}
		filename, err := s.ClassFiles.Create(kind, class, baseDir, req.Namespace)
		if err != nil {
			return AddClassResult{}, err
		}
		if !core.AppendFile(target.Section(kind), filename) {
			log.Warn().
				Str("target", target.Name).
				Str("file", filename).
				Msg("file already listed in manifest, not adding it twice")
		}
		created = append(created, core.ClassFilePath(baseDir, filename))
	}

	if err := s.Store.Save(s.Manifest); err != nil {
		return AddClassResult{}, err
	}
	return AddClassResult{Created: created}, nil
}

// RemoveClass deletes the header and source of a class. Each kind is
// handled on its own: it is removed only when listed in the manifest and
// present on disk, and the manifest is saved after each removal. Kinds that
// do not exist are skipped silently.
func (s Service) RemoveClass(ctx context.Context, req RemoveClassRequest) (RemoveClassResult, error) {
	target, err := s.Target(req.Target)
	if err != nil {
		return RemoveClassResult{}, err
	}
	class, err := core.ParseClassName(req.ClassName)
	if err != nil {
		return RemoveClassResult{}, err
	}

	var removed []string
	for _, kind := range []types.FileKind{types.FileKindHeader, types.FileKindSource} {
		if err := ctx.Err(); err != nil {
			return RemoveClassResult{}, err
		}
		baseDir, err := s.baseDirectory(target, kind)
		if err != nil {
			return RemoveClassResult{}, err
		}
		if !core.ClassExists(target, kind, class, baseDir, s.ClassFiles.Exists) {
			log.Debug().Str("target", target.Name).Str("kind", string(kind)).Str("class", string(class)).Msg("class file does not exist, skipping")
			continue
		}
		if err := s.ClassFiles.Remove(kind, class, baseDir); err != nil {
			return RemoveClassResult{}, err
		}
		filename := class.Filename(kind)
		core.RemoveFile(target.Section(kind), filename)
		if err := s.Store.Save(s.Manifest); err != nil {
			return RemoveClassResult{}, err
		}
		removed = append(removed, core.ClassFilePath(baseDir, filename))
	}
	return RemoveClassResult{Removed: removed}, nil
}

// ClassPaths resolves the headers and sources base directories of a target
// as written after placeholder substitution.
func (s Service) ClassPaths(targetName string) (ClassPathsResult, error) {
	target, err := s.Target(targetName)
	if err != nil {
		return ClassPathsResult{}, err
	}
	headers, err := s.Paths.ResolveBaseDirectory(target, types.FileKindHeader)
	if err != nil {
		return ClassPathsResult{}, err
	}
	sources, err := s.Paths.ResolveBaseDirectory(target, types.FileKindSource)
	if err != nil {
		return ClassPathsResult{}, err
	}
	return ClassPathsResult{HeadersBaseDir: headers, SourcesBaseDir: sources}, nil
}

// Target looks a target up by its manifest key.
func (s Service) Target(name string) (*types.TargetConfig, error) {
	target, ok := s.Manifest.CMake.Targets.Get(name)
	if !ok {
		return nil, shared.UnknownTarget(name)
	}
	return target, nil
}

// baseDirectory resolves a section's base directory and anchors relative
// results at the project directory.
func (s Service) baseDirectory(target *types.TargetConfig, kind types.FileKind) (string, error) {
	dir, err := s.Paths.ResolveBaseDirectory(target, kind)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(dir) || s.ProjectDir == "" {
		return dir, nil
	}
	return filepath.Join(s.ProjectDir, filepath.FromSlash(dir)), nil
}

// classKinds picks the files to create. Equal flags, including both set,
// mean header and source.
func classKinds(headerOnly bool, sourceOnly bool) []types.FileKind {
	switch {
	case headerOnly == sourceOnly:
		return []types.FileKind{types.FileKindHeader, types.FileKindSource}
	case headerOnly:
		return []types.FileKind{types.FileKindHeader}
	default:
		return []types.FileKind{types.FileKindSource}
	}
}
