package app

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// DiscoverProjectDir walks up from start to the first directory holding the
// manifest at manifestPath.
func DiscoverProjectDir(start string, manifestPath string) (string, error) {
	if manifestPath == "" {
		manifestPath = DefaultManifestPath
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to resolve working directory").
			WithCause(err)
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(manifestPath))); err == nil && !info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("no project found: " + manifestPath + " does not exist in " + start + " or any parent directory")
		}
		dir = parent
	}
}
