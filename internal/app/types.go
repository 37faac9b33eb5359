package app

import (
	"path/filepath"
	"strings"

	"beast/internal/types"
)

const (
	DefaultManifestPath = "config/config.json"
	DefaultBuildDirName = "build"
)

// Settings locate the project and the external tools.
type Settings struct {
	ProjectDir     string
	ManifestPath   string
	BuildDirName   string
	CMakeBinary    string
	ConanBinary    string
	ConanGenerator string
}

func (s Settings) withDefaults() Settings {
	if strings.TrimSpace(s.ManifestPath) == "" {
		s.ManifestPath = DefaultManifestPath
	}
	if strings.TrimSpace(s.BuildDirName) == "" {
		s.BuildDirName = DefaultBuildDirName
	}
	return s
}

func (s Settings) manifestPath() string {
	if filepath.IsAbs(s.ManifestPath) {
		return s.ManifestPath
	}
	return filepath.Join(s.ProjectDir, filepath.FromSlash(s.ManifestPath))
}

func (s Settings) buildDirPath() string {
	if filepath.IsAbs(s.BuildDirName) {
		return s.BuildDirName
	}
	return filepath.Join(s.ProjectDir, s.BuildDirName)
}

type AddClassRequest struct {
	Target     string
	ClassName  string
	Namespace  *string
	HeaderOnly bool
	SourceOnly bool
}

type AddClassResult struct {
	Created []string
}

type RemoveClassRequest struct {
	Target    string
	ClassName string
}

type RemoveClassResult struct {
	Removed []string
}

type ClassPathsResult struct {
	HeadersBaseDir string
	SourcesBaseDir string
}

type BuildRequest struct {
	Config string
}

type BuildResult struct {
	Configs []types.BuildConfig
}

type InitResult struct {
	BuildDir string
	Removed  bool
}
