package app

import (
	"context"
	"encoding/json"

	"github.com/spf13/afero"

	"beast/internal/adapters"
	"beast/internal/core"
	"beast/internal/types"
)

// fakeStore records the JSON of every saved manifest.
type fakeStore struct {
	saves     int
	snapshots []string
	err       error
}

func (f *fakeStore) Load() (*types.Manifest, error) {
	return nil, nil
}

func (f *fakeStore) Save(manifest *types.Manifest) error {
	if f.err != nil {
		return f.err
	}
	f.saves++
	data, err := json.Marshal(manifest)
	if err != nil {
		return err
	}
	f.snapshots = append(f.snapshots, string(data))
	return nil
}

type fakeVariables map[string]map[string]string

func (f fakeVariables) Load(target *types.TargetConfig) (map[string]string, error) {
	return f[target.Name], nil
}

type fakeTools struct {
	calls []string
	err   error
}

func (f *fakeTools) Configure(context.Context) error {
	f.calls = append(f.calls, "configure")
	return f.err
}

func (f *fakeTools) Build(_ context.Context, config types.BuildConfig) error {
	f.calls = append(f.calls, "build "+string(config))
	return f.err
}

func (f *fakeTools) Install(_ context.Context, config types.BuildConfig) error {
	f.calls = append(f.calls, "install "+string(config))
	return f.err
}

func (f *fakeTools) GenerateMain(types.CMakeConfig) error {
	f.calls = append(f.calls, "generate main")
	return f.err
}

func (f *fakeTools) GenerateTarget(target *types.TargetConfig) error {
	f.calls = append(f.calls, "generate "+target.Name)
	return f.err
}

func testManifest() *types.Manifest {
	targets := types.NewTargets()
	targets.Set("lib", &types.TargetConfig{
		Name:      "beastengine",
		Variables: &types.TargetVariables{FilePath: "beastengine/vars.txt"},
		Headers:   types.FileSection{BaseDir: "${BEAST_INCLUDE_DIR}/BeastEngine", Files: []string{"beastengine.h"}},
		Sources:   types.FileSection{BaseDir: "${BEAST_SRC_DIR}/BeastEngine", Files: []string{"beastengine.cpp"}},
	})
	targets.Set("exe", &types.TargetConfig{
		Name:    "sandbox",
		Headers: types.FileSection{BaseDir: "sandbox/include", Files: []string{}},
		Sources: types.FileSection{BaseDir: "sandbox/src", Files: []string{"main.cpp"}},
	})
	return &types.Manifest{
		DefaultBuildType: "Debug",
		CMake:            types.CMakeConfig{DirectoryName: "cmake/config", Targets: targets},
	}
}

type testEnv struct {
	service Service
	store   *fakeStore
	tools   *fakeTools
	fs      afero.Fs
}

func newTestEnv() testEnv {
	fs := afero.NewMemMapFs()
	for _, dir := range []string{"/p/include/BeastEngine", "/p/src/BeastEngine", "/p/sandbox/include", "/p/sandbox/src"} {
		_ = fs.MkdirAll(dir, 0o755)
	}
	store := &fakeStore{}
	tools := &fakeTools{}
	variables := fakeVariables{
		"beastengine": {
			"${BEAST_INCLUDE_DIR}": "/p/include",
			"${BEAST_SRC_DIR}":     "/p/src",
		},
	}
	return testEnv{
		service: Service{
			Store:        store,
			Manifest:     testManifest(),
			Paths:        core.NewPathResolver(variables),
			ClassFiles:   adapters.NewClassFilesAdapter(fs),
			ConfigFiles:  tools,
			BuildTool:    tools,
			Dependencies: tools,
			FS:           fs,
			ProjectDir:   "/p",
			BuildDir:     "/p/build",
		},
		store: store,
		tools: tools,
		fs:    fs,
	}
}
