package distribution

import (
	"context"
	"runtime/debug"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(fsys afero.Fs, info *debug.BuildInfo) *BuildInfoIndex {
	index := NewBuildInfoIndex(fsys)
	index.readInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
	index.executable = func() (string, error) { return "/opt/tool/bin/tool", nil }
	return index
}

func sampleBuildInfo() *debug.BuildInfo {
	return &debug.BuildInfo{
		Main: debug.Module{Path: "example.com/tool", Version: "v1.4.0"},
		Deps: []*debug.Module{
			{Path: "example.com/lib", Version: "v0.3.1"},
			{Path: "example.com/lib/v2", Version: "(devel)"},
			{Path: "example.com/local", Version: "v0.0.0", Replace: &debug.Module{Path: "../local"}},
		},
	}
}

func TestBuildInfoIndex_LookupInstalled(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/opt/tool/share/tool", 0o755))
	index := newTestIndex(fsys, sampleBuildInfo())

	meta, found, err := index.Lookup(context.Background(), "example.com/tool/internal/x")

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, Metadata{Name: "example.com/tool", Version: "v1.4.0", Location: "/opt/tool/share/tool"}, meta)
}

func TestBuildInfoIndex_LocationFallsBackToExecutableDir(t *testing.T) {
	index := newTestIndex(afero.NewMemMapFs(), sampleBuildInfo())

	meta, found, err := index.Lookup(context.Background(), "example.com/lib/pkg")

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "example.com/lib", meta.Name)
	assert.Equal(t, "/opt/tool/bin", meta.Location)
}

func TestBuildInfoIndex_NotInstalled(t *testing.T) {
	tests := []struct {
		name string
		pkg  string
		info *debug.BuildInfo
	}{
		{name: "devel version", pkg: "example.com/lib/v2/x", info: sampleBuildInfo()},
		{name: "local replacement", pkg: "example.com/local", info: sampleBuildInfo()},
		{name: "unknown package", pkg: "example.org/other", info: sampleBuildInfo()},
		{name: "no build info", pkg: "example.com/tool", info: nil},
		{
			name: "go run",
			pkg:  "example.com/tool",
			info: &debug.BuildInfo{Main: debug.Module{Path: "example.com/tool", Version: "(devel)"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := newTestIndex(afero.NewMemMapFs(), tt.info)
			_, found, err := index.Lookup(context.Background(), tt.pkg)
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestBuildInfoIndex_Modules(t *testing.T) {
	index := newTestIndex(afero.NewMemMapFs(), sampleBuildInfo())
	assert.Equal(t, []string{"example.com/tool", "example.com/lib", "example.com/lib/v2", "example.com/local"}, index.Modules())

	assert.Empty(t, newTestIndex(afero.NewMemMapFs(), nil).Modules())
}
