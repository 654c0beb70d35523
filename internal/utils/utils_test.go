package utils

import (
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── AtomicWriteFile ───────────────────────────────────────────────────────────

func TestAtomicWriteFile_CreatesParentsAndWrites(t *testing.T) {
	fsys := afero.NewMemMapFs()

	err := AtomicWriteFile(fsys, "/home/u/.config/demo/general.toml", []byte("a = 1\n"), 0o600)
	require.NoError(t, err)

	data, err := afero.ReadFile(fsys, "/home/u/.config/demo/general.toml")
	require.NoError(t, err)
	assert.Equal(t, "a = 1\n", string(data))

	info, err := fsys.Stat("/home/u/.config/demo/general.toml")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestAtomicWriteFile_ReplacesAndLeavesNoTempFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/etc/demo.toml", []byte("old"), 0o644))

	require.NoError(t, AtomicWriteFile(fsys, "/etc/demo.toml", []byte("new"), 0o644))

	data, err := afero.ReadFile(fsys, "/etc/demo.toml")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := afero.ReadDir(fsys, "/etc")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "demo.toml", entries[0].Name())
}

func TestAtomicWriteFile_ReadOnlyFs(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := AtomicWriteFile(fsys, "/etc/demo.toml", []byte("x"), 0o644)

	assert.Error(t, err)
}

// ── RunIDGenerator ────────────────────────────────────────────────────────────

func TestRunIDGenerator_Generate_Version7(t *testing.T) {
	id, err := uuid.Parse(NewRunIDGenerator().Generate())

	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestRunIDGenerator_Generate_FallsBackToRandom(t *testing.T) {
	g := &RunIDGenerator{ordered: func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("clock unavailable")
	}}

	id, err := uuid.Parse(g.Generate())

	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}

func TestRunIDGenerator_Generate_Unique(t *testing.T) {
	g := NewRunIDGenerator()

	assert.NotEqual(t, g.Generate(), g.Generate())
}
