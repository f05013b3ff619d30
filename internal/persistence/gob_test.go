package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string
	Words []string
}

func TestSaveAndLoadGob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.gob")

	in := sample{Name: "english", Words: []string{"CAT", "QUEEN"}}
	require.NoError(t, SaveGob(path, in))

	var out sample
	require.NoError(t, LoadGob(path, &out))
	assert.Equal(t, in, out)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestSaveGobOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.gob")
	require.NoError(t, SaveGob(path, sample{Name: "first"}))
	require.NoError(t, SaveGob(path, sample{Name: "second"}))

	var out sample
	require.NoError(t, LoadGob(path, &out))
	assert.Equal(t, "second", out.Name)
}

func TestLoadGobMissingFile(t *testing.T) {
	var out sample
	err := LoadGob(filepath.Join(t.TempDir(), "missing.gob"), &out)
	assert.Equal(t, os.ErrNotExist, err)
}

func TestLoadGobCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.gob")
	require.NoError(t, os.WriteFile(path, []byte("not gob"), 0600))

	var out sample
	err := LoadGob(path, &out)
	require.Error(t, err)
	assert.NotEqual(t, os.ErrNotExist, err)
}
