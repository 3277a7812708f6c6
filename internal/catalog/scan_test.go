package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("GOCAD TSurf 1\n"), 0644))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.ts"))
	touch(t, filepath.Join(dir, "horizons", "Top.TS"))
	touch(t, filepath.Join(dir, "horizons", "base.tsurf"))
	touch(t, filepath.Join(dir, "notes.txt"))

	entries, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "b.ts", entries[0].Rel)
	assert.Equal(t, "horizons/Top.TS", entries[1].Rel)
	assert.Equal(t, "Top", entries[1].Name)
	assert.Equal(t, "horizons/base.tsurf", entries[2].Rel)

	assert.Len(t, Filter(entries, "HORIZONS/"), 2)
	assert.Len(t, Filter(entries, ""), 3)
}

func TestScanSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.ts")
	touch(t, path)
	entries, err := Scan(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "one", entries[0].Name)

	_, err = Scan(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
