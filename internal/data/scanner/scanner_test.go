package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDirOrdersOldestFirst(t *testing.T) {
	tempDir := t.TempDir()

	older := filepath.Join(tempDir, "Editor-prev.log")
	newer := filepath.Join(tempDir, "Editor.log")
	require.NoError(t, os.WriteFile(older, []byte("old"), 0644))
	require.NoError(t, os.WriteFile(newer, []byte("new"), 0644))

	// Force distinct, ordered modification times.
	base := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, base, base))
	require.NoError(t, os.Chtimes(newer, base.Add(time.Minute), base.Add(time.Minute)))

	paths := NewLogScanner(tempDir).Scan()
	require.Len(t, paths, 2)
	assert.Equal(t, older, paths[0])
	assert.Equal(t, newer, paths[1])
}

func TestScanDirIgnoresNonLogFiles(t *testing.T) {
	tempDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "Editor.log"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "sub.log"), 0755))

	paths := NewLogScanner(tempDir).Scan()
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(tempDir, "Editor.log"), paths[0])
}

func TestScanMissingDir(t *testing.T) {
	paths := NewLogScanner(filepath.Join(t.TempDir(), "absent")).Scan()
	assert.Empty(t, paths)
}
