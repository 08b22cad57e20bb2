package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := resolveConfig()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.MaxReports)
	assert.Equal(t, "size", cfg.SortKey)
	assert.True(t, cfg.ShowCategories)
	assert.True(t, cfg.ShowFiles)
}

func TestResolveConfigUsesPreferences(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	flagConfig = writeConfig(t, "max_reports = 5\nsort = \"name\"\nlog_dir = \"/var/log/unity\"\n")
	t.Cleanup(func() { flagConfig = "" })

	cfg, err := resolveConfig()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MaxReports)
	assert.Equal(t, "name", cfg.SortKey)
	assert.Equal(t, "/var/log/unity", cfg.LogDir)
}

func TestResolveConfigRejectsUnknownSort(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	flagConfig = writeConfig(t, "sort = \"alphabetical\"\n")
	t.Cleanup(func() { flagConfig = "" })

	_, err := resolveConfig()
	assert.Error(t, err)
}

// Flag overrides are tested last: pflag keeps Changed set once a flag has
// been written, which would leak into the tests above.
func TestResolveConfigFlagsOverridePreferences(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	flagConfig = writeConfig(t, "max_reports = 5\nsort = \"name\"\n")
	t.Cleanup(func() { flagConfig = "" })

	require.NoError(t, rootCmd.PersistentFlags().Set("max-reports", "3"))
	require.NoError(t, rootCmd.PersistentFlags().Set("sort", "ext"))

	cfg, err := resolveConfig()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxReports)
	assert.Equal(t, "ext", cfg.SortKey)
}
