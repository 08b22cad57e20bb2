// Package config loads user preferences from the TOML config file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/awtera/vrcbuild/internal/data/aggregator"
	"github.com/awtera/vrcbuild/internal/util"
	"github.com/pelletier/go-toml/v2"
)

// Preferences holds the persistent settings. Flags override every field.
type Preferences struct {
	MaxReports     int    `toml:"max_reports"`
	Sort           string `toml:"sort"`
	LogDir         string `toml:"log_dir"`
	ShowCategories bool   `toml:"show_categories"`
	ShowFiles      bool   `toml:"show_files"`
}

// Default returns the preferences used when no config file exists.
func Default() Preferences {
	return Preferences{
		MaxReports:     aggregator.DefaultMaxReports,
		Sort:           "size",
		ShowCategories: true,
		ShowFiles:      true,
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vrcbuild", "config.toml")
}

// Load reads preferences from path, falling back to defaults when the file
// is absent. A present but malformed file is an error; silently ignoring it
// would hide typos from the user.
func Load(path string) (Preferences, error) {
	prefs := Default()

	if path == "" {
		path = DefaultPath()
		if path == "" {
			return prefs, nil
		}
	}
	path = ExpandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			util.LogDebugf("No config file at %s, using defaults", path)
			return prefs, nil
		}
		return prefs, err
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return Default(), err
	}
	prefs.LogDir = ExpandPath(prefs.LogDir)
	util.LogDebugf("Loaded preferences from %s", path)
	return prefs, nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
