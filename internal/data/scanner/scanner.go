// Package scanner locates Unity Editor log files to feed the aggregator.
package scanner

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/awtera/vrcbuild/internal/util"
)

// LogScanner resolves the ordered list of log sources, oldest first, so the
// aggregator's final reversal yields most-recent-first reports.
type LogScanner struct {
	baseDir string
}

// NewLogScanner creates a scanner over baseDir. An empty baseDir means the
// platform default Editor log location.
func NewLogScanner(baseDir string) *LogScanner {
	return &LogScanner{baseDir: baseDir}
}

// Scan returns readable log paths ordered least-recent first. With no
// baseDir it returns the platform Editor log pair; otherwise it collects
// *.log files under baseDir ordered by modification time ascending.
func (s *LogScanner) Scan() []string {
	if s.baseDir == "" {
		return s.defaultLogPair()
	}
	return s.scanDir()
}

// defaultLogPair returns Editor-prev.log then Editor.log, keeping only the
// files that actually exist. The previous log is always the older one.
func (s *LogScanner) defaultLogPair() []string {
	dir := defaultEditorLogDir()
	if dir == "" {
		util.LogWarn("No default Editor log location for this platform, use --dir")
		return nil
	}

	var paths []string
	for _, name := range []string{"Editor-prev.log", "Editor.log"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			util.LogDebugf("Skipping absent log file: %s", path)
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// scanDir collects *.log files directly under baseDir, oldest first by
// modification time.
func (s *LogScanner) scanDir() []string {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		util.LogWarnf("Cannot read log directory %s: %v", s.baseDir, err)
		return nil
	}

	type candidate struct {
		path    string
		modTime int64
	}
	var candidates []candidate

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			util.LogDebugf("Skipping log file (stat error): %s - %v", entry.Name(), err)
			continue
		}
		candidates = append(candidates, candidate{
			path:    filepath.Join(s.baseDir, entry.Name()),
			modTime: info.ModTime().UnixNano(),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime < candidates[j].modTime
	})

	paths := make([]string, 0, len(candidates))
	for _, c := range candidates {
		paths = append(paths, c.path)
	}
	util.LogDebugf("Found %d log files under %s", len(paths), s.baseDir)
	return paths
}

// defaultEditorLogDir returns the per-platform Unity Editor log directory.
func defaultEditorLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "Unity")
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "Unity", "Editor")
		}
		return filepath.Join(home, "AppData", "Local", "Unity", "Editor")
	case "linux":
		return filepath.Join(home, ".config", "unity3d")
	default:
		return ""
	}
}
