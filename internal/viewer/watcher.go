package viewer

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/awtera/vrcbuild/internal/util"
	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of write events Unity produces while
// flushing the Editor log into a single re-read.
const reloadDebounce = 500 * time.Millisecond

// LogWatcher watches the directories containing the scanned log files and
// signals when any *.log inside them changes.
type LogWatcher struct {
	watcher *fsnotify.Watcher
	reload  chan struct{}
	stop    chan struct{}
}

// NewLogWatcher watches the parent directories of paths. Watching directories
// instead of the files themselves survives the rename-and-recreate cycle the
// Editor uses when rotating Editor.log to Editor-prev.log.
func NewLogWatcher(paths []string) (*LogWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, path := range paths {
		dir := filepath.Dir(path)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if err := fsw.Add(dir); err != nil {
			util.LogWarnf("Cannot watch %s: %v", dir, err)
		}
	}

	lw := &LogWatcher{
		watcher: fsw,
		reload:  make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}
	go lw.run()
	return lw, nil
}

// Reload delivers one signal per debounced change burst.
func (lw *LogWatcher) Reload() <-chan struct{} {
	return lw.reload
}

// Close stops the watcher.
func (lw *LogWatcher) Close() error {
	close(lw.stop)
	return lw.watcher.Close()
}

func (lw *LogWatcher) run() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-lw.stop:
			return
		case event, ok := <-lw.watcher.Events:
			if !ok {
				return
			}
			if !isLogEvent(event) {
				continue
			}
			util.LogDebugf("Log change detected: %s %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			select {
			case lw.reload <- struct{}{}:
			default:
			}
		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return
			}
			util.LogWarnf("Log watcher error: %v", err)
		}
	}
}

func isLogEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	return strings.HasSuffix(strings.ToLower(event.Name), ".log")
}
