package viewer

import (
	"fmt"

	"github.com/awtera/vrcbuild/internal/core/model"
	"github.com/awtera/vrcbuild/internal/presentation/display"
	"github.com/awtera/vrcbuild/internal/presentation/interaction"
	"github.com/awtera/vrcbuild/internal/util"
)

// Top is the interactive view: reports on the alternate screen, driven by
// keyboard events and optional filesystem change notifications.
type Top struct {
	viewer  *Viewer
	watch   bool
	display *display.TerminalDisplay

	reports      []*model.Report
	selected     int
	section      display.Section
	scrollOffset float64
	status       string
}

// NewTop creates the interactive view over the same pipeline the one-shot
// path uses. watch enables automatic re-reads on log changes.
func NewTop(config Config, watch bool) *Top {
	return &Top{
		viewer:  New(config),
		watch:   watch,
		display: display.NewTerminalDisplay(),
		section: display.SectionFiles,
	}
}

// Run blocks until the user quits. The terminal is restored on every exit
// path, including load errors after raw mode is entered.
func (t *Top) Run() error {
	if err := t.reload(); err != nil {
		return err
	}

	keyboard, err := interaction.NewKeyboardReader()
	if err != nil {
		return fmt.Errorf("cannot enter raw mode: %w", err)
	}
	defer keyboard.Close()

	var reloadCh <-chan struct{}
	if t.watch {
		watcher, err := NewLogWatcher(t.viewer.scanner.Scan())
		if err != nil {
			util.LogWarnf("Log watching disabled: %v", err)
		} else {
			defer watcher.Close()
			reloadCh = watcher.Reload()
		}
	}

	t.display.EnterAlternateScreen()
	defer t.display.ExitAlternateScreen()
	t.render()

	for {
		select {
		case event := <-keyboard.Events():
			if quit := t.handleKey(event); quit {
				return nil
			}
			t.render()
		case <-reloadCh:
			if err := t.reload(); err != nil {
				t.status = err.Error()
			} else {
				t.status = "reloaded"
			}
			t.render()
		}
	}
}

// handleKey applies one keystroke to the view state; returns true to quit.
func (t *Top) handleKey(event interaction.KeyEvent) bool {
	switch event.Type {
	case interaction.KeyEscape:
		return true
	case interaction.KeyUp:
		t.scrollBy(-1)
	case interaction.KeyDown:
		t.scrollBy(1)
	case interaction.KeyLeft:
		t.selectReport(t.selected - 1)
	case interaction.KeyRight:
		t.selectReport(t.selected + 1)
	case interaction.KeyChar:
		switch event.Key {
		case 'q', 3: // q or Ctrl+C
			return true
		case 'k':
			t.scrollBy(-1)
		case 'j':
			t.scrollBy(1)
		case 'h':
			t.selectReport(t.selected - 1)
		case 'l':
			t.selectReport(t.selected + 1)
		case '\t':
			t.toggleSection()
		case 's':
			t.viewer.sorter.Cycle()
			t.resortCurrent()
		case 'o':
			t.viewer.sorter.SetKey(interaction.SortByOriginalIndex)
			t.resortCurrent()
		case 'r':
			if err := t.reload(); err != nil {
				t.status = err.Error()
			} else {
				t.status = "reloaded"
			}
		}
	}
	return false
}

// reload re-runs the whole pipeline and clamps the selection to the new
// report count. Scroll position resets; the previous offset is meaningless
// against a fresh entry order.
func (t *Top) reload() error {
	reports, err := t.viewer.loadReports()
	if err != nil {
		return err
	}
	t.reports = reports
	if t.selected >= len(t.reports) {
		t.selected = len(t.reports) - 1
	}
	if t.selected < 0 {
		t.selected = 0
	}
	t.scrollOffset = 0
	return nil
}

func (t *Top) selectReport(index int) {
	if index < 0 || index >= len(t.reports) {
		return
	}
	t.selected = index
	t.scrollOffset = 0
}

func (t *Top) toggleSection() {
	if t.section == display.SectionFiles {
		t.section = display.SectionCategories
	} else {
		t.section = display.SectionFiles
	}
	t.scrollOffset = 0
}

// resortCurrent reapplies the active sort key to the selected report only;
// the other reports keep their order until visited or reloaded.
func (t *Top) resortCurrent() {
	if len(t.reports) == 0 {
		return
	}
	report := t.reports[t.selected]
	t.viewer.sorter.Sort(report.Categories)
	t.viewer.sorter.Sort(report.Files)
	t.status = ""
}

// scrollBy moves the viewport, clamped so the last page stays full where
// possible.
func (t *Top) scrollBy(delta float64) {
	t.scrollOffset += delta
	max := float64(t.currentEntryCount() - t.display.ListHeight())
	if max < 0 {
		max = 0
	}
	if t.scrollOffset > max {
		t.scrollOffset = max
	}
	if t.scrollOffset < 0 {
		t.scrollOffset = 0
	}
}

func (t *Top) currentEntryCount() int {
	if len(t.reports) == 0 {
		return 0
	}
	report := t.reports[t.selected]
	if t.section == display.SectionCategories {
		return len(report.Categories)
	}
	return len(report.Files)
}

func (t *Top) render() {
	t.display.Render(display.ViewState{
		Reports:      t.reports,
		Selected:     t.selected,
		Section:      t.section,
		ScrollOffset: t.scrollOffset,
		SortLabel:    t.viewer.sorter.Key().String(),
		Status:       t.status,
	})
}
