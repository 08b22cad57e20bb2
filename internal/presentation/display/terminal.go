// Package display renders the interactive report view on the alternate
// screen buffer.
package display

import (
	"fmt"

	"github.com/awtera/vrcbuild/internal/core/model"
	"github.com/awtera/vrcbuild/internal/presentation/layout"
	"github.com/awtera/vrcbuild/internal/util"
	"github.com/fatih/color"
)

// Section selects which entry collection of the current report is listed.
type Section int

const (
	SectionFiles Section = iota
	SectionCategories
)

// String returns the section title.
func (s Section) String() string {
	if s == SectionCategories {
		return "Categories"
	}
	return "Files"
}

// ViewState is everything the display needs to draw one frame. The display
// never mutates it; scrolling and sorting are the caller's concern.
type ViewState struct {
	Reports      []*model.Report
	Selected     int
	Section      Section
	ScrollOffset float64
	SortLabel    string
	Status       string
}

// TerminalDisplay owns the alternate screen buffer.
type TerminalDisplay struct {
	inAlternateScreen bool
}

// NewTerminalDisplay creates a display; the screen is untouched until
// EnterAlternateScreen.
func NewTerminalDisplay() *TerminalDisplay {
	return &TerminalDisplay{}
}

// EnterAlternateScreen switches to the alternate buffer and hides the cursor.
func (td *TerminalDisplay) EnterAlternateScreen() {
	if !td.inAlternateScreen {
		fmt.Print(util.EnterAltScreen)
		fmt.Print(util.ClearScreen)
		fmt.Print(util.MoveCursorHome)
		fmt.Print(util.HideCursor)
		td.inAlternateScreen = true
	}
}

// ExitAlternateScreen restores the normal buffer and cursor.
func (td *TerminalDisplay) ExitAlternateScreen() {
	if td.inAlternateScreen {
		fmt.Print(util.ShowCursor)
		fmt.Print(util.ExitAltScreen)
		td.inAlternateScreen = false
	}
}

var (
	titleStyle  = color.New(color.FgMagenta, color.Bold).SprintFunc()
	headerStyle = color.New(color.Bold).SprintFunc()
	avatarStyle = color.New(color.FgCyan).SprintFunc()
	worldStyle  = color.New(color.FgGreen).SprintFunc()
	dimStyle    = color.New(color.Faint).SprintFunc()
)

// headerRows and footerRows bound the list viewport within the terminal.
const (
	headerRows = 4
	footerRows = 1
)

// ListHeight returns how many entry rows fit the current terminal.
func (td *TerminalDisplay) ListHeight() int {
	height := layout.GetTerminalSize().Height - headerRows - footerRows
	if height < 1 {
		height = 1
	}
	return height
}

// Render draws one frame from the state.
func (td *TerminalDisplay) Render(state ViewState) {
	size := layout.GetTerminalSize()
	fmt.Print(util.ClearScreen)
	fmt.Print(util.MoveCursorHome)

	fmt.Println(titleStyle("vrcbuild") + dimStyle(fmt.Sprintf("  sort:%s  %s", state.SortLabel, state.Status)))

	if len(state.Reports) == 0 {
		fmt.Println("No build reports found. Build something, then press r.")
		fmt.Println()
		td.renderFooter(size.Width)
		return
	}

	report := state.Reports[state.Selected]
	kindBadge := avatarStyle("[avatar]")
	if report.Kind == model.KindWorld {
		kindBadge = worldStyle("[world]")
	}
	fmt.Printf("Build %d/%d %s %s\n",
		state.Selected+1, len(state.Reports), kindBadge,
		util.TruncateToWidth(report.Name, size.Width-20))
	fmt.Printf("Compressed %s   Uncompressed %s\n",
		report.CompressedSize, report.UncompressedSize)

	entries := report.Files
	if state.Section == SectionCategories {
		entries = report.Categories
	}
	fmt.Println(headerStyle(fmt.Sprintf("%s (%d)", state.Section, len(entries))))

	// Only the rows intersecting the viewport are drawn; everything else
	// is skipped entirely rather than printed off screen.
	listHeight := size.Height - headerRows - footerRows
	start, end := layout.VisibleRange(state.ScrollOffset, float64(listHeight), 1, len(entries))
	for i := start; i < end; i++ {
		td.renderEntry(entries[i], size.Width)
	}
	for i := end - start; i < listHeight; i++ {
		fmt.Println()
	}

	td.renderFooter(size.Width)
}

func (td *TerminalDisplay) renderEntry(entry model.ReportEntry, width int) {
	left := fmt.Sprintf("%s %s  ",
		layout.PadString(entry.Size.String(), 10, false),
		layout.PadString(util.FormatPercent(entry.Percent), 6, false))
	name := util.TruncateToWidth(entry.Name, width-util.GetDisplayWidth(left)-1)
	fmt.Println(left + name)
}

func (td *TerminalDisplay) renderFooter(width int) {
	help := "q quit  ←/→ report  tab section  ↑/↓ scroll  s sort  o original order  r re-read"
	fmt.Print(dimStyle(util.TruncateToWidth(help, width)))
}
