package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	EnterAltScreen = "\033[?1049h"
	ExitAltScreen  = "\033[?1049l"
	ClearScreen    = "\033[2J"
	ClearLine      = "\033[2K"
	ClearToEnd     = "\033[J"
	MoveCursorHome = "\033[H"
	HideCursor     = "\033[?25l"
	ShowCursor     = "\033[?25h"
)

// GetDisplayWidth calculates the display width of a string, accounting for
// wide runes.
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateToWidth shortens text to the given display width, appending an
// ellipsis when anything was cut.
func TruncateToWidth(text string, width int) string {
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= 1 {
		return runewidth.Truncate(text, width, "")
	}
	return runewidth.Truncate(text, width, "…")
}

// CenterText centers text within the given display width.
func CenterText(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return TruncateToWidth(text, width)
	}
	padding := (width - w) / 2
	return fmt.Sprintf("%s%s%s", strings.Repeat(" ", padding), text, strings.Repeat(" ", width-padding-w))
}

// MoveCursor returns the ANSI sequence to move the cursor to row/col.
func MoveCursor(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}
