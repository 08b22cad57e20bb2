package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// TerminalSize is the usable character grid of the output terminal.
type TerminalSize struct {
	Width  int
	Height int
}

// Fallback grid used when the output is not a terminal.
const (
	fallbackWidth  = 100
	fallbackHeight = 30
)

// GetTerminalSize returns the current terminal dimensions with fallbacks
// for non-terminal outputs.
func GetTerminalSize() TerminalSize {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 20 {
		return TerminalSize{Width: fallbackWidth, Height: fallbackHeight}
	}
	return TerminalSize{Width: width, Height: height}
}

// PadString pads a string to a specific display width, handling wide runes
// correctly.
func PadString(s string, width int, leftAlign bool) string {
	actualWidth := runewidth.StringWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}
