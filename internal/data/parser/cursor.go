package parser

import (
	"bufio"
	"io"
)

// Cursor is a line iterator with one line of pushback. The segment parser
// uses the pushback to hand a non-matching line back to the outer scan
// instead of consuming it.
type Cursor struct {
	scanner *bufio.Scanner
	line    string
	lineNo  int
	pushed  bool
	started bool
}

// NewCursor creates a Cursor over r. The buffer is enlarged because Editor
// logs can contain very long lines (serialized shader blobs and the like).
func NewCursor(r io.Reader) *Cursor {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	return &Cursor{scanner: scanner}
}

// Next advances to the next line. It returns false at end of input or on a
// read error; see Err for the distinction.
func (c *Cursor) Next() bool {
	if c.pushed {
		c.pushed = false
		return true
	}
	if !c.scanner.Scan() {
		return false
	}
	c.line = c.scanner.Text()
	c.lineNo++
	c.started = true
	return true
}

// Line returns the current line. Valid only after a true Next.
func (c *Cursor) Line() string {
	return c.line
}

// LineNo returns the 1-based number of the current line.
func (c *Cursor) LineNo() int {
	return c.lineNo
}

// Unread pushes the current line back so the next Next returns it again.
// Only one line of pushback is held; a second Unread before Next is a no-op.
func (c *Cursor) Unread() {
	if c.started {
		c.pushed = true
	}
}

// Err returns the first read error encountered, if any.
func (c *Cursor) Err() error {
	return c.scanner.Err()
}
