// Package parser reads one candidate build segment from a line cursor and
// either produces a fully populated report or rejects the segment.
package parser

import (
	"errors"
	"fmt"

	"github.com/awtera/vrcbuild/internal/core/model"
	"github.com/awtera/vrcbuild/internal/data/grammar"
	"github.com/awtera/vrcbuild/internal/util"
)

// ErrIncompleteSegment is returned when a segment-begin line was found but
// the segment ended before the compressed size and both section markers were
// observed. The caller discards the attempt and resumes scanning from where
// the cursor stopped.
var ErrIncompleteSegment = errors.New("incomplete build segment")

type parseState int

const (
	stateAwaitName parseState = iota
	stateAwaitCompressedSize
	stateReadingSections
)

// SegmentParser is the per-segment state machine. It carries no state between
// Parse calls other than the source name used in diagnostics.
type SegmentParser struct {
	source string
}

// NewSegmentParser creates a parser; source names the input in diagnostics.
func NewSegmentParser(source string) *SegmentParser {
	return &SegmentParser{source: source}
}

// Parse consumes lines from cur until the segment is complete or rejected.
// A report is returned only when the bundle name, the compressed size and
// both section markers were all observed. Any other outcome yields
// ErrIncompleteSegment; the lines consumed by the attempt stay consumed.
func (p *SegmentParser) Parse(cur *Cursor) (*model.Report, error) {
	report := &model.Report{}
	state := stateAwaitName

	var (
		compressedSeen bool
		categoriesRead bool
		filesRead      bool
	)

scan:
	for cur.Next() {
		line := cur.Line()

		// The dashed rule bounds a segment read in every state, so a
		// misidentified begin line cannot run away through the log.
		if grammar.IsTerminator(line) {
			break
		}

		switch state {
		case stateAwaitName:
			if begin, ok := grammar.MatchSegmentBegin(line); ok {
				report.Name = begin.BundleName
				report.Kind = begin.Kind
				state = stateAwaitCompressedSize
			}

		case stateAwaitCompressedSize:
			if size, ok := grammar.MatchCompressedSize(line); ok {
				report.CompressedSize = size
				compressedSeen = true
				state = stateReadingSections
			}

		case stateReadingSections:
			switch {
			case grammar.IsCategoryMarker(line) && !categoriesRead:
				categoriesRead = true
				p.readCategories(cur, report)
			case grammar.IsFileMarker(line) && !filesRead:
				filesRead = true
				p.readFiles(cur, report)
			}
			if categoriesRead && filesRead {
				break scan
			}
		}
	}

	if err := cur.Err(); err != nil {
		util.LogWarnf("Read error in %s near line %d: %v", p.source, cur.LineNo(), err)
	}

	if report.Name == "" || !compressedSeen || !categoriesRead || !filesRead {
		return nil, fmt.Errorf("%w: name=%t compressedSize=%t categories=%t files=%t",
			ErrIncompleteSegment, report.Name != "", compressedSeen, categoriesRead, filesRead)
	}
	return report, nil
}

// uncompressedSizeRow is the synthetic category row whose size is the whole
// uncompressed build. The row is captured into the report header but kept in
// the category list, matching the build pipeline's own report layout.
const uncompressedSizeRow = "Complete build size"

// readCategories consumes category records until the file marker, the
// terminator or a non-matching line. The terminating line is pushed back for
// the outer loop; a non-matching record ends only this section.
func (p *SegmentParser) readCategories(cur *Cursor, report *model.Report) {
	for cur.Next() {
		line := cur.Line()
		if grammar.IsFileMarker(line) || grammar.IsTerminator(line) {
			cur.Unread()
			return
		}

		entry, ok := grammar.MatchCategoryRecord(line)
		if !ok {
			util.LogWarnf("Unexpected line during category read %s:%d: %q",
				p.source, cur.LineNo(), line)
			cur.Unread()
			return
		}

		entry.OriginalIndex = len(report.Categories)
		if entry.Name == uncompressedSizeRow {
			report.UncompressedSize = entry.Size
		}
		report.Categories = append(report.Categories, entry)
	}
}

// readFiles consumes file records until the terminator or a non-matching
// line, symmetric to readCategories.
func (p *SegmentParser) readFiles(cur *Cursor, report *model.Report) {
	for cur.Next() {
		line := cur.Line()
		if grammar.IsCategoryMarker(line) || grammar.IsTerminator(line) {
			cur.Unread()
			return
		}

		entry, ok := grammar.MatchFileRecord(line)
		if !ok {
			util.LogWarnf("Unexpected line during file read %s:%d: %q",
				p.source, cur.LineNo(), line)
			cur.Unread()
			return
		}

		entry.OriginalIndex = len(report.Files)
		report.Files = append(report.Files, entry)
	}
}
