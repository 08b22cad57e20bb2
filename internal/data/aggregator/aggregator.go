// Package aggregator scans raw log sources for build segments and collects
// the parsed reports into a retention-capped, most-recent-first list.
package aggregator

import (
	"errors"
	"io"
	"os"

	"github.com/awtera/vrcbuild/internal/core/model"
	"github.com/awtera/vrcbuild/internal/data/grammar"
	"github.com/awtera/vrcbuild/internal/data/parser"
	"github.com/awtera/vrcbuild/internal/util"
)

// DefaultMaxReports is the retention cap applied when the caller supplies
// nothing better.
const DefaultMaxReports = 20

// Source is one raw log stream. Name is used in diagnostics only.
type Source struct {
	Name   string
	Reader io.Reader
}

// Aggregator drives the segment parser over ordered log sources.
type Aggregator struct {
	maxReports int
}

// NewAggregator creates an Aggregator with the given retention cap.
// Non-positive values are clamped to 1 rather than rejected.
func NewAggregator(maxReports int) *Aggregator {
	if maxReports < 1 {
		util.LogWarnf("Invalid report retention %d, clamping to 1", maxReports)
		maxReports = 1
	}
	return &Aggregator{maxReports: maxReports}
}

// MaxReports returns the effective retention cap.
func (a *Aggregator) MaxReports() int {
	return a.maxReports
}

// ReadAll scans the sources in the order supplied. The caller orders sources
// least-recent first; each source is internally oldest-first, so reversing
// the collected list once at the end yields global most-recent-first order.
// The reversed list is then truncated to the retention cap, dropping the
// oldest entries.
func (a *Aggregator) ReadAll(sources []Source) []*model.Report {
	var reports []*model.Report
	for _, src := range sources {
		reports = append(reports, a.scanSource(src)...)
	}
	return a.finalize(reports)
}

// ReadFiles opens each path and scans it, skipping unreadable files with a
// warning. Handles are closed before the next source is opened, on every
// path including parse failure.
func (a *Aggregator) ReadFiles(paths []string) []*model.Report {
	var reports []*model.Report
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			util.LogWarnf("Skipping unreadable log source %s: %v", path, err)
			continue
		}
		reports = append(reports, a.scanSource(Source{Name: path, Reader: file})...)
		file.Close()
	}
	return a.finalize(reports)
}

// finalize reverses the oldest-first collection into most-recent-first order
// and applies the retention cap. Reversing once keeps the per-segment append
// O(1); segments never cross source boundaries, so this is safe across the
// merge.
func (a *Aggregator) finalize(reports []*model.Report) []*model.Report {
	for i, j := 0, len(reports)-1; i < j; i, j = i+1, j-1 {
		reports[i], reports[j] = reports[j], reports[i]
	}
	if len(reports) > a.maxReports {
		reports = reports[:a.maxReports]
	}
	return reports
}

// scanSource walks one source top to bottom. Every line is a segment-begin
// candidate; on a match the parser takes over from that line, and scanning
// resumes wherever the attempt stopped consuming input.
func (a *Aggregator) scanSource(src Source) []*model.Report {
	var reports []*model.Report
	cur := parser.NewCursor(src.Reader)
	p := parser.NewSegmentParser(src.Name)

	for cur.Next() {
		if _, ok := grammar.MatchSegmentBegin(cur.Line()); !ok {
			continue
		}
		cur.Unread()

		report, err := p.Parse(cur)
		if err != nil {
			if errors.Is(err, parser.ErrIncompleteSegment) {
				util.LogWarnf("Discarding incomplete build segment in %s: %v", src.Name, err)
			}
			continue
		}

		util.LogDebugf("Parsed build report %q (%s) from %s: %d categories, %d files",
			report.Name, report.Kind, src.Name, len(report.Categories), len(report.Files))
		reports = append(reports, report)
	}

	if err := cur.Err(); err != nil {
		util.LogWarnf("Stopped reading %s after line %d: %v", src.Name, cur.LineNo(), err)
	}
	return reports
}
