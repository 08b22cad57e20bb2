// Package viewer wires the scanner, aggregator, sorter and formatters into
// the two user-facing flows: one-shot report output and the interactive top
// view.
package viewer

import (
	"fmt"
	"time"

	"github.com/awtera/vrcbuild/internal/core/model"
	"github.com/awtera/vrcbuild/internal/data/aggregator"
	"github.com/awtera/vrcbuild/internal/data/scanner"
	"github.com/awtera/vrcbuild/internal/presentation/formatter"
	"github.com/awtera/vrcbuild/internal/presentation/interaction"
	"github.com/awtera/vrcbuild/internal/util"
)

// Config carries everything the viewer needs, resolved from flags and the
// preferences file by the command layer.
type Config struct {
	LogDir         string
	OutputFormat   string
	MaxReports     int
	SortKey        string
	ShowCategories bool
	ShowFiles      bool
}

// Formatter renders a most-recent-first report list to the user.
type Formatter interface {
	Format(reports []*model.Report) error
}

// Viewer is the one-shot pipeline: scan, aggregate, sort, format.
type Viewer struct {
	config     Config
	scanner    *scanner.LogScanner
	aggregator *aggregator.Aggregator
	sorter     *interaction.EntrySorter
}

// New creates a viewer from a resolved config.
func New(config Config) *Viewer {
	sorter := interaction.NewEntrySorter()
	if key, ok := interaction.ParseSortKey(config.SortKey); ok {
		sorter.SetKey(key)
	}
	return &Viewer{
		config:     config,
		scanner:    scanner.NewLogScanner(config.LogDir),
		aggregator: aggregator.NewAggregator(config.MaxReports),
		sorter:     sorter,
	}
}

// Run executes the pipeline once and prints the result.
func (v *Viewer) Run() error {
	start := time.Now()

	reports, err := v.loadReports()
	if err != nil {
		return err
	}
	util.LogDebugf("Loaded %d reports in %v", len(reports), time.Since(start))

	f, err := v.newFormatter()
	if err != nil {
		return err
	}
	return f.Format(reports)
}

// loadReports runs scan, aggregate and per-report sorting. Both entry
// collections of every report are reordered in place by the configured key.
func (v *Viewer) loadReports() ([]*model.Report, error) {
	paths := v.scanner.Scan()
	if len(paths) == 0 {
		return nil, fmt.Errorf("no Unity Editor logs found (searched %s)", v.describeSearch())
	}

	reports := v.aggregator.ReadFiles(paths)
	for _, report := range reports {
		v.sorter.Sort(report.Categories)
		v.sorter.Sort(report.Files)
	}
	return reports, nil
}

func (v *Viewer) describeSearch() string {
	if v.config.LogDir == "" {
		return "default Editor log location"
	}
	return v.config.LogDir
}

func (v *Viewer) newFormatter() (Formatter, error) {
	switch v.config.OutputFormat {
	case "", "table":
		return formatter.NewTableFormatter(v.config.ShowCategories, v.config.ShowFiles), nil
	case "json":
		return formatter.NewJSONFormatter(), nil
	case "csv":
		return formatter.NewCSVFormatter(), nil
	case "summary":
		return formatter.NewSummaryFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected table, json, csv or summary)", v.config.OutputFormat)
	}
}
