package formatter

import (
	"fmt"
	"io"
	"os"

	"github.com/awtera/vrcbuild/internal/core/model"
	"github.com/awtera/vrcbuild/internal/util"
	"github.com/fatih/color"
)

// SummaryFormatter prints one accented line per report plus overall totals.
type SummaryFormatter struct {
	out io.Writer
}

// NewSummaryFormatter creates a summary formatter writing to stdout.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{out: os.Stdout}
}

var (
	avatarBadge = color.New(color.FgCyan, color.Bold).SprintFunc()
	worldBadge  = color.New(color.FgGreen, color.Bold).SprintFunc()
	dimText     = color.New(color.Faint).SprintFunc()
)

// Format prints the report summaries, most recent first.
func (f *SummaryFormatter) Format(reports []*model.Report) error {
	if len(reports) == 0 {
		fmt.Fprintln(f.out, "No build reports found.")
		return nil
	}

	var totalCompressed float64
	for i, report := range reports {
		badge := avatarBadge("[avatar]")
		if report.Kind == model.KindWorld {
			badge = worldBadge("[world]")
		}

		fmt.Fprintf(f.out, "%2d. %s %s\n", i+1, badge, report.Name)
		fmt.Fprintf(f.out, "    compressed %s (%s)  uncompressed %s  %s\n",
			report.CompressedSize,
			util.FormatBytes(report.CompressedSize.Bytes()),
			report.UncompressedSize,
			dimText(fmt.Sprintf("%d categories, %d files",
				len(report.Categories), len(report.Files))))

		totalCompressed += report.CompressedSize.Bytes()
	}

	fmt.Fprintf(f.out, "\n%d reports, %s compressed in total\n",
		len(reports), util.FormatBytes(totalCompressed))
	return nil
}
