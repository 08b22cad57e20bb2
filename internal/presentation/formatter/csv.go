package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/awtera/vrcbuild/internal/core/model"
)

// CSVFormatter emits one row per entry with its owning report and section.
type CSVFormatter struct {
	out io.Writer
}

// NewCSVFormatter creates a CSV formatter writing to stdout.
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{out: os.Stdout}
}

// Format writes a header row followed by every entry of every report.
func (f *CSVFormatter) Format(reports []*model.Report) error {
	w := csv.NewWriter(f.out)
	defer w.Flush()

	headers := []string{"Report", "Kind", "Section", "Index", "Name", "Size", "Bytes", "Percent"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, report := range reports {
		if err := f.writeSection(w, report, "category", report.Categories); err != nil {
			return err
		}
		if err := f.writeSection(w, report, "file", report.Files); err != nil {
			return err
		}
	}
	return w.Error()
}

func (f *CSVFormatter) writeSection(w *csv.Writer, report *model.Report, section string, entries []model.ReportEntry) error {
	for _, entry := range entries {
		record := []string{
			report.Name,
			report.Kind.String(),
			section,
			fmt.Sprintf("%d", entry.OriginalIndex),
			entry.Name,
			entry.Size.String(),
			fmt.Sprintf("%.0f", entry.Size.Bytes()),
			fmt.Sprintf("%.1f", entry.Percent),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
