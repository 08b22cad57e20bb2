package formatter

import (
	"fmt"
	"io"
	"os"

	"github.com/awtera/vrcbuild/internal/core/model"
	"github.com/awtera/vrcbuild/internal/presentation/layout"
	"github.com/awtera/vrcbuild/internal/util"
)

// TableFormatter renders each report as bordered category and file tables.
type TableFormatter struct {
	out            io.Writer
	showCategories bool
	showFiles      bool
}

// NewTableFormatter creates a table formatter writing to stdout.
func NewTableFormatter(showCategories, showFiles bool) *TableFormatter {
	return &TableFormatter{
		out:            os.Stdout,
		showCategories: showCategories,
		showFiles:      showFiles,
	}
}

// Format prints all reports, most recent first.
func (f *TableFormatter) Format(reports []*model.Report) error {
	if len(reports) == 0 {
		fmt.Fprintln(f.out, "No build reports found.")
		return nil
	}

	for i, report := range reports {
		fmt.Fprintf(f.out, "Build %d: %s (%s)\n", i+1, report.Name, report.Kind)
		fmt.Fprintf(f.out, "  Compressed: %s   Uncompressed: %s\n",
			report.CompressedSize, report.UncompressedSize)

		if f.showCategories {
			f.printSection("Categories", report.Categories)
		}
		if f.showFiles {
			f.printSection("Files", report.Files)
		}
		if i < len(reports)-1 {
			fmt.Fprintln(f.out)
		}
	}
	return nil
}

func (f *TableFormatter) printSection(title string, entries []model.ReportEntry) {
	fmt.Fprintf(f.out, "  %s (%d)\n", title, len(entries))
	if len(entries) == 0 {
		return
	}

	headers := []string{"Name", "Size", "Percent"}
	widths := f.columnWidths(headers, entries)

	f.printBorder(widths, "top")
	f.printRow(widths, headers[0], headers[1], headers[2])
	f.printBorder(widths, "middle")
	for _, entry := range entries {
		f.printRow(widths, entry.Name, entry.Size.String(), util.FormatPercent(entry.Percent))
	}
	f.printBorder(widths, "bottom")
}

// columnWidths sizes each column to its widest cell, with a readability floor.
func (f *TableFormatter) columnWidths(headers []string, entries []model.ReportEntry) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = util.GetDisplayWidth(header)
	}

	for _, entry := range entries {
		cells := []string{entry.Name, entry.Size.String(), util.FormatPercent(entry.Percent)}
		for i, cell := range cells {
			if w := util.GetDisplayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i := range widths {
		if widths[i] < 7 {
			widths[i] = 7
		}
	}
	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	fmt.Fprint(f.out, "  ", left)
	for i, width := range widths {
		for j := 0; j < width+2; j++ {
			fmt.Fprint(f.out, "─")
		}
		if i < len(widths)-1 {
			fmt.Fprint(f.out, middle)
		}
	}
	fmt.Fprintln(f.out, right)
}

// printRow prints one row: name left-aligned, numeric cells right-aligned.
func (f *TableFormatter) printRow(widths []int, name, size, percent string) {
	fmt.Fprintf(f.out, "  │ %s │ %s │ %s │\n",
		layout.PadString(name, widths[0], true),
		layout.PadString(size, widths[1], false),
		layout.PadString(percent, widths[2], false))
}
