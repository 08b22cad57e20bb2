package formatter

import (
	"fmt"
	"io"
	"os"

	"github.com/awtera/vrcbuild/internal/core/model"
	"github.com/bytedance/sonic"
)

// JSONFormatter dumps the full report collection as indented JSON.
type JSONFormatter struct {
	out io.Writer
}

// NewJSONFormatter creates a JSON formatter writing to stdout.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{out: os.Stdout}
}

// Format encodes the reports, most recent first.
func (f *JSONFormatter) Format(reports []*model.Report) error {
	if reports == nil {
		reports = []*model.Report{}
	}
	data, err := sonic.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.out, string(data))
	return err
}
