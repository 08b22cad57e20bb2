package util

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatBytes renders a canonical byte count in IEC units, e.g. "4.8 MiB".
func FormatBytes(bytes float64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatPercent renders a percentage at one decimal place.
func FormatPercent(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

// FormatCount renders large counts with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}
