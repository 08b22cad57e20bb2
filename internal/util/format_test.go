package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KiB", FormatBytes(1024))
	assert.Equal(t, "4.8 MiB", FormatBytes(4.8*1024*1024))
	assert.Equal(t, "0 B", FormatBytes(-10))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "4.5%", FormatPercent(4.5))
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "66.1%", FormatPercent(66.123))
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "short", TruncateToWidth("short", 10))
	assert.Equal(t, "Assets/Lo…", TruncateToWidth("Assets/LongPath/file.png", 10))
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "  ab  ", CenterText("ab", 6))
	assert.Equal(t, "toolong", CenterText("toolong", 7))
}
