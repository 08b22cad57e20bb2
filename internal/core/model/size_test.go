package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSizeUnit(t *testing.T) {
	tests := []struct {
		token string
		want  SizeUnit
	}{
		{"b", UnitBytes},
		{"B", UnitBytes},
		{"kb", UnitKB},
		{"KB", UnitKB},
		{"mb", UnitMB},
		{"gb", UnitGB},
		{"tb", UnitUnrecognized},
		{"", UnitUnrecognized},
		{"xy", UnitUnrecognized},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSizeUnit(tt.token), "token %q", tt.token)
	}
}

func TestSizeValueBytes(t *testing.T) {
	assert.Equal(t, 512.0, NewSizeValue(512, UnitBytes).Bytes())
	assert.Equal(t, 512*1024.0, NewSizeValue(512, UnitKB).Bytes())
	assert.Equal(t, 12.3*1024*1024, NewSizeValue(12.3, UnitMB).Bytes())
	assert.Equal(t, 2*1024*1024*1024.0, NewSizeValue(2, UnitGB).Bytes())

	// Unrecognized units convert like bytes.
	assert.Equal(t, 7.0, NewSizeValue(7, UnitUnrecognized).Bytes())
}

func TestSizeValueDisplay(t *testing.T) {
	assert.Equal(t, "12.3 mb", NewSizeValue(12.3, UnitMB).String())
	assert.Equal(t, "512.0 kb", NewSizeValue(512, UnitKB).String())
	assert.Equal(t, "0.0 b", NewSizeValue(0, UnitBytes).String())
}

func TestSizeValueClampsNegativeMagnitude(t *testing.T) {
	s := NewSizeValue(-4.2, UnitMB)
	assert.Equal(t, 0.0, s.Magnitude())
	assert.Equal(t, 0.0, s.Bytes())
	assert.Equal(t, "0.0 mb", s.String())
}

// Formatting a byte count at one-decimal precision and parsing it back
// must round-trip within one rounding step of the display precision.
func TestSizeValueRoundTrip(t *testing.T) {
	for _, mb := range []float64{0.1, 1.0, 4.9, 12.3, 250.7} {
		orig := NewSizeValue(mb, UnitMB)
		reparsed := NewSizeValue(orig.Magnitude(), ParseSizeUnit(orig.Unit().Token()))
		assert.InDelta(t, orig.Bytes(), reparsed.Bytes(), 0.05*1024*1024)
	}
}
