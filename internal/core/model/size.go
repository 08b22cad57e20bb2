package model

import (
	"fmt"
	"strings"
)

// SizeUnit represents the unit token attached to a size expression in the log.
type SizeUnit int

const (
	UnitBytes SizeUnit = iota
	UnitKB
	UnitMB
	UnitGB
	UnitUnrecognized
)

// Binary multiples: the build pipeline reports kb/mb/gb as 1024-based units.
const (
	bytesPerKB = 1024
	bytesPerMB = 1024 * 1024
	bytesPerGB = 1024 * 1024 * 1024
)

// ParseSizeUnit maps a 1-2 letter unit token to a SizeUnit.
// Unknown tokens map to UnitUnrecognized, which converts like bytes.
func ParseSizeUnit(token string) SizeUnit {
	switch strings.ToLower(token) {
	case "b":
		return UnitBytes
	case "kb":
		return UnitKB
	case "mb":
		return UnitMB
	case "gb":
		return UnitGB
	default:
		return UnitUnrecognized
	}
}

// Token returns the display token for the unit.
func (u SizeUnit) Token() string {
	switch u {
	case UnitKB:
		return "kb"
	case UnitMB:
		return "mb"
	case UnitGB:
		return "gb"
	default:
		return "b"
	}
}

// SizeValue is a parsed size: a decimal magnitude plus a unit.
// Values are immutable after construction; the display string is computed
// once in NewSizeValue so it can never go stale.
type SizeValue struct {
	magnitude float64
	unit      SizeUnit
	display   string
}

// NewSizeValue creates a SizeValue. Negative magnitudes are clamped to zero.
func NewSizeValue(magnitude float64, unit SizeUnit) SizeValue {
	if magnitude < 0 {
		magnitude = 0
	}
	return SizeValue{
		magnitude: magnitude,
		unit:      unit,
		display:   fmt.Sprintf("%.1f %s", magnitude, unit.Token()),
	}
}

// Magnitude returns the decimal magnitude as written in the log.
func (s SizeValue) Magnitude() float64 {
	return s.magnitude
}

// Unit returns the size unit.
func (s SizeValue) Unit() SizeUnit {
	return s.unit
}

// Bytes converts the size to a canonical byte count using binary multiples.
// Unrecognized units are treated as bytes.
func (s SizeValue) Bytes() float64 {
	switch s.unit {
	case UnitKB:
		return s.magnitude * bytesPerKB
	case UnitMB:
		return s.magnitude * bytesPerMB
	case UnitGB:
		return s.magnitude * bytesPerGB
	default:
		return s.magnitude
	}
}

// String returns the fixed one-decimal display form, e.g. "12.3 mb".
func (s SizeValue) String() string {
	return s.display
}

// MarshalJSON emits the size in both original and canonical forms.
func (s SizeValue) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"magnitude":%g,"unit":%q,"bytes":%.0f,"display":%q}`,
		s.magnitude, s.unit.Token(), s.Bytes(), s.display)), nil
}
