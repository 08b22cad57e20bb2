// Package grammar holds the line-matching rules for build segments found in
// Unity Editor logs. Every rule matches against the whole line with
// surrounding whitespace ignored, so a line that fits none of the shapes
// fails cleanly instead of partially matching.
package grammar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/awtera/vrcbuild/internal/core/model"
)

const (
	segmentBeginPrefix = "Bundle Name:"

	// CategoryMarker opens the per-category usage section.
	CategoryMarker = "Uncompressed usage by category:"

	// FileMarker opens the per-asset section.
	FileMarker = "Used Assets and files from the Resources folder, sorted by uncompressed size:"
)

// Terminator is the dashed rule the build pipeline prints after the asset
// list. It ends a section and doubles as the hard stop for a segment read.
var Terminator = strings.Repeat("-", 80)

// Avatar bundles carry a prefab id token pair, world bundles a scene token
// pair. A "Bundle Name:" line with neither pair is not a segment start.
var (
	avatarTokens = [2]string{"avtr", "prefab"}
	worldTokens  = [2]string{"scene", "vrcw"}
)

var (
	compressedSizeRe = regexp.MustCompile(`^Compressed Size:\s+(\d+(?:\.\d+)?)\s+([A-Za-z]{1,2})$`)
	categoryRecordRe = regexp.MustCompile(`^(\S.*?)\s+(\d+(?:\.\d+)?)\s+([A-Za-z]{1,2})(?:\s+(\d+(?:\.\d+)?)%)?$`)
	fileRecordRe     = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+([A-Za-z]{1,2})\s+(\d+(?:\.\d+)?)%\s+(\S.*)$`)
)

// SegmentBegin carries the captures of a matched segment-begin line.
type SegmentBegin struct {
	BundleName string
	Kind       model.BundleKind
}

// MatchSegmentBegin reports whether the line starts a build segment.
func MatchSegmentBegin(line string) (SegmentBegin, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, segmentBeginPrefix) {
		return SegmentBegin{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, segmentBeginPrefix))
	switch {
	case strings.Contains(rest, avatarTokens[0]) && strings.Contains(rest, avatarTokens[1]):
		return SegmentBegin{BundleName: rest, Kind: model.KindAvatar}, true
	case strings.Contains(rest, worldTokens[0]) && strings.Contains(rest, worldTokens[1]):
		return SegmentBegin{BundleName: rest, Kind: model.KindWorld}, true
	}
	return SegmentBegin{}, false
}

// MatchCompressedSize matches the "Compressed Size:" marker line.
func MatchCompressedSize(line string) (model.SizeValue, bool) {
	m := compressedSizeRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return model.SizeValue{}, false
	}

	magnitude, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return model.SizeValue{}, false
	}
	return model.NewSizeValue(magnitude, model.ParseSizeUnit(m[2])), true
}

// IsCategoryMarker reports whether the line is the exact category header.
func IsCategoryMarker(line string) bool {
	return strings.TrimSpace(line) == CategoryMarker
}

// IsFileMarker reports whether the line is the exact file-section header.
func IsFileMarker(line string) bool {
	return strings.TrimSpace(line) == FileMarker
}

// IsTerminator reports whether the line is the dashed rule.
func IsTerminator(line string) bool {
	return strings.TrimSpace(line) == Terminator
}

// MatchCategoryRecord matches a category row: name, size, optional percent.
// A missing percent normalizes to 0.0.
func MatchCategoryRecord(line string) (model.ReportEntry, bool) {
	m := categoryRecordRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return model.ReportEntry{}, false
	}

	magnitude, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return model.ReportEntry{}, false
	}

	percent := 0.0
	if m[4] != "" {
		percent, err = strconv.ParseFloat(m[4], 64)
		if err != nil {
			return model.ReportEntry{}, false
		}
	}

	return model.ReportEntry{
		Name:    strings.TrimSpace(m[1]),
		Size:    model.NewSizeValue(magnitude, model.ParseSizeUnit(m[3])),
		Percent: percent,
	}, true
}

// MatchFileRecord matches an asset row: size, required percent, then path.
// Field order differs from category rows.
func MatchFileRecord(line string) (model.ReportEntry, bool) {
	m := fileRecordRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return model.ReportEntry{}, false
	}

	magnitude, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return model.ReportEntry{}, false
	}
	percent, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return model.ReportEntry{}, false
	}

	return model.ReportEntry{
		Name:    strings.TrimSpace(m[4]),
		Size:    model.NewSizeValue(magnitude, model.ParseSizeUnit(m[2])),
		Percent: percent,
	}, true
}
