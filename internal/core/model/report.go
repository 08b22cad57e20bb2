package model

// BundleKind distinguishes the two bundle flavors the build pipeline emits.
type BundleKind int

const (
	KindAvatar BundleKind = iota
	KindWorld
)

// String returns a human readable kind label.
func (k BundleKind) String() string {
	if k == KindWorld {
		return "world"
	}
	return "avatar"
}

// MarshalJSON emits the kind as its label rather than the enum ordinal.
func (k BundleKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// ReportEntry is one row of a report: either a usage category or a file.
// OriginalIndex is assigned at parse time in encounter order within its
// section and never changes afterwards; it is the final sort tie-break and
// the key used to restore the original order.
type ReportEntry struct {
	OriginalIndex int       `json:"originalIndex"`
	Name          string    `json:"name"`
	Size          SizeValue `json:"size"`
	Percent       float64   `json:"percent"`
}

// Report is the fully parsed result of one build segment.
// A Report only exists in the aggregate when the segment yielded a bundle
// name, a compressed size and both section markers; partial reads are
// discarded by the parser and never reach consumers.
type Report struct {
	Name             string        `json:"name"`
	Kind             BundleKind    `json:"kind"`
	CompressedSize   SizeValue     `json:"compressedSize"`
	UncompressedSize SizeValue     `json:"uncompressedSize"`
	Categories       []ReportEntry `json:"categories"`
	Files            []ReportEntry `json:"files"`
}
