package interaction

import (
	"sort"
	"strings"

	"github.com/awtera/vrcbuild/internal/core/model"
)

// SortKey represents the column an entry collection is ordered by.
type SortKey int

const (
	SortBySize SortKey = iota
	SortByName
	SortByExtension
	SortByOriginalIndex
)

// String returns the key label used in flags and the status line.
func (k SortKey) String() string {
	switch k {
	case SortByName:
		return "name"
	case SortByExtension:
		return "ext"
	case SortByOriginalIndex:
		return "index"
	default:
		return "size"
	}
}

// ParseSortKey maps a flag value to a SortKey.
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(s) {
	case "size":
		return SortBySize, true
	case "name":
		return SortByName, true
	case "ext", "extension":
		return SortByExtension, true
	case "index", "original":
		return SortByOriginalIndex, true
	}
	return SortBySize, false
}

// EntrySorter applies one of the sort keys to a report's entry collection.
// Sorting permanently reorders the collection; there is no separate view
// order, the next redraw simply reflects the new sequence.
type EntrySorter struct {
	key SortKey
}

// NewEntrySorter creates a sorter with the default size ordering.
func NewEntrySorter() *EntrySorter {
	return &EntrySorter{key: SortBySize}
}

// Key returns the current sort key.
func (s *EntrySorter) Key() SortKey {
	return s.key
}

// SetKey selects the sort key for subsequent Sort calls.
func (s *EntrySorter) SetKey(key SortKey) {
	s.key = key
}

// Cycle advances to the next sort key in display order.
func (s *EntrySorter) Cycle() {
	s.key = (s.key + 1) % 4
}

// Sort reorders entries in place by the current key. Every key resolves
// exact ties by OriginalIndex ascending, so the result is a deterministic
// total order even for duplicate values.
func (s *EntrySorter) Sort(entries []model.ReportEntry) {
	var less func(a, b model.ReportEntry) bool

	switch s.key {
	case SortByName:
		less = lessByName
	case SortByExtension:
		less = lessByExtension
	case SortByOriginalIndex:
		less = func(a, b model.ReportEntry) bool {
			return a.OriginalIndex < b.OriginalIndex
		}
	default:
		less = lessBySize
	}

	sort.Slice(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})
}

// lessBySize orders by percent descending, then byte size descending.
// Percent is compared first because it can carry finer precision than a
// coarsely rounded size at low magnitudes.
func lessBySize(a, b model.ReportEntry) bool {
	if a.Percent != b.Percent {
		return a.Percent > b.Percent
	}
	ab, bb := a.Size.Bytes(), b.Size.Bytes()
	if ab != bb {
		return ab > bb
	}
	return a.OriginalIndex < b.OriginalIndex
}

func lessByName(a, b model.ReportEntry) bool {
	an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if an != bn {
		return an < bn
	}
	return a.OriginalIndex < b.OriginalIndex
}

// lessByExtension orders by the name's extension, falling back to the full
// name chain rather than directly to the index.
func lessByExtension(a, b model.ReportEntry) bool {
	ae, be := extensionOf(a.Name), extensionOf(b.Name)
	if ae != be {
		return ae < be
	}
	return lessByName(a, b)
}

// extensionOf returns the lowercased extension of the final path element,
// or "" when it has none.
func extensionOf(name string) string {
	base := name
	if idx := strings.LastIndexAny(base, `/\`); idx >= 0 {
		base = base[idx+1:]
	}
	dot := strings.LastIndex(base, ".")
	if dot < 0 {
		return ""
	}
	return strings.ToLower(base[dot+1:])
}
