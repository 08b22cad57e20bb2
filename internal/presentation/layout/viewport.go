package layout

import "math"

// VisibleRange maps scroll state to the half-open index range [start, end)
// of items that intersect the viewport, so a redraw only touches the rows it
// can actually show. Pure function, recomputed on every redraw.
//
// Guarantees: 0 <= start <= end <= itemCount; the range is empty exactly
// when itemCount == 0 or viewportHeight <= 0.
func VisibleRange(scrollOffset, viewportHeight, itemHeight float64, itemCount int) (int, int) {
	if itemCount <= 0 || viewportHeight <= 0 || itemHeight <= 0 {
		return 0, 0
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	end := int(math.Ceil((scrollOffset + viewportHeight) / itemHeight))
	if end > itemCount {
		end = itemCount
	}

	start := int(math.Floor(scrollOffset / itemHeight))
	if start > end {
		start = end
	}

	return start, end
}
