package view

// Window is the contiguous index range of the filtered view that must be
// materialized, plus the translation that puts the first rendered row at
// its logical position. Rows outside [Start, End) are never rendered, so
// render cost is bounded by the viewport, not by total log volume
type Window struct {
	Start       int
	End         int
	PixelOffset int
}

// Rows returns the number of rows the window materializes
func (w Window) Rows() int {
	return w.End - w.Start
}

// Compute derives the render window from a scroll position.
// itemHeight must be positive; totalItems == 0 yields the empty window.
// The invariant 0 <= Start <= End <= totalItems always holds, and
// Rows() never exceeds ceil(viewportHeight/itemHeight) + overscan
func Compute(scrollOffset, itemHeight, viewportHeight, totalItems, overscan int) Window {
	if totalItems <= 0 {
		return Window{}
	}

	if scrollOffset < 0 {
		scrollOffset = 0
	}

	start := scrollOffset / itemHeight
	if start > totalItems {
		start = totalItems
	}

	visible := (viewportHeight + itemHeight - 1) / itemHeight
	end := start + visible + overscan
	if end > totalItems {
		end = totalItems
	}

	return Window{
		Start:       start,
		End:         end,
		PixelOffset: start * itemHeight,
	}
}

// TailOffset returns the scroll offset that lands on the newest entry
func TailOffset(totalItems, itemHeight int) int {
	if totalItems <= 0 {
		return 0
	}
	return (totalItems - 1) * itemHeight
}
