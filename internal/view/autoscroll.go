package view

// ScrollHost is the narrow surface the controller needs from whatever
// owns the real scroll position. It keeps this package independent of
// any particular rendering surface
type ScrollHost interface {
	ScrollOffset() int
	SetScrollOffset(n int)
}

// AutoScroll tracks whether the viewport stays pinned to the newest
// entry. It starts pinned. Scrolling away from the tail unpins it;
// only an explicit toggle re-pins, so the controller never fights a
// user who is inspecting history
type AutoScroll struct {
	pinned    bool
	tolerance int
}

// NewAutoScroll creates a pinned controller.
// tolerance is how far above the tail, in pixels, still counts as "at
// the bottom" when deciding whether a manual scroll should unpin
func NewAutoScroll(tolerance int) *AutoScroll {
	return &AutoScroll{
		pinned:    true,
		tolerance: tolerance,
	}
}

// Pinned reports whether tailing is active
func (a *AutoScroll) Pinned() bool {
	return a.pinned
}

// SetPinned sets the pin state explicitly (the user's toggle)
func (a *AutoScroll) SetPinned(pinned bool) {
	a.pinned = pinned
}

// Toggle flips the pin state and returns the new value
func (a *AutoScroll) Toggle() bool {
	a.pinned = !a.pinned
	return a.pinned
}

// ObserveScroll reacts to a manual scroll event. A position outside the
// bottom tolerance unpins; a position near the bottom never re-pins
func (a *AutoScroll) ObserveScroll(offset, totalItems, itemHeight int) {
	if !a.pinned {
		return
	}
	if TailOffset(totalItems, itemHeight)-offset > a.tolerance {
		a.pinned = false
	}
}

// ObserveAppend reacts to filtered-view growth. While pinned the host is
// forced to the new tail; while unpinned the offset is left alone
func (a *AutoScroll) ObserveAppend(host ScrollHost, totalItems, itemHeight int) {
	if !a.pinned {
		return
	}
	host.SetScrollOffset(TailOffset(totalItems, itemHeight))
}
