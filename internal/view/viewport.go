package view

import (
	"strings"
	"time"

	"github.com/user/logview/internal/source"
)

// Viewport owns all derived state for one viewer instance: the filtered
// view, the scroll position, the auto-scroll pin and the marker cursor.
// Every mutation recomputes synchronously, and always in the same order:
// filter first, then cursor validity, then scroll position. A window is
// never computed against a stale filtered view
type Viewport struct {
	store    *source.Store
	scrub    *source.Scrubber
	filtered *source.FilteredView
	auto     *AutoScroll

	itemHeight     int
	viewportHeight int
	overscan       int

	scrollOffset int
	cursor       int
}

// NewViewport creates a viewport with an empty store, pinned to the tail
func NewViewport(itemHeight, viewportHeight, overscan, pinTolerance int) *Viewport {
	store := source.NewStore()
	scrub := source.NewScrubber()
	return &Viewport{
		store:          store,
		scrub:          scrub,
		filtered:       source.NewFilteredView(store, scrub),
		auto:           NewAutoScroll(pinTolerance),
		itemHeight:     itemHeight,
		viewportHeight: viewportHeight,
		overscan:       overscan,
		cursor:         -1,
	}
}

// Append feeds new entries in. Returns how many were accepted (duplicate
// ids are dropped). While pinned, the scroll position follows the tail
func (v *Viewport) Append(entries ...source.Entry) int {
	accepted := v.store.Append(entries...)
	if accepted == 0 {
		return 0
	}
	v.observeBounds()
	v.filtered.MarkDirty()

	total := v.filtered.Len()
	v.cursor = ClampCursor(v.cursor, total)
	v.auto.ObserveAppend(v, total, v.itemHeight)
	v.clampScroll()
	return accepted
}

// SetLevelFilter changes the severity predicate and recomputes
func (v *Viewport) SetLevelFilter(f source.LevelFilter) {
	v.filtered.SetLevelFilter(f)
	v.recompute()
}

// SetQuery changes the search text and recomputes
func (v *Viewport) SetQuery(query string) {
	v.filtered.SetQuery(query)
	v.recompute()
}

// SetTimeStart fixes the lower time bound and recomputes
func (v *Viewport) SetTimeStart(t int64) {
	v.scrub.SetStart(t)
	v.filtered.MarkDirty()
	v.recompute()
}

// SetTimeEnd fixes the upper time bound and recomputes
func (v *Viewport) SetTimeEnd(t int64) {
	v.scrub.SetEnd(t)
	v.filtered.MarkDirty()
	v.recompute()
}

// ResetTimeRange releases the time bound back to the data and recomputes
func (v *Viewport) ResetTimeRange() {
	v.scrub.Reset()
	v.observeBounds()
	v.filtered.MarkDirty()
	v.recompute()
}

// recompute re-validates cursor and scroll against the rebuilt view
func (v *Viewport) recompute() {
	total := v.filtered.Len()
	v.cursor = ClampCursor(v.cursor, total)
	if v.auto.Pinned() {
		v.scrollOffset = TailOffset(total, v.itemHeight)
	}
	v.clampScroll()
}

func (v *Viewport) observeBounds() {
	if v.store.Len() == 0 {
		return
	}
	v.scrub.Observe(v.store.At(0).Timestamp, v.store.At(v.store.Len()-1).Timestamp)
}

// ScrollOffset returns the current scroll position
func (v *Viewport) ScrollOffset() int {
	return v.scrollOffset
}

// SetScrollOffset moves the scroll position without treating it as a
// manual scroll (used by the auto-scroll controller)
func (v *Viewport) SetScrollOffset(n int) {
	v.scrollOffset = n
	v.clampScroll()
}

// ScrollTo handles a manual scroll event: moves, clamps, and lets the
// auto-scroll controller decide whether to unpin
func (v *Viewport) ScrollTo(offset int) {
	v.scrollOffset = offset
	v.clampScroll()
	v.auto.ObserveScroll(v.scrollOffset, v.filtered.Len(), v.itemHeight)
}

// ScrollBy scrolls relative to the current position
func (v *Viewport) ScrollBy(delta int) {
	v.ScrollTo(v.scrollOffset + delta)
}

// ScrollToTail moves to the newest entry as a manual scroll. It does not
// re-pin; only TogglePinned does
func (v *Viewport) ScrollToTail() {
	v.ScrollTo(TailOffset(v.filtered.Len(), v.itemHeight))
}

// PageBy scrolls by one viewport height in the given sign
func (v *Viewport) PageBy(sign int) {
	v.ScrollBy(sign * v.viewportHeight)
}

// SetSize updates the viewport height
func (v *Viewport) SetSize(viewportHeight int) {
	v.viewportHeight = viewportHeight
	v.clampScroll()
}

func (v *Viewport) clampScroll() {
	max := TailOffset(v.filtered.Len(), v.itemHeight)
	if v.scrollOffset > max {
		v.scrollOffset = max
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
}

// displayOffset is the offset the window is computed from. The logical
// offset sits on the newest entry while pinned; materializing from
// there would leave most of the surface blank, so rendering clamps to
// the last full screen and keeps the newest entry on the bottom row
func (v *Viewport) displayOffset() int {
	max := v.filtered.Len()*v.itemHeight - v.viewportHeight
	if max < 0 {
		max = 0
	}
	if v.scrollOffset > max {
		return max
	}
	return v.scrollOffset
}

// Window computes the render window against the current filtered view,
// bottom-aligned so a tail position still fills the surface
func (v *Viewport) Window() Window {
	return Compute(v.displayOffset(), v.itemHeight, v.viewportHeight, v.filtered.Len(), v.overscan)
}

// Visible returns the window plus the entries it materializes
func (v *Viewport) Visible() (Window, []source.Entry) {
	w := v.Window()
	return w, v.filtered.Slice(w.Start, w.Rows())
}

// JumpToMarker moves the cursor to the next warn/error entry in the
// given direction and scrolls it into view, top-third aligned. Returns
// the new cursor index, or -1 if no marker remains that way
func (v *Viewport) JumpToMarker(dir Direction) int {
	idx := NextMarker(v.filtered.Entries(), v.cursor, dir)
	if idx < 0 {
		return -1
	}
	v.cursor = idx
	v.ScrollTo(idx*v.itemHeight - v.viewportHeight/3)
	return idx
}

// Cursor returns the marker cursor, -1 when cleared
func (v *Viewport) Cursor() int {
	return v.cursor
}

// ClearCursor drops the marker selection
func (v *Viewport) ClearCursor() {
	v.cursor = -1
}

// TogglePinned flips live-tailing. Re-pinning snaps to the tail
func (v *Viewport) TogglePinned() bool {
	pinned := v.auto.Toggle()
	if pinned {
		v.scrollOffset = TailOffset(v.filtered.Len(), v.itemHeight)
	}
	return pinned
}

// Pinned reports whether the viewport is tailing
func (v *Viewport) Pinned() bool {
	return v.auto.Pinned()
}

// Filtered exposes the filtered view
func (v *Viewport) Filtered() *source.FilteredView {
	return v.filtered
}

// Store exposes the backing store
func (v *Viewport) Store() *source.Store {
	return v.store
}

// Scrubber exposes the time-range bound
func (v *Viewport) Scrubber() *source.Scrubber {
	return v.scrub
}

// ExportText formats the current filtered view for the clipboard,
// one "[timestamp] LEVEL: message" line per entry
func (v *Viewport) ExportText() string {
	entries := v.filtered.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = FormatEntry(e)
	}
	return strings.Join(lines, "\n")
}

// FormatEntry renders one entry in the export format
func FormatEntry(e source.Entry) string {
	ts := time.UnixMilli(e.Timestamp).UTC().Format("2006-01-02T15:04:05.000Z")
	return "[" + ts + "] " + e.Level.String() + ": " + e.Message
}
