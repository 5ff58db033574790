package view

import (
	"strings"
	"testing"

	"github.com/user/logview/internal/source"
)

func infoEntry(id string, ts int64) source.Entry {
	return source.Entry{ID: id, Timestamp: ts, Level: source.LevelInfo, Message: "entry " + id}
}

func fill(v *Viewport, n int) {
	for i := 0; i < n; i++ {
		v.Append(infoEntry(string(rune('a'+i%26))+string(rune('0'+i/26)), int64(i+1)*1000))
	}
}

func TestViewport_PinnedAppendFollowsTail(t *testing.T) {
	v := NewViewport(20, 200, 5, 50)
	fill(v, 10)

	if v.ScrollOffset() != 180 {
		t.Fatalf("expected tail offset 180 after 10 entries, got %d", v.ScrollOffset())
	}

	v.Append(infoEntry("zz", 11000))
	if v.ScrollOffset() != 200 {
		t.Errorf("expected offset 200 after append, got %d", v.ScrollOffset())
	}
}

func TestViewport_UnpinnedAppendKeepsPosition(t *testing.T) {
	v := NewViewport(20, 200, 5, 50)
	fill(v, 100)

	v.ScrollTo(0)
	if v.Pinned() {
		t.Fatal("scrolling to top should unpin")
	}

	v.Append(infoEntry("zz", 999000))
	if v.ScrollOffset() != 0 {
		t.Errorf("append while unpinned moved the offset to %d", v.ScrollOffset())
	}
}

func TestViewport_TogglePinSnapsToTail(t *testing.T) {
	v := NewViewport(20, 200, 5, 50)
	fill(v, 100)

	v.ScrollTo(0)
	if pinned := v.TogglePinned(); !pinned {
		t.Fatal("expected toggle to re-pin")
	}
	if v.ScrollOffset() != TailOffset(100, 20) {
		t.Errorf("re-pin should snap to tail, got %d", v.ScrollOffset())
	}
}

func TestViewport_WindowBottomAlignsAtTail(t *testing.T) {
	v := NewViewport(20, 200, 5, 50)
	fill(v, 100)

	// The pin keeps the logical offset on the newest entry
	if v.ScrollOffset() != 1980 {
		t.Fatalf("expected tail offset 1980, got %d", v.ScrollOffset())
	}

	// The materialized window still fills the surface, ending at the tail
	w, entries := v.Visible()
	if w.End != 100 {
		t.Fatalf("window should end at the newest entry, got end %d", w.End)
	}
	if w.Start != 90 {
		t.Errorf("expected a full final screen starting at 90, got start %d", w.Start)
	}
	if len(entries) != 10 {
		t.Errorf("expected 10 materialized rows, got %d", len(entries))
	}

	// Manual jump to the tail bottom-aligns the same way
	v.ScrollTo(0)
	v.ScrollToTail()
	if w := v.Window(); w.Start != 90 || w.End != 100 {
		t.Errorf("tail jump should show the final screen, got [%d,%d)", w.Start, w.End)
	}
}

func TestViewport_DuplicateAppendIsNoOp(t *testing.T) {
	v := NewViewport(20, 200, 5, 50)
	v.Append(infoEntry("a0", 1000))
	before := v.Filtered().Len()

	if n := v.Append(infoEntry("a0", 1000)); n != 0 {
		t.Fatalf("expected replayed entry to be dropped, accepted %d", n)
	}
	if v.Filtered().Len() != before {
		t.Errorf("filtered view grew on duplicate append")
	}
}

func TestViewport_FilterShrinkClampsCursor(t *testing.T) {
	v := NewViewport(20, 200, 5, 50)
	fill(v, 50)
	v.Append(source.Entry{ID: "err", Timestamp: 60000, Level: source.LevelError, Message: "boom"})

	if idx := v.JumpToMarker(Forward); idx != 50 {
		t.Fatalf("expected marker at 50, got %d", idx)
	}

	// Query that matches only a handful of entries, fewer than the cursor
	v.SetQuery("entry a")
	if c := v.Cursor(); c >= v.Filtered().Len() && c != -1 {
		t.Errorf("cursor %d indexes past filtered view of %d", c, v.Filtered().Len())
	}

	v.SetQuery("no such message")
	if v.Filtered().Len() != 0 {
		t.Fatalf("expected empty filtered view")
	}
	if v.Cursor() != -1 {
		t.Errorf("cursor should clear on empty view, got %d", v.Cursor())
	}
}

func TestViewport_JumpToMarkerMovesViewportAndCursor(t *testing.T) {
	v := NewViewport(20, 200, 5, 50)
	fill(v, 100)
	v.ScrollTo(0)
	v.Append(source.Entry{ID: "err", Timestamp: 999000, Level: source.LevelWarn, Message: "careful"})

	idx := v.JumpToMarker(Forward)
	if idx != 100 {
		t.Fatalf("expected marker at index 100, got %d", idx)
	}
	if v.Cursor() != 100 {
		t.Errorf("cursor not updated, got %d", v.Cursor())
	}

	// Marker lands inside the window, top-third aligned
	w := v.Window()
	if idx < w.Start || idx >= w.End {
		t.Errorf("marker %d outside window [%d,%d)", idx, w.Start, w.End)
	}
}

func TestViewport_WindowNeverExceedsFilteredView(t *testing.T) {
	v := NewViewport(20, 200, 5, 50)
	fill(v, 30)

	// Combined update: new filter plus append in one logical change; the
	// window must be computed against the final filtered view
	v.SetQuery("entry a")
	v.Append(infoEntry("zz", 999000))

	w, entries := v.Visible()
	if w.End > v.Filtered().Len() {
		t.Errorf("window end %d exceeds filtered length %d", w.End, v.Filtered().Len())
	}
	if len(entries) != w.Rows() {
		t.Errorf("expected %d materialized rows, got %d", w.Rows(), len(entries))
	}
}

func TestViewport_EmptyStoreShortCircuits(t *testing.T) {
	v := NewViewport(20, 200, 5, 50)

	w, entries := v.Visible()
	if w.Rows() != 0 || len(entries) != 0 {
		t.Errorf("empty viewport should materialize nothing, got %d rows", len(entries))
	}
	if v.ScrollOffset() != 0 {
		t.Errorf("expected zero offset, got %d", v.ScrollOffset())
	}
	if idx := v.JumpToMarker(Forward); idx != -1 {
		t.Errorf("marker jump on empty view should fail, got %d", idx)
	}
}

func TestViewport_ExportFormat(t *testing.T) {
	v := NewViewport(20, 200, 5, 50)
	v.Append(
		source.Entry{ID: "a", Timestamp: 0, Level: source.LevelInfo, Message: "server started"},
		source.Entry{ID: "b", Timestamp: 1500, Level: source.LevelError, Message: "boom"},
	)

	got := v.ExportText()
	want := "[1970-01-01T00:00:00.000Z] INFO: server started\n[1970-01-01T00:00:01.500Z] ERROR: boom"
	if got != want {
		t.Errorf("export mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestViewport_ExportRespectsFilter(t *testing.T) {
	v := NewViewport(20, 200, 5, 50)
	fill(v, 5)
	v.Append(source.Entry{ID: "err", Timestamp: 60000, Level: source.LevelError, Message: "boom"})

	v.SetLevelFilter(source.OnlyLevel(source.LevelError))
	got := v.ExportText()
	if strings.Contains(got, "entry") {
		t.Errorf("export leaked filtered-out entries: %q", got)
	}
	if !strings.Contains(got, "ERROR: boom") {
		t.Errorf("export missing error entry: %q", got)
	}
}

func TestViewport_TimeRangeBoundAndReset(t *testing.T) {
	v := NewViewport(20, 200, 5, 50)
	fill(v, 10) // timestamps 1000..10000

	v.SetTimeEnd(3000)
	if v.Filtered().Len() != 3 {
		t.Fatalf("expected 3 entries up to 3000, got %d", v.Filtered().Len())
	}

	v.ResetTimeRange()
	if v.Filtered().Len() != 10 {
		t.Errorf("expected full view after reset, got %d", v.Filtered().Len())
	}
}
