package view

import (
	"testing"

	"github.com/user/logview/internal/source"
)

func markerEntries() []source.Entry {
	levels := []source.Level{
		source.LevelInfo,  // 0
		source.LevelDebug, // 1
		source.LevelInfo,  // 2
		source.LevelInfo,  // 3
		source.LevelInfo,  // 4
		source.LevelError, // 5
		source.LevelInfo,  // 6
		source.LevelInfo,  // 7
		source.LevelError, // 8
		source.LevelInfo,  // 9
	}
	entries := make([]source.Entry, len(levels))
	for i, l := range levels {
		entries[i] = source.Entry{ID: string(rune('a' + i)), Timestamp: int64(i), Level: l}
	}
	return entries
}

func TestNextMarker_ForwardChain(t *testing.T) {
	entries := markerEntries()

	// Cursor at 2, errors at 5 and 8: 2 -> 5 -> 8 -> -1
	idx := NextMarker(entries, 2, Forward)
	if idx != 5 {
		t.Fatalf("expected 5, got %d", idx)
	}
	idx = NextMarker(entries, idx, Forward)
	if idx != 8 {
		t.Fatalf("expected 8, got %d", idx)
	}
	idx = NextMarker(entries, idx, Forward)
	if idx != -1 {
		t.Fatalf("expected -1 past last marker, got %d", idx)
	}
}

func TestNextMarker_VisitsEveryMarkerOnceAscending(t *testing.T) {
	entries := markerEntries()

	var visited []int
	for idx := NextMarker(entries, -1, Forward); idx != -1; idx = NextMarker(entries, idx, Forward) {
		visited = append(visited, idx)
	}

	want := []int{5, 8}
	if len(visited) != len(want) {
		t.Fatalf("expected %d markers, visited %d", len(want), len(visited))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit %d: expected index %d, got %d", i, want[i], visited[i])
		}
	}
}

func TestNextMarker_Backward(t *testing.T) {
	entries := markerEntries()

	if idx := NextMarker(entries, 8, Backward); idx != 5 {
		t.Errorf("expected 5 scanning back from 8, got %d", idx)
	}
	if idx := NextMarker(entries, 5, Backward); idx != -1 {
		t.Errorf("expected -1 scanning back from 5, got %d", idx)
	}
	if idx := NextMarker(entries, -1, Backward); idx != 8 {
		t.Errorf("expected backward scan without cursor to start at tail, got %d", idx)
	}
}

func TestNextMarker_StrictlyBeyondCursor(t *testing.T) {
	entries := markerEntries()

	// Sitting on a marker must not return it again
	if idx := NextMarker(entries, 5, Forward); idx != 8 {
		t.Errorf("forward from marker should skip it, got %d", idx)
	}
	if idx := NextMarker(entries, 8, Backward); idx != 5 {
		t.Errorf("backward from marker should skip it, got %d", idx)
	}
}

func TestNextMarker_WarnCountsAsMarker(t *testing.T) {
	entries := []source.Entry{
		{ID: "a", Level: source.LevelInfo},
		{ID: "b", Level: source.LevelWarn},
	}
	if idx := NextMarker(entries, -1, Forward); idx != 1 {
		t.Errorf("warn should be a marker, got %d", idx)
	}
}

func TestNextMarker_CursorPastEnd(t *testing.T) {
	entries := markerEntries()

	// A stale cursor beyond the view must not panic the backward scan
	if idx := NextMarker(entries, 50, Backward); idx != 8 {
		t.Errorf("expected 8 scanning back from stale cursor, got %d", idx)
	}
	if idx := NextMarker(entries, 50, Forward); idx != -1 {
		t.Errorf("expected -1 scanning forward from stale cursor, got %d", idx)
	}
}

func TestNextMarker_Empty(t *testing.T) {
	if idx := NextMarker(nil, -1, Forward); idx != -1 {
		t.Errorf("empty view should return -1, got %d", idx)
	}
}

func TestClampCursor(t *testing.T) {
	cases := []struct {
		cursor, length, want int
	}{
		{-1, 10, -1},
		{5, 10, 5},
		{9, 10, 9},
		{10, 10, 9},
		{50, 3, 2},
		{0, 0, -1},
		{5, 0, -1},
	}
	for _, c := range cases {
		if got := ClampCursor(c.cursor, c.length); got != c.want {
			t.Errorf("ClampCursor(%d, %d): expected %d, got %d", c.cursor, c.length, c.want, got)
		}
	}
}
