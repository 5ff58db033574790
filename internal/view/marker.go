package view

import "github.com/user/logview/internal/source"

// Direction selects which way a marker scan walks the filtered view
type Direction int

const (
	Forward Direction = iota
	Backward
)

// NextMarker scans filtered strictly beyond from in the given direction
// and returns the index of the first warn or error entry, or -1 when the
// scanned side holds none. from may be -1 for "no cursor": a forward scan
// then starts at the head, a backward scan at the tail
func NextMarker(filtered []source.Entry, from int, dir Direction) int {
	if dir == Forward {
		for i := from + 1; i < len(filtered); i++ {
			if filtered[i].Level.IsMarker() {
				return i
			}
		}
		return -1
	}

	start := from - 1
	if from < 0 || start >= len(filtered) {
		// No cursor, or a stale one past the end: scan from the tail
		start = len(filtered) - 1
	}
	for i := start; i >= 0; i-- {
		if filtered[i].Level.IsMarker() {
			return i
		}
	}
	return -1
}

// ClampCursor re-validates a cursor after the filtered view changed
// length. A cursor into an empty view is cleared to -1; one past the end
// is pulled back to the last entry. Stale indices never survive
func ClampCursor(cursor, length int) int {
	if cursor < 0 || length == 0 {
		return -1
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}
