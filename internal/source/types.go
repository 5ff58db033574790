package source

// Level represents a log severity level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the display name for a level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// IsMarker reports whether entries at this level act as navigation waypoints
func (l Level) IsMarker() bool {
	return l == LevelWarn || l == LevelError
}

// Entry is a single structured log line. Entries are immutable and owned
// by the producer; the viewer only ever appends, never mutates or reorders
type Entry struct {
	ID        string
	Timestamp int64 // epoch milliseconds
	Level     Level
	Message   string
}

// Provider is the core abstraction for accessing an ordered entry sequence
// The viewport only interacts with this interface
type Provider interface {
	// Len returns total number of entries
	Len() int

	// At returns the entry at index (0-based)
	At(index int) Entry

	// Slice returns a contiguous range of entries
	Slice(start, count int) []Entry
}
