package source

import "strings"

// LevelFilter selects which severity passes the pipeline: either every
// level, or one exact level
type LevelFilter struct {
	level Level
	exact bool
}

// AllLevels passes every entry
func AllLevels() LevelFilter {
	return LevelFilter{}
}

// OnlyLevel passes entries whose level matches exactly
func OnlyLevel(l Level) LevelFilter {
	return LevelFilter{level: l, exact: true}
}

// Matches reports whether a level passes the filter
func (f LevelFilter) Matches(l Level) bool {
	return !f.exact || l == f.level
}

// IsAll reports whether the filter passes everything
func (f LevelFilter) IsAll() bool {
	return !f.exact
}

// Level returns the selected level; meaningful only when not IsAll
func (f LevelFilter) Level() Level {
	return f.level
}

// Filter applies the level, time-range and text predicates to entries.
// The predicates are ANDed; relative order of the input is preserved.
// The range check is inclusive on both ends, so an inverted range
// (from > to) matches nothing. The query is a case-insensitive literal
// substring, never a pattern
func Filter(entries []Entry, level LevelFilter, query string, from, to int64) []Entry {
	out := make([]Entry, 0, len(entries))
	needle := strings.ToLower(query)
	for _, e := range entries {
		if !level.Matches(e.Level) {
			continue
		}
		if e.Timestamp < from || e.Timestamp > to {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(e.Message), needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilteredView is the derived subsequence of a store passing all active
// predicates. It is rebuilt in full (never patched incrementally) the
// first time it is read after any input changed
type FilteredView struct {
	store *Store
	scrub *Scrubber

	level LevelFilter
	query string

	view  []Entry
	dirty bool
}

var _ Provider = (*FilteredView)(nil)

// NewFilteredView creates a view over store bounded by scrub
func NewFilteredView(store *Store, scrub *Scrubber) *FilteredView {
	return &FilteredView{
		store: store,
		scrub: scrub,
		level: AllLevels(),
		dirty: true,
	}
}

// SetLevelFilter sets the severity predicate
func (f *FilteredView) SetLevelFilter(level LevelFilter) {
	f.level = level
	f.dirty = true
}

// LevelFilter returns the active severity predicate
func (f *FilteredView) LevelFilter() LevelFilter {
	return f.level
}

// SetQuery sets the text predicate
func (f *FilteredView) SetQuery(query string) {
	f.query = query
	f.dirty = true
}

// Query returns the active text predicate
func (f *FilteredView) Query() string {
	return f.query
}

// MarkDirty forces a rebuild on next read. Called after the store grows
// or the time range moves
func (f *FilteredView) MarkDirty() {
	f.dirty = true
}

// IsFiltered reports whether any predicate narrows the store
func (f *FilteredView) IsFiltered() bool {
	return !f.level.IsAll() || f.query != "" || f.scrub.Adjusted()
}

func (f *FilteredView) rebuild() {
	if !f.dirty {
		return
	}
	from, to := f.scrub.Range()
	f.view = Filter(f.store.Entries(), f.level, f.query, from, to)
	f.dirty = false
}

// Len returns the number of entries passing all predicates
func (f *FilteredView) Len() int {
	f.rebuild()
	return len(f.view)
}

// At returns the filtered entry at index
func (f *FilteredView) At(index int) Entry {
	f.rebuild()
	return f.view[index]
}

// Slice returns a contiguous range of filtered entries
func (f *FilteredView) Slice(start, count int) []Entry {
	f.rebuild()
	if start < 0 {
		start = 0
	}
	if start >= len(f.view) {
		return nil
	}
	end := start + count
	if end > len(f.view) {
		end = len(f.view)
	}
	return f.view[start:end]
}

// Entries returns the full filtered slice. Callers must not mutate it
func (f *FilteredView) Entries() []Entry {
	f.rebuild()
	return f.view
}
