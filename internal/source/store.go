package source

// Store is the append-only entry sequence backing one viewer instance.
// Entry ids are unique within the store's lifetime; an append that replays
// an already-seen id is dropped rather than duplicated, so a producer
// re-delivering a batch is a no-op
type Store struct {
	entries []Entry
	seen    map[string]struct{}
}

var _ Provider = (*Store)(nil)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		seen: make(map[string]struct{}),
	}
}

// Append adds entries in order, skipping duplicate ids.
// It returns how many entries were accepted
func (s *Store) Append(entries ...Entry) int {
	accepted := 0
	for _, e := range entries {
		if _, dup := s.seen[e.ID]; dup {
			continue
		}
		s.seen[e.ID] = struct{}{}
		s.entries = append(s.entries, e)
		accepted++
	}
	return accepted
}

// Len returns total number of entries
func (s *Store) Len() int {
	return len(s.entries)
}

// At returns the entry at index
func (s *Store) At(index int) Entry {
	return s.entries[index]
}

// Slice returns a contiguous range of entries
func (s *Store) Slice(start, count int) []Entry {
	if start < 0 {
		start = 0
	}
	if start >= len(s.entries) {
		return nil
	}
	end := start + count
	if end > len(s.entries) {
		end = len(s.entries)
	}
	return s.entries[start:end]
}

// Entries returns the full backing slice. Callers must not mutate it
func (s *Store) Entries() []Entry {
	return s.entries
}
