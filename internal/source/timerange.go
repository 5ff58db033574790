package source

import "time"

// Scrubber maintains the [start, end] timestamp bound fed to the filter
// pipeline. Until the user adjusts it, the bound tracks the data: Observe
// widens it to cover the first and last entry so live appends keep
// passing. Once adjusted it is fixed until Reset.
//
// No start <= end invariant is enforced; an inverted bound simply filters
// everything out downstream
type Scrubber struct {
	start    int64
	end      int64
	adjusted bool
}

// NewScrubber creates a scrubber covering [0, now] until observed
func NewScrubber() *Scrubber {
	return &Scrubber{
		start: 0,
		end:   time.Now().UnixMilli(),
	}
}

// Observe updates the bound from the current first/last entry timestamps.
// Ignored while the user has an explicit bound set
func (s *Scrubber) Observe(first, last int64) {
	if s.adjusted {
		return
	}
	s.start = first
	s.end = last
}

// SetStart fixes the lower bound
func (s *Scrubber) SetStart(t int64) {
	s.start = t
	s.adjusted = true
}

// SetEnd fixes the upper bound
func (s *Scrubber) SetEnd(t int64) {
	s.end = t
	s.adjusted = true
}

// Reset releases the explicit bound; the next Observe re-covers the data
func (s *Scrubber) Reset() {
	s.adjusted = false
}

// Adjusted reports whether the user has fixed the bound
func (s *Scrubber) Adjusted() bool {
	return s.adjusted
}

// Range returns the current [start, end] bound in epoch milliseconds
func (s *Scrubber) Range() (int64, int64) {
	return s.start, s.end
}

// Start returns the lower bound
func (s *Scrubber) Start() int64 {
	return s.start
}

// End returns the upper bound
func (s *Scrubber) End() int64 {
	return s.end
}
