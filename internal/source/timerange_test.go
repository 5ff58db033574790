package source

import "testing"

func TestScrubber_TracksDataUntilAdjusted(t *testing.T) {
	s := NewScrubber()
	s.Observe(1000, 5000)

	if start, end := s.Range(); start != 1000 || end != 5000 {
		t.Fatalf("expected observed bounds [1000,5000], got [%d,%d]", start, end)
	}

	s.Observe(1000, 9000)
	if _, end := s.Range(); end != 9000 {
		t.Errorf("unadjusted scrubber should follow data, got end %d", end)
	}
}

func TestScrubber_ExplicitBoundSticks(t *testing.T) {
	s := NewScrubber()
	s.Observe(1000, 5000)
	s.SetEnd(3000)

	if !s.Adjusted() {
		t.Fatal("SetEnd should mark the scrubber adjusted")
	}

	s.Observe(1000, 9000)
	if _, end := s.Range(); end != 3000 {
		t.Errorf("adjusted bound should ignore Observe, got end %d", end)
	}
}

func TestScrubber_ResetReleasesBound(t *testing.T) {
	s := NewScrubber()
	s.Observe(1000, 5000)
	s.SetStart(2000)
	s.Reset()

	if s.Adjusted() {
		t.Fatal("Reset should clear adjusted state")
	}

	s.Observe(1000, 9000)
	if start, end := s.Range(); start != 1000 || end != 9000 {
		t.Errorf("expected bounds to re-cover data after reset, got [%d,%d]", start, end)
	}
}

func TestScrubber_AllowsInvertedBound(t *testing.T) {
	// No internal ordering invariant; the pipeline tolerates inversion
	s := NewScrubber()
	s.SetStart(5000)
	s.SetEnd(1000)

	start, end := s.Range()
	if start != 5000 || end != 1000 {
		t.Fatalf("scrubber should store the inverted bound as-is, got [%d,%d]", start, end)
	}

	got := Filter(sampleEntries(), AllLevels(), "", start, end)
	if len(got) != 0 {
		t.Errorf("inverted bound should filter everything out, got %d", len(got))
	}
}
