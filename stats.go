package lip2

import "github.com/lip2sim/lip2-go/internal/stats"

// Stats is a point in time snapshot of policy counters. All values are zero
// unless the policy was built with RecordStats.
type Stats struct {
	touches         uint64
	resets          uint64
	invalidations   uint64
	victims         uint64
	spared          uint64
	singleCandidate uint64
}

func newStats(s *stats.PolicyStatsInternal) Stats {
	return Stats{
		touches:         s.Get(stats.NumTouches),
		resets:          s.Get(stats.NumResets),
		invalidations:   s.Get(stats.NumInvalidations),
		victims:         s.Get(stats.NumVictims),
		spared:          s.Get(stats.NumSpared),
		singleCandidate: s.Get(stats.NumSingleCandidate),
	}
}

func (s Stats) Touches() uint64 {
	return s.touches
}

func (s Stats) Resets() uint64 {
	return s.resets
}

func (s Stats) Invalidations() uint64 {
	return s.invalidations
}

func (s Stats) Victims() uint64 {
	return s.victims
}

// Spared counts selections that did not return the strict LRU entry.
func (s Stats) Spared() uint64 {
	return s.spared
}

func (s Stats) SingleCandidate() uint64 {
	return s.singleCandidate
}

func (s Stats) SpareRatio() float64 {
	if s.victims == 0 {
		return 0.0
	}
	return float64(s.spared) / float64(s.victims)
}
