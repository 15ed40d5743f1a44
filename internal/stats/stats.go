package stats

import (
	"sync/atomic"
)

type PolicyStatsType int

const (
	NumTouches PolicyStatsType = iota
	NumResets
	NumInvalidations
	NumVictims
	// victim differs from the strict LRU entry of the same scan
	NumSpared
	// scans with a single candidate
	NumSingleCandidate

	counterStatsEnd
)

type PolicyStatsInternal struct {
	counterData []atomic.Uint64
}

func NewStats() *PolicyStatsInternal {
	return &PolicyStatsInternal{
		counterData: make([]atomic.Uint64, counterStatsEnd),
	}
}

// Add is a no-op on a nil receiver, so disabled stats cost one branch.
func (s *PolicyStatsInternal) Add(t PolicyStatsType, value uint64) {
	if s != nil && t < counterStatsEnd {
		s.counterData[int(t)].Add(value)
	}
}

func (s *PolicyStatsInternal) Get(t PolicyStatsType) uint64 {
	if s == nil || t >= counterStatsEnd {
		return 0
	}
	return s.counterData[int(t)].Load()
}

func (s *PolicyStatsInternal) Reset() {
	if s == nil {
		return
	}
	for i := range s.counterData {
		s.counterData[i].Store(0)
	}
}
