package internal

// Tick is a host logical timestamp. Zero means never touched or invalidated.
type Tick = uint64

// ReplacementData is the recency record of one cache entry. The host owns it;
// policies only read and write LastTouchTick through the pointer.
type ReplacementData struct {
	LastTouchTick Tick
}

// Candidate is a host entry that exposes its recency record.
type Candidate interface {
	ReplacementData() *ReplacementData
}

// ScanResult describes the most recent victim selection.
type ScanResult[E Candidate] struct {
	// LRU is the first candidate seen with the smallest tick.
	LRU E
	// Victim is the entry GetVictim returned.
	Victim E
	// VictimTick selected Victim. For LIP2 it is the larger of the two
	// smallest ticks, or the only tick when the scan saw a single candidate.
	VictimTick Tick
	Size       int
}

// Spared reports whether the scan returned something other than the strict LRU entry.
func (r *ScanResult[E]) Spared() bool {
	return r.Size > 0 && r.LRU.ReplacementData() != r.Victim.ReplacementData()
}

func mustHaveCandidates(n int) {
	if n == 0 {
		panic("replacement policy: GetVictim called with an empty candidate set")
	}
}
