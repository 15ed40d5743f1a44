package internal

import (
	"github.com/lip2sim/lip2-go/internal/clock"
	"github.com/lip2sim/lip2-go/internal/stats"
)

// LRU is the strict least recently used policy LIP2 is measured against.
type LRU[E Candidate] struct {
	clock   clock.Source
	stats   *stats.PolicyStatsInternal
	last    ScanResult[E]
	scanned bool
}

func NewLRU[E Candidate](src clock.Source, st *stats.PolicyStatsInternal) *LRU[E] {
	return &LRU[E]{clock: src, stats: st}
}

func (p *LRU[E]) InstantiateEntry() *ReplacementData {
	return &ReplacementData{}
}

func (p *LRU[E]) Invalidate(d *ReplacementData) {
	d.LastTouchTick = 0
	p.stats.Add(stats.NumInvalidations, 1)
}

func (p *LRU[E]) Touch(d *ReplacementData) {
	d.LastTouchTick = p.clock.Now()
	p.stats.Add(stats.NumTouches, 1)
}

func (p *LRU[E]) Reset(d *ReplacementData) {
	d.LastTouchTick = p.clock.Now()
	p.stats.Add(stats.NumResets, 1)
}

// GetVictim returns the first candidate holding the smallest tick.
func (p *LRU[E]) GetVictim(candidates []E) E {
	mustHaveCandidates(len(candidates))

	victim := candidates[0]
	victimTick := victim.ReplacementData().LastTouchTick
	for _, c := range candidates[1:] {
		if tick := c.ReplacementData().LastTouchTick; tick < victimTick {
			victim, victimTick = c, tick
		}
	}

	p.last = ScanResult[E]{LRU: victim, Victim: victim, VictimTick: victimTick, Size: len(candidates)}
	p.scanned = true
	p.stats.Add(stats.NumVictims, 1)
	if len(candidates) == 1 {
		p.stats.Add(stats.NumSingleCandidate, 1)
	}
	return victim
}

func (p *LRU[E]) LastScan() (ScanResult[E], bool) {
	return p.last, p.scanned
}
