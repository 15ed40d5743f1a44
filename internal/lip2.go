package internal

import (
	"github.com/lip2sim/lip2-go/internal/clock"
	"github.com/lip2sim/lip2-go/internal/stats"
	"github.com/tidwall/hashmap"
)

// LIP2 evicts the owner of the second smallest tick in a candidate set and
// inserts new entries just above the previous scan's second smallest tick.
//
// A LIP2 instance is not safe for concurrent use. Hosts that drive several
// cache sets in parallel need one instance per goroutine.
type LIP2[E Candidate] struct {
	clock   clock.Source
	stats   *stats.PolicyStatsInternal
	scratch minPair
	// tick -> owning candidate, empty between calls
	ticks *hashmap.Map[Tick, E]
	// second smallest tick of the last completed scan, consumed by Reset
	lastSecond Tick
	last       ScanResult[E]
	scanned    bool
}

// NewLIP2 returns a LIP2 policy reading time from src. baseline is the tick
// Reset builds on before any GetVictim has run.
func NewLIP2[E Candidate](src clock.Source, baseline Tick, st *stats.PolicyStatsInternal) *LIP2[E] {
	return &LIP2[E]{
		clock:      src,
		stats:      st,
		ticks:      hashmap.New[Tick, E](8),
		lastSecond: baseline,
	}
}

func (p *LIP2[E]) InstantiateEntry() *ReplacementData {
	return &ReplacementData{}
}

func (p *LIP2[E]) Invalidate(d *ReplacementData) {
	d.LastTouchTick = 0
	p.stats.Add(stats.NumInvalidations, 1)
}

func (p *LIP2[E]) Touch(d *ReplacementData) {
	d.LastTouchTick = p.clock.Now()
	p.stats.Add(stats.NumTouches, 1)
}

// Reset stamps a newly filled entry one tick above the second smallest tick
// of the previous scan, so it is evicted early unless touched again.
func (p *LIP2[E]) Reset(d *ReplacementData) {
	d.LastTouchTick = p.lastSecond + 1
	p.stats.Add(stats.NumResets, 1)
}

// GetVictim panics on an empty candidate set.
//
// Ties are broken differently on the two paths: the strict LRU entry is the
// first candidate holding the minimum tick, while the returned victim is the
// last candidate holding the second smallest tick.
func (p *LIP2[E]) GetVictim(candidates []E) E {
	mustHaveCandidates(len(candidates))
	p.scratch.clear()

	lru := candidates[0]
	lruTick := lru.ReplacementData().LastTouchTick
	for _, c := range candidates {
		tick := c.ReplacementData().LastTouchTick
		p.ticks.Set(tick, c)
		if tick < lruTick {
			lru, lruTick = c, tick
		}
		p.scratch.push(tick)
	}

	second := p.scratch.top()
	victim, _ := p.ticks.Get(second)
	for _, c := range candidates {
		p.ticks.Delete(c.ReplacementData().LastTouchTick)
	}

	p.lastSecond = second
	p.last = ScanResult[E]{LRU: lru, Victim: victim, VictimTick: second, Size: len(candidates)}
	p.scanned = true

	p.stats.Add(stats.NumVictims, 1)
	if p.scratch.len() < 2 {
		p.stats.Add(stats.NumSingleCandidate, 1)
	}
	if p.last.Spared() {
		p.stats.Add(stats.NumSpared, 1)
	}
	return victim
}

// LastScan returns the result of the most recent GetVictim, false if none ran yet.
func (p *LIP2[E]) LastScan() (ScanResult[E], bool) {
	return p.last, p.scanned
}

// LastSecondTick is the value the next Reset builds on.
func (p *LIP2[E]) LastSecondTick() Tick {
	return p.lastSecond
}
