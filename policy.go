package lip2

import (
	"github.com/lip2sim/lip2-go/internal"
	"github.com/lip2sim/lip2-go/internal/clock"
	"github.com/lip2sim/lip2-go/internal/stats"
)

type Tick = internal.Tick

type ReplacementData = internal.ReplacementData

type Candidate = internal.Candidate

type Clock = clock.Source

type LogicalClock = clock.Logical

type WallClock = clock.Wall

type ClockFunc = clock.Func

// Policy is the surface a host cache drives: Touch on hit, Reset on fill,
// Invalidate on invalidation and GetVictim when a set needs an eviction.
type Policy[E Candidate] interface {
	InstantiateEntry() *ReplacementData
	Invalidate(d *ReplacementData)
	Touch(d *ReplacementData)
	Reset(d *ReplacementData)
	GetVictim(candidates []E) E
}

type ScanResult[E Candidate] struct {
	LRU        E
	Victim     E
	VictimTick Tick
	Size       int
}

// Spared reports whether the victim is not the strict LRU entry.
func (r ScanResult[E]) Spared() bool {
	return r.Size > 0 && r.LRU.ReplacementData() != r.Victim.ReplacementData()
}

func scanResult[E Candidate](r internal.ScanResult[E]) ScanResult[E] {
	return ScanResult[E]{LRU: r.LRU, Victim: r.Victim, VictimTick: r.VictimTick, Size: r.Size}
}

// LIP2 evicts the entry with the second oldest tick of a set and inserts new
// entries just above the previous victim's rank.
// Concurrent access must be guarded by the caller.
type LIP2[E Candidate] struct {
	policy *internal.LIP2[E]
	stats  *stats.PolicyStatsInternal
}

var _ Policy[Candidate] = (*LIP2[Candidate])(nil)

// New returns a LIP2 policy with default settings. It is a shortcut for
// NewBuilder[E](clock).Build().
func New[E Candidate](clock Clock) (*LIP2[E], error) {
	return NewBuilder[E](clock).Build()
}

func (p *LIP2[E]) InstantiateEntry() *ReplacementData {
	return p.policy.InstantiateEntry()
}

// Invalidate sets the tick to 0, the oldest possible rank.
func (p *LIP2[E]) Invalidate(d *ReplacementData) {
	p.policy.Invalidate(d)
}

// Touch stamps the current clock tick.
func (p *LIP2[E]) Touch(d *ReplacementData) {
	p.policy.Touch(d)
}

// Reset stamps one above the second smallest tick of the last GetVictim,
// or one above the configured baseline if GetVictim never ran.
func (p *LIP2[E]) Reset(d *ReplacementData) {
	p.policy.Reset(d)
}

// GetVictim returns the last candidate holding the second smallest tick, or
// the sole candidate. It panics if candidates is empty.
func (p *LIP2[E]) GetVictim(candidates []E) E {
	return p.policy.GetVictim(candidates)
}

func (p *LIP2[E]) LastScan() (ScanResult[E], bool) {
	r, ok := p.policy.LastScan()
	return scanResult(r), ok
}

func (p *LIP2[E]) Stats() Stats {
	return newStats(p.stats)
}

// LRU is the strict least recently used baseline.
// Concurrent access must be guarded by the caller.
type LRU[E Candidate] struct {
	policy *internal.LRU[E]
	stats  *stats.PolicyStatsInternal
}

var _ Policy[Candidate] = (*LRU[Candidate])(nil)

func (p *LRU[E]) InstantiateEntry() *ReplacementData {
	return p.policy.InstantiateEntry()
}

func (p *LRU[E]) Invalidate(d *ReplacementData) {
	p.policy.Invalidate(d)
}

func (p *LRU[E]) Touch(d *ReplacementData) {
	p.policy.Touch(d)
}

// Reset stamps the current clock tick, same as Touch.
func (p *LRU[E]) Reset(d *ReplacementData) {
	p.policy.Reset(d)
}

// GetVictim returns the first candidate holding the smallest tick.
// It panics if candidates is empty.
func (p *LRU[E]) GetVictim(candidates []E) E {
	return p.policy.GetVictim(candidates)
}

func (p *LRU[E]) LastScan() (ScanResult[E], bool) {
	r, ok := p.policy.LastScan()
	return scanResult(r), ok
}

func (p *LRU[E]) Stats() Stats {
	return newStats(p.stats)
}
