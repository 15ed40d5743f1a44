package lip2

import (
	"errors"

	"github.com/lip2sim/lip2-go/internal"
	"github.com/lip2sim/lip2-go/internal/stats"
)

var ErrClockRequired = errors.New("clock required")

type params interface {
	validate() error
}

func validateParams(params ...params) error {
	for _, p := range params {
		if err := p.validate(); err != nil {
			return err
		}
	}
	return nil
}

type baseParams struct {
	clock       Clock
	recordStats bool
}

func (p *baseParams) validate() error {
	if p.clock == nil {
		return ErrClockRequired
	}
	return nil
}

type insertionParams struct {
	baseline Tick
}

// any baseline is valid, including 0
func (p *insertionParams) validate() error {
	return nil
}

type Builder[E Candidate] struct {
	baseParams
	insertionParams
}

func NewBuilder[E Candidate](clock Clock) *Builder[E] {
	b := &Builder[E]{}
	b.clock = clock
	return b
}

// Clock replaces the tick source read by Touch (and by Reset for LRU).
func (b *Builder[E]) Clock(clock Clock) *Builder[E] {
	b.clock = clock
	return b
}

// ResetBaseline sets the tick LIP2 Reset builds on before the first GetVictim.
// Default is 0, so an early Reset stamps tick 1.
func (b *Builder[E]) ResetBaseline(tick Tick) *Builder[E] {
	b.baseline = tick
	return b
}

// RecordStats enables policy counters, see Stats.
func (b *Builder[E]) RecordStats() *Builder[E] {
	b.recordStats = true
	return b
}

func (b *Builder[E]) newStats() *stats.PolicyStatsInternal {
	if b.recordStats {
		return stats.NewStats()
	}
	return nil
}

// Build builds a LIP2 policy from builder.
func (b *Builder[E]) Build() (*LIP2[E], error) {
	if err := validateParams(&b.baseParams, &b.insertionParams); err != nil {
		return nil, err
	}
	st := b.newStats()
	return &LIP2[E]{
		policy: internal.NewLIP2[E](b.clock, b.baseline, st),
		stats:  st,
	}, nil
}

// BuildLRU builds the strict LRU baseline. ResetBaseline does not apply.
func (b *Builder[E]) BuildLRU() (*LRU[E], error) {
	if err := validateParams(&b.baseParams); err != nil {
		return nil, err
	}
	st := b.newStats()
	return &LRU[E]{
		policy: internal.NewLRU[E](b.clock, st),
		stats:  st,
	}, nil
}
