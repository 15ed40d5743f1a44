package clock

import (
	"sync/atomic"
	"time"
)

// Source is anything that can report the current host tick.
type Source interface {
	Now() uint64
}

// Logical is a manually driven tick counter, the simulation clock.
// The zero value starts at tick 0.
type Logical struct {
	now atomic.Uint64
}

func (c *Logical) Now() uint64 {
	return c.now.Load()
}

// Advance moves the clock forward by delta ticks and returns the new tick.
func (c *Logical) Advance(delta uint64) uint64 {
	return c.now.Add(delta)
}

// Set jumps to ts. Callers are responsible for keeping time non-decreasing.
func (c *Logical) Set(ts uint64) {
	c.now.Store(ts)
}

// Wall reports nanoseconds elapsed since Start.
type Wall struct {
	Start time.Time
}

func (c *Wall) NowNano() int64 {
	return time.Since(c.Start).Nanoseconds()
}

func (c *Wall) Now() uint64 {
	n := c.NowNano()
	if n < 0 {
		return 0
	}
	return uint64(n)
}

func (c *Wall) SetStart(ts int64) {
	c.Start = time.Unix(0, ts)
}

// Func adapts a plain function to Source.
type Func func() uint64

func (f Func) Now() uint64 {
	return f()
}
