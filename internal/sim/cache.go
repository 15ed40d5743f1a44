package sim

import (
	"encoding/binary"

	lip2 "github.com/lip2sim/lip2-go"
	"github.com/zeebo/xxh3"
)

// Block is one way of a cache set.
type Block struct {
	Line  uint64
	Valid bool
	data  lip2.ReplacementData
}

func (b *Block) ReplacementData() *lip2.ReplacementData {
	return &b.data
}

// Cache is a set associative host model. Every way of a set is handed to the
// policy as a candidate, invalid ways included, so victim choice is left
// entirely to the policy.
type Cache struct {
	config    Config
	shift     uint
	sets      [][]*Block
	policy    lip2.Policy[*Block]
	clock     *lip2.LogicalClock
	hits      uint64
	misses    uint64
	evictions uint64
}

func New(config Config, policy lip2.Policy[*Block], clock *lip2.LogicalClock) (*Cache, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	c := &Cache{
		config: config,
		shift:  config.lineShift(),
		sets:   make([][]*Block, config.Sets),
		policy: policy,
		clock:  clock,
	}
	for i := range c.sets {
		set := make([]*Block, config.Ways)
		for w := range set {
			set[w] = &Block{data: *policy.InstantiateEntry()}
		}
		c.sets[i] = set
	}
	return c, nil
}

func (c *Cache) line(addr uint64) uint64 {
	return addr >> c.shift
}

func (c *Cache) setIndex(line uint64) int {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], line)
	return int(xxh3.Hash(buf[:]) % uint64(len(c.sets)))
}

func (c *Cache) lookup(line uint64) ([]*Block, *Block) {
	set := c.sets[c.setIndex(line)]
	for _, b := range set {
		if b.Valid && b.Line == line {
			return set, b
		}
	}
	return set, nil
}

// Access advances the clock by one tick and reports whether addr hit.
// A miss evicts the policy's victim and fills it with addr's line.
func (c *Cache) Access(addr uint64) bool {
	c.clock.Advance(1)
	line := c.line(addr)
	set, b := c.lookup(line)
	if b != nil {
		c.hits++
		c.policy.Touch(b.ReplacementData())
		return true
	}
	c.misses++
	victim := c.policy.GetVictim(set)
	if victim.Valid {
		c.evictions++
		victim.Valid = false
		c.policy.Invalidate(victim.ReplacementData())
	}
	victim.Line = line
	victim.Valid = true
	c.policy.Reset(victim.ReplacementData())
	return false
}

// Invalidate drops addr's line and reports whether it was resident.
func (c *Cache) Invalidate(addr uint64) bool {
	_, b := c.lookup(c.line(addr))
	if b == nil {
		return false
	}
	b.Valid = false
	c.policy.Invalidate(b.ReplacementData())
	return true
}

// Contains reports residency without touching recency state.
func (c *Cache) Contains(addr uint64) bool {
	_, b := c.lookup(c.line(addr))
	return b != nil
}

// Set returns the ways of the set addr maps to.
func (c *Cache) Set(addr uint64) []*Block {
	return c.sets[c.setIndex(c.line(addr))]
}

func (c *Cache) Hits() uint64 {
	return c.hits
}

func (c *Cache) Misses() uint64 {
	return c.misses
}

func (c *Cache) Evictions() uint64 {
	return c.evictions
}

func (c *Cache) HitRatio() float64 {
	total := c.hits + c.misses
	if total == 0 {
		return 0.0
	}
	return float64(c.hits) / float64(total)
}
