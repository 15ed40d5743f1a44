package sim

import (
	"errors"
	"fmt"
	"math/bits"
)

var ErrInvalidGeometry = errors.New("invalid cache geometry")

// Config describes the host cache a trace is replayed against.
type Config struct {
	Sets     int
	Ways     int
	LineSize int
}

func DefaultConfig() Config {
	return Config{
		Sets:     64,
		Ways:     8,
		LineSize: 64,
	}
}

func (c Config) Validate() error {
	if c.Sets <= 0 {
		return fmt.Errorf("%w: sets must be positive but %d was requested", ErrInvalidGeometry, c.Sets)
	}
	if c.Ways <= 0 {
		return fmt.Errorf("%w: ways must be positive but %d was requested", ErrInvalidGeometry, c.Ways)
	}
	if c.LineSize <= 0 || bits.OnesCount(uint(c.LineSize)) != 1 {
		return fmt.Errorf("%w: line size must be a power of two but %d was requested", ErrInvalidGeometry, c.LineSize)
	}
	return nil
}

func (c Config) Capacity() int {
	return c.Sets * c.Ways
}

func (c Config) lineShift() uint {
	return uint(bits.TrailingZeros(uint(c.LineSize)))
}
