package clock_test

import (
	"testing"
	"time"

	"github.com/lip2sim/lip2-go/internal/clock"
	"github.com/stretchr/testify/require"
)

func TestLogical_Advance(t *testing.T) {
	c := &clock.Logical{}
	require.Equal(t, uint64(0), c.Now())
	require.Equal(t, uint64(1), c.Advance(1))
	require.Equal(t, uint64(11), c.Advance(10))
	require.Equal(t, uint64(11), c.Now())

	c.Set(100)
	require.Equal(t, uint64(100), c.Now())
}

func TestWall_Now(t *testing.T) {
	c := &clock.Wall{Start: time.Now()}
	start := c.Now()
	time.Sleep(5 * time.Millisecond)
	end := c.Now()

	require.Greater(t, end, start)
}

func TestWall_FutureStart(t *testing.T) {
	c := &clock.Wall{Start: time.Now().Add(time.Hour)}
	require.Equal(t, uint64(0), c.Now())
}

func TestWall_SetStart(t *testing.T) {
	c := &clock.Wall{}
	ts := time.Now().UnixNano()
	c.SetStart(ts)
	require.Equal(t, ts, c.Start.UnixNano())
}

func TestFunc(t *testing.T) {
	var tick uint64 = 41
	var src clock.Source = clock.Func(func() uint64 {
		tick++
		return tick
	})
	require.Equal(t, uint64(42), src.Now())
	require.Equal(t, uint64(43), src.Now())
}
