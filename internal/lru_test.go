package internal

import (
	"testing"

	"github.com/lip2sim/lip2-go/internal/clock"
	"github.com/lip2sim/lip2-go/internal/stats"
	"github.com/stretchr/testify/require"
)

func TestLRU_GetVictim(t *testing.T) {
	for _, tc := range victimTests {
		t.Run(tc.name, func(t *testing.T) {
			policy := NewLRU[*testBlock](&clock.Logical{}, nil)
			victim := policy.GetVictim(newBlocks(tc.ticks...))
			require.Equal(t, tc.lru, victim.name)

			scan, ok := policy.LastScan()
			require.True(t, ok)
			require.False(t, scan.Spared())
			require.Equal(t, victim.data.LastTouchTick, scan.VictimTick)
		})
	}
}

func TestLRU_GetVictimEmpty(t *testing.T) {
	policy := NewLRU[*testBlock](&clock.Logical{}, nil)
	require.Panics(t, func() {
		policy.GetVictim([]*testBlock{})
	})
}

func TestLRU_Mutations(t *testing.T) {
	st := stats.NewStats()
	c := &clock.Logical{}
	policy := NewLRU[*testBlock](c, st)
	b := &testBlock{}

	c.Set(10)
	policy.Reset(b.ReplacementData())
	require.Equal(t, Tick(10), b.data.LastTouchTick)
	c.Advance(5)
	policy.Touch(b.ReplacementData())
	require.Equal(t, Tick(15), b.data.LastTouchTick)
	policy.Invalidate(b.ReplacementData())
	require.Equal(t, Tick(0), b.data.LastTouchTick)

	policy.GetVictim([]*testBlock{b})
	require.Equal(t, uint64(1), st.Get(stats.NumResets))
	require.Equal(t, uint64(1), st.Get(stats.NumTouches))
	require.Equal(t, uint64(1), st.Get(stats.NumInvalidations))
	require.Equal(t, uint64(1), st.Get(stats.NumSingleCandidate))
	require.Equal(t, uint64(0), st.Get(stats.NumSpared))
}
