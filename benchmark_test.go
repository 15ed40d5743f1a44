package lip2_test

import (
	"testing"

	"github.com/dgraph-io/ristretto"
	lip2 "github.com/lip2sim/lip2-go"
	"github.com/lip2sim/lip2-go/internal/sim"
)

func BenchmarkGetVictimLIP2(b *testing.B) {
	policy, err := lip2.New[*line](&lip2.LogicalClock{})
	if err != nil {
		panic(err)
	}
	lines := newLines(9, 14, 3, 27, 8, 11, 6, 20, 1, 5, 31, 2, 17, 13, 4, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		policy.GetVictim(lines)
	}
}

func BenchmarkGetVictimLRU(b *testing.B) {
	policy, err := lip2.NewBuilder[*line](&lip2.LogicalClock{}).BuildLRU()
	if err != nil {
		panic(err)
	}
	lines := newLines(9, 14, 3, 27, 8, 11, 6, 20, 1, 5, 31, 2, 17, 13, 4, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		policy.GetVictim(lines)
	}
}

func benchmarkReplay(b *testing.B, build func(clock *lip2.LogicalClock) lip2.Policy[*sim.Block]) {
	config := sim.DefaultConfig()
	records := sim.Zipf(0, 1.01, 9.0, uint64(config.Capacity()*100), 1<<16, config.LineSize)
	clock := &lip2.LogicalClock{}
	cache, err := sim.New(config, build(clock), clock)
	if err != nil {
		panic(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Access(records[i&(1<<16-1)].Addr)
	}
}

func BenchmarkReplayLIP2(b *testing.B) {
	benchmarkReplay(b, func(clock *lip2.LogicalClock) lip2.Policy[*sim.Block] {
		p, _ := lip2.New[*sim.Block](clock)
		return p
	})
}

func BenchmarkReplayLRU(b *testing.B) {
	benchmarkReplay(b, func(clock *lip2.LogicalClock) lip2.Policy[*sim.Block] {
		p, _ := lip2.NewBuilder[*sim.Block](clock).BuildLRU()
		return p
	})
}

func BenchmarkReplayRistretto(b *testing.B) {
	config := sim.DefaultConfig()
	records := sim.Zipf(0, 1.01, 9.0, uint64(config.Capacity()*100), 1<<16, config.LineSize)
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(config.Capacity() * 10),
		MaxCost:     int64(config.Capacity()),
		BufferItems: 64,
	})
	if err != nil {
		panic(err)
	}
	defer client.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := records[i&(1<<16-1)].Addr >> 6
		if _, ok := client.Get(key); !ok {
			client.Set(key, key, 1)
		}
	}
}
