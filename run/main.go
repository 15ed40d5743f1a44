package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	_ "net/http/pprof"

	lip2 "github.com/lip2sim/lip2-go"
	"github.com/lip2sim/lip2-go/internal/sim"
)

// An infinite replay loop to watch heap and CPU while the policy runs.
// Visit http://localhost:6060/debug/pprof/ while it is running.

const TRACE_SIZE = 2 << 20

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	config := sim.Config{Sets: 1024, Ways: 16, LineSize: 64}
	clock := &lip2.LogicalClock{}
	policy, err := lip2.NewBuilder[*sim.Block](clock).RecordStats().Build()
	if err != nil {
		panic("policy build failed")
	}
	cache, err := sim.New(config, policy, clock)
	if err != nil {
		panic("cache build failed")
	}
	records := sim.Zipf(0, 1.01, 9.0, uint64(config.Capacity()*100), TRACE_SIZE, config.LineSize)

	fmt.Println("==== start ====")
	last := time.Now()
	for i := 0; ; i++ {
		rec := records[i&(TRACE_SIZE-1)]
		cache.Access(rec.Addr)
		if i&0xffff == 0 && time.Since(last) > 2*time.Second {
			last = time.Now()
			st := policy.Stats()
			fmt.Printf("tick: %d, hit ratio: %.4f, spared: %.2f\n",
				clock.Now(), cache.HitRatio(), st.SpareRatio())
		}
	}
}
