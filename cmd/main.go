package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/dgraph-io/ristretto"
	lip2 "github.com/lip2sim/lip2-go"
	"github.com/lip2sim/lip2-go/internal/sim"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var memprofile = flag.String("memprofile", "", "write memory profile to `file`")
var tracePath = flag.String("trace", "", "replay accesses from `file` instead of a zipf trace")
var sets = flag.Int("sets", 64, "number of cache sets")
var ways = flag.Int("ways", 8, "associativity")
var lineSize = flag.Int("line", 64, "line size in bytes")
var accesses = flag.Int("n", 1000000, "zipf trace length")
var scanEvery = flag.Int("scan", 0, "interleave a sequential sweep of this many lines every 10000 accesses")

func loadRecords(config sim.Config) []sim.Record {
	if *tracePath != "" {
		f, err := os.Open(*tracePath)
		if err != nil {
			log.Fatal("could not open trace: ", err)
		}
		defer f.Close()
		records, err := sim.ParseTrace(f)
		if err != nil {
			log.Fatal("could not parse trace: ", err)
		}
		return records
	}
	zipf := sim.Zipf(time.Now().UnixNano(), 1.01, 9.0, uint64(config.Capacity()*100), *accesses, config.LineSize)
	if *scanEvery <= 0 {
		return zipf
	}
	records := make([]sim.Record, 0, len(zipf))
	base := uint64(1) << 48
	for i := 0; i < len(zipf); i += 10000 {
		end := i + 10000
		if end > len(zipf) {
			end = len(zipf)
		}
		records = append(records, zipf[i:end]...)
		records = append(records, sim.Scan(base, *scanEvery, config.LineSize)...)
		base += uint64(*scanEvery * config.LineSize)
	}
	return records
}

func runLIP2(config sim.Config, records []sim.Record) {
	clock := &lip2.LogicalClock{}
	policy, err := lip2.NewBuilder[*sim.Block](clock).RecordStats().Build()
	if err != nil {
		log.Fatal(err)
	}
	cache, err := sim.New(config, policy, clock)
	if err != nil {
		log.Fatal(err)
	}
	sim.Replay(cache, records)
	st := policy.Stats()
	fmt.Printf("lip2      hit ratio: %.4f, evictions: %d, spared lru: %.2f\n",
		cache.HitRatio(), cache.Evictions(), st.SpareRatio())
}

func runLRU(config sim.Config, records []sim.Record) {
	clock := &lip2.LogicalClock{}
	policy, err := lip2.NewBuilder[*sim.Block](clock).BuildLRU()
	if err != nil {
		log.Fatal(err)
	}
	cache, err := sim.New(config, policy, clock)
	if err != nil {
		log.Fatal(err)
	}
	sim.Replay(cache, records)
	fmt.Printf("lru       hit ratio: %.4f, evictions: %d\n", cache.HitRatio(), cache.Evictions())
}

// ristretto is fully associative with admission, so it only gives a rough reference point
func runRistretto(config sim.Config, records []sim.Record) {
	capacity := int64(config.Capacity())
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: capacity * 10,
		MaxCost:     capacity,
		BufferItems: 64,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()
	shift := uint(0)
	for 1<<shift < config.LineSize {
		shift++
	}
	var hits, total uint64
	for _, rec := range records {
		line := rec.Addr >> shift
		switch rec.Op {
		case sim.OpAccess:
			total++
			if _, ok := client.Get(line); ok {
				hits++
				continue
			}
			client.Set(line, line, 1)
		case sim.OpInvalidate:
			client.Del(line)
		}
	}
	ratio := 0.0
	if total > 0 {
		ratio = float64(hits) / float64(total)
	}
	fmt.Printf("ristretto hit ratio: %.4f\n", ratio)
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close() // error handling omitted for example
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	config := sim.Config{Sets: *sets, Ways: *ways, LineSize: *lineSize}
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}
	records := loadRecords(config)
	fmt.Printf("%d records, %d sets x %d ways\n", len(records), config.Sets, config.Ways)

	now := time.Now()
	runLIP2(config, records)
	runLRU(config, records)
	runRistretto(config, records)
	fmt.Println(time.Since(now))

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal("could not create memory profile: ", err)
		}
		defer f.Close() // error handling omitted for example
		runtime.GC()    // get up-to-date statistics
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not write memory profile: ", err)
		}
	}
}
