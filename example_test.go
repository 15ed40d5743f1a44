package lip2_test

import (
	"fmt"

	lip2 "github.com/lip2sim/lip2-go"
)

type way struct {
	tag  uint64
	repl lip2.ReplacementData
}

func (w *way) ReplacementData() *lip2.ReplacementData {
	return &w.repl
}

func ExampleLIP2() {
	clock := &lip2.LogicalClock{}
	policy, err := lip2.New[*way](clock)
	if err != nil {
		panic(err)
	}
	set := []*way{{tag: 1}, {tag: 2}, {tag: 3}}
	for _, w := range set {
		clock.Advance(10)
		policy.Touch(w.ReplacementData())
	}
	victim := policy.GetVictim(set)
	fmt.Printf("evict tag %d\n", victim.tag)

	victim.tag = 4
	policy.Reset(victim.ReplacementData())
	fmt.Printf("tag 4 inserted at tick %d\n", victim.repl.LastTouchTick)
	// Output:
	// evict tag 2
	// tag 4 inserted at tick 21
}
