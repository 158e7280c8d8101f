package petri_test

import (
	"fmt"

	"github.com/jt05610/petri-inhibitor"
)

func ExampleAdd() {
	produce := petri.MustTransition("produce",
		map[string]petri.Arc{"full": petri.Inhibitor()},
		map[string]petri.Arc{"buffer": petri.Regular(1)})
	consume := petri.MustTransition("consume",
		map[string]petri.Arc{"buffer": petri.Regular(1)},
		map[string]petri.Arc{"done": petri.Regular(1)})

	producer := petri.NewNet([]string{"full", "buffer"}, produce)
	consumer := petri.NewNet([]string{"buffer", "done"}, consume)
	combined := petri.Add(producer, consumer, producer)

	fmt.Println("Places")
	for i, p := range combined.Places() {
		fmt.Printf("%d. %s\n", i+1, p)
	}
	fmt.Println("Transitions")
	for i, t := range combined.Transitions() {
		fmt.Printf("%d. %s\n", i+1, t)
	}
	// Output:
	// Places
	// 1. full
	// 2. buffer
	// 3. done
	// Transitions
	// 1. produce({full:inhibitor} -> {buffer:1})
	// 2. consume({buffer:1} -> {done:1})
}
