package petri_test

import (
	"errors"
	"fmt"

	"github.com/jt05610/petri-inhibitor"
)

// ExampleTransition_Fire shows a consumer that may only take a job while the pause
// place is empty.
func ExampleTransition_Fire() {
	take := petri.MustTransition("take",
		map[string]petri.Arc{"queued": petri.Regular(1), "paused": petri.Inhibitor()},
		map[string]petri.Arc{"running": petri.Regular(1)},
	)
	m := petri.Marking[string]{"queued": 2, "paused": 0, "running": 0}

	next, err := take.Fire(m)
	if err != nil {
		panic(err)
	}
	fmt.Println("before:", m)
	fmt.Println("after: ", next)

	next["paused"] = 1
	_, err = take.Fire(next)
	fmt.Println(errors.Is(err, petri.ErrNotEnabled), err)

	// Output:
	// before: {paused:0 queued:2 running:0}
	// after:  {paused:0 queued:1 running:1}
	// true transition take is not enabled
}

func ExampleNewTransition() {
	_, err := petri.NewTransition("bad",
		map[string]petri.Arc{"a": petri.Regular(1)},
		map[string]petri.Arc{"b": petri.Inhibitor()},
	)
	fmt.Println(errors.Is(err, petri.ErrInhibitorPostcondition))
	fmt.Println(err)
	// Output:
	// true
	// transition bad: place b: inhibitor: inhibitor arc in postconditions
}
