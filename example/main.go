package main

import (
	"fmt"

	"github.com/mgnsk/queue"
)

type event struct {
	priority int
	name     string
}

func main() {
	events := queue.From([]event{
		{1, "write"},
		{0, "connect"},
		{1, "flush"},
	}, queue.WithFinalizer(func(e event) {
		fmt.Println("dropped", e.name)
	}))
	defer events.Release()

	// A second handle observes every change made through the first.
	view := events.Clone()
	defer view.Release()

	events.Push(event{2, "close"})

	ordered := view.Sort(func(a, b event) bool {
		return a.priority < b.priority
	})
	defer ordered.Release()

	for n := ordered.Next(); n != nil; n = ordered.Next() {
		fmt.Println(n.Value.priority, n.Value.name)
	}

	events.EraseRange(1, -1)
	fmt.Println(view.Size(), "events left")
}
