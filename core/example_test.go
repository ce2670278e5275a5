package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/twinwidth/core"
)

// ExampleFromEdges demonstrates validated construction and sorted queries.
func ExampleFromEdges() {
	g, err := core.FromEdges(4, []core.Edge{{2, 1}, {0, 1}, {2, 3}})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("neighbors of 1:", g.Neighbors(1))
	fmt.Println("edges:", g.Edges())

	_, err = core.FromEdges(2, []core.Edge{{0, 0}})
	fmt.Println("loop rejected:", errors.Is(err, core.ErrInvalidInput))

	// Output:
	// neighbors of 1: [0 2]
	// edges: [{0 1} {1 2} {2 3}]
	// loop rejected: true
}
