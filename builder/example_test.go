package builder_test

import (
	"fmt"

	"github.com/katalvlaran/twinwidth/builder"
)

// ExampleBuildGraph composes two constructors into a disjoint union.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.Cycle(4), builder.Star(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Order(), g.Size())
	fmt.Println(g.Components())
	// Output:
	// 7 6
	// [[0 1 2 3] [4 5 6]]
}
