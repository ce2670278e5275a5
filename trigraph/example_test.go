package trigraph_test

import (
	"fmt"

	"github.com/katalvlaran/twinwidth/core"
	"github.com/katalvlaran/twinwidth/trigraph"
)

// ExampleTriGraph_Contract merges the ends of a path and undoes the merge.
func ExampleTriGraph_Contract() {
	t, err := trigraph.New(4, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("cost(0,2):", t.Cost(0, 2))

	tok, _ := t.Contract(2, 0)
	fmt.Println("width:", tok.Width, "edge 0-3:", t.EdgeColor(0, 3))

	_ = t.Undo(tok)
	fmt.Println("active:", t.NumActive(), "edge 0-3:", t.EdgeColor(0, 3))
	// Output:
	// cost(0,2): 1
	// width: 1 edge 0-3: red
	// active: 4 edge 0-3: none
}
