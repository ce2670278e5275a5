// Package core provides the validated, thread-safe input graph consumed by the
// twin-width solvers.
//
// A core.Graph is a simple undirected graph on the vertex ids 0..n-1. It is the
// hand-off point between the I/O layer (pace), the fixture generators (builder)
// and the search engines (trigraph, exact):
//
//   - Construction validates every edge: out-of-range ids, self-loops and
//     duplicate pairs are rejected with sentinels that all wrap ErrInvalidInput.
//   - Queries are deterministic: Neighbors() and Edges() return sorted results.
//   - A single sync.RWMutex guards the adjacency, so graphs can be shared
//     between goroutines that only read them.
//   - Components() splits a graph into connected components using gonum's
//     topo package; the exact solver uses it to solve components independently.
//
// Example:
//
//	g, err := core.FromEdges(4, []core.Edge{{0, 1}, {1, 2}, {2, 3}})
//	if errors.Is(err, core.ErrInvalidInput) { ... }
//	fmt.Println(g.Neighbors(1)) // [0 2]
package core
