// Package twinwidth computes the exact twin-width of small graphs.
//
// A contraction sequence merges two vertices at a time until one is left.
// Each merge keeps the edges both vertices agree on as black edges and
// turns every disagreement into a red edge; the width of a sequence is the
// largest red degree ever seen, and the twin-width of a graph is the
// smallest width over all sequences.
//
// The module is organised as a stack of subpackages:
//
//	core/      - simple undirected graph, connected components
//	builder/   - deterministic and seeded graph constructors (paths, grids,
//	             named and Platonic graphs, random graphs)
//	trigraph/  - mutable trigraph with black and red edges, journaled
//	             Contract/Undo, cost and criteria caches, sequence replay
//	exact/     - branch-and-bound search, greedy seeding, shared bounds,
//	             per-component Solve and a concurrent Portfolio
//	oracle/    - SAT decision oracle over gini ("is width <= k reachable?")
//	pace/      - PACE .gr graph and contraction-sequence text formats
//	cmd/tww    - command-line front end (solve, verify, gen)
//
// Quick start:
//
//	g := builder.Must(builder.BuildGraph(nil, builder.Named(builder.Petersen)))
//	res, err := exact.Solve(ctx, g, exact.DefaultOptions(), 0)
//	if err != nil { ... }
//	fmt.Println(res.Width, res.Proven)
package twinwidth
