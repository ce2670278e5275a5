// Package exact computes the twin-width of a graph by branch-and-bound over
// contraction sequences.
//
// A contraction sequence merges two vertices at a time until one remains;
// merged vertices keep a black edge to a third vertex only when both had a
// black edge to it, and a red edge otherwise. The width of a sequence is the
// largest red degree seen along the way, and the twin-width is the smallest
// width over all sequences.
//
// Building blocks:
//
//   - SolverInfo: mutex-guarded lower bound, upper bound and best sequence,
//     shared by every worker of a run. Bounds only move towards each other.
//   - Strategy: candidate ranking (ByCost, ByNewRed, ByCarriedRed) over a
//     red-black tree; ties break on vertex ids so runs are deterministic.
//   - GreedySequence: contracts the best-ranked pair repeatedly to seed the
//     upper bound, then undoes every step.
//   - BranchSolver: depth-first search with Contract/Undo on one trigraph,
//     cost filtering, a partition-keyed transposition table and optional
//     Oracle probes.
//   - Portfolio: several BranchSolvers with different strategies over clones
//     of one trigraph, sharing one SolverInfo (errgroup).
//   - Solve: splits a core.Graph into connected components, solves each and
//     joins the results.
//
// Library code never logs. Progress leaves the package through a Reporter;
// see internal/telemetry for zerolog and Prometheus sinks.
//
// Example:
//
//	g := builder.Must(builder.BuildGraph(nil, builder.Named(builder.Chvatal)))
//	res, err := exact.Solve(ctx, g, exact.DefaultOptions(), 0)
//	// res.Width == 3, res.Proven == true
package exact
