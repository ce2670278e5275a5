// SPDX-License-Identifier: MIT
// Package: twinwidth/exact
//
// solve.go - whole-graph driver with connected-component splitting.
//
// The twin-width of a disjoint union is the maximum over its components, and
// once every component is reduced to one vertex the remaining vertices are
// isolated, so merging them costs nothing. Solve therefore searches each
// component on its own trigraph and glues the sequences together.

package exact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/twinwidth/core"
	"github.com/katalvlaran/twinwidth/trigraph"
)

// Solve computes a minimum-width contraction sequence of g.
//
// lowerHint must be a valid lower bound for g (0 when unknown). Every
// component is searched with the same hint; a component whose own width is
// below the hint stops as soon as it matches it, which cannot change the
// maximum. Frozen or Forced options refer to whole-graph ids and disable the
// split. TimeLimit applies to the whole call.
//
// The Result is proven iff every component search was proven. Width is
// Unbounded (and Sequence nil) if some component ended without any sequence.
func Solve(ctx context.Context, g *core.Graph, opts Options, lowerHint int) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("Solve: %w", ErrNilGraph)
	}
	if err := opts.Validate(); err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
		opts.TimeLimit = 0
	}

	start := time.Now()
	runID := uuid.New()
	if g.Order() == 0 {
		return Result{RunID: runID, Proven: true, Elapsed: time.Since(start)}, nil
	}
	if len(opts.Frozen) > 0 || len(opts.Forced) > 0 {
		return solveWhole(ctx, g, opts, lowerHint, runID)
	}

	out := Result{RunID: runID, Proven: true}
	var reps []int
	for i, comp := range g.Components() {
		if len(comp) == 1 {
			reps = append(reps, comp[0])

			continue
		}
		res, err := solveComponent(ctx, g, comp, opts, lowerHint, runID, i)
		if err != nil {
			return Result{}, fmt.Errorf("Solve: component %d: %w", i, err)
		}
		out.Nodes += res.Nodes
		out.Pruned += res.Pruned
		out.TableHits += res.TableHits
		out.Truncated += res.Truncated
		out.Lower = max(out.Lower, res.Lower)
		out.Proven = out.Proven && res.Proven
		out.Interrupted = out.Interrupted || res.Interrupted
		if res.Width == Unbounded || out.Width == Unbounded {
			out.Width = Unbounded
			out.Sequence = nil
			reps = append(reps, comp[0])

			continue
		}
		out.Width = max(out.Width, res.Width)
		out.Sequence = append(out.Sequence, res.Sequence...)
		reps = append(reps, componentRoot(comp, res.Sequence))
	}
	if out.Width != Unbounded {
		for _, r := range reps[1:] {
			out.Sequence = append(out.Sequence, trigraph.Pair{Removed: r, Survivor: reps[0]})
		}
		// Components below the hint are expected; only the whole graph
		// beating it means the hint was wrong.
		out.HintOverestimated = out.Width < lowerHint
		out.Lower = min(max(out.Lower, lowerHint), out.Width)
	} else {
		out.Lower = max(out.Lower, lowerHint)
	}
	out.Elapsed = time.Since(start)

	return out, nil
}

// solveComponent searches the subgraph induced by comp and maps the result
// back to g's ids.
func solveComponent(ctx context.Context, g *core.Graph, comp []int, opts Options, lowerHint int, runID uuid.UUID, worker int) (Result, error) {
	local := make(map[int]int, len(comp))
	for i, v := range comp {
		local[v] = i
	}
	var edges []core.Edge
	for _, u := range comp {
		for _, v := range g.Neighbors(u) {
			if u < v {
				edges = append(edges, core.Edge{U: local[u], V: local[v]})
			}
		}
	}
	sub, err := trigraph.New(len(comp), edges)
	if err != nil {
		return Result{}, err
	}
	solver, err := NewBranchSolver(sub, nil, opts)
	if err != nil {
		return Result{}, err
	}
	res, err := solver.withIdentity(runID, worker).Run(ctx, lowerHint)
	if err != nil {
		return Result{}, err
	}
	for i, p := range res.Sequence {
		res.Sequence[i] = trigraph.Pair{Removed: comp[p.Removed], Survivor: comp[p.Survivor]}
	}

	return res, nil
}

func solveWhole(ctx context.Context, g *core.Graph, opts Options, lowerHint int, runID uuid.UUID) (Result, error) {
	t, err := trigraph.FromCore(g)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	solver, err := NewBranchSolver(t, nil, opts)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	res, err := solver.withIdentity(runID, 0).Run(ctx, lowerHint)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}

	return res, nil
}

// componentRoot returns the vertex left over after seq reduces comp.
func componentRoot(comp []int, seq []trigraph.Pair) int {
	if len(seq) == 0 {
		return comp[0]
	}

	return seq[len(seq)-1].Survivor
}
