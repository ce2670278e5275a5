// SPDX-License-Identifier: MIT
// Package: twinwidth/exact
//
// portfolio.go - parallel solvers sharing one SolverInfo.

package exact

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/twinwidth/trigraph"
)

// Portfolio runs workers BranchSolvers over private clones of g. Worker i
// ranks candidates with StrategyFor(i) and all workers share info, so a
// bound found by one prunes the others. The first worker to finish with a
// proven bound cancels the rest. workers ≤ 0 means runtime.NumCPU().
//
// The caches of g are built once before cloning; g itself is not searched.
// Options.TimeLimit bounds the whole portfolio, not each worker. The
// returned Result aggregates node counts over all workers.
func Portfolio(ctx context.Context, g *trigraph.TriGraph, info *SolverInfo, opts Options, workers, lowerHint int) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("Portfolio: %w", ErrNilGraph)
	}
	if err := opts.Validate(); err != nil {
		return Result{}, fmt.Errorf("Portfolio: %w", err)
	}
	if info == nil {
		info = NewSolverInfo()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if !g.CostReady() {
		if err := g.ComputeAllPairsSymmetricDifferences(); err != nil {
			return Result{}, fmt.Errorf("Portfolio: %w", err)
		}
	}
	if workers > 1 && !g.CriteriaReady() {
		if err := g.RecomputeGreedyCriteria(); err != nil {
			return Result{}, fmt.Errorf("Portfolio: %w", err)
		}
	}

	start := time.Now()
	runID := uuid.New()
	if opts.TimeLimit > 0 {
		var stop context.CancelFunc
		ctx, stop = context.WithTimeout(ctx, opts.TimeLimit)
		defer stop()
		opts.TimeLimit = 0
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	grp, gctx := errgroup.WithContext(ctx)

	results := make([]Result, workers)
	for i := 0; i < workers; i++ {
		o := opts
		o.Strategy = StrategyFor(i)
		// Only the first worker pays for the greedy seed; the bound is shared.
		o.SeedGreedy = opts.SeedGreedy && i == 0
		solver, err := NewBranchSolver(g.Clone(), info, o)
		if err != nil {
			return Result{}, fmt.Errorf("Portfolio: worker %d: %w", i, err)
		}
		solver.withIdentity(runID, i)
		grp.Go(func() error {
			res, err := solver.Run(gctx, lowerHint)
			if err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			results[i] = res
			if res.Proven {
				cancel()
			}

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Result{}, fmt.Errorf("Portfolio: %w", err)
	}

	lower, upper := info.Bounds()
	out := Result{
		RunID:    runID,
		Width:    upper,
		Lower:    lower,
		Sequence: info.ContractionSequence(),
		Proven:   info.Proven(),
		Elapsed:  time.Since(start),
	}
	for _, r := range results {
		out.Nodes += r.Nodes
		out.Pruned += r.Pruned
		out.TableHits += r.TableHits
		out.Truncated += r.Truncated
		out.Interrupted = out.Interrupted || r.Interrupted
	}
	out.HintOverestimated = info.HintOverestimated()
	if out.Proven {
		out.Interrupted = false
	} else if ctx.Err() != nil {
		out.Interrupted = true
	}

	return out, nil
}
