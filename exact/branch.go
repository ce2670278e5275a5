// SPDX-License-Identifier: MIT
// Package: twinwidth/exact
//
// branch.go - BranchSolver, the exact depth-first branch-and-bound.
//
// Search outline:
//  1. Freeze Options.Frozen, apply Options.Forced (thawing frozen survivors)
//     and seed the lower bound with max(hint, running width).
//  2. Optional greedy seed of the upper bound; optional root oracle loop
//     (Unsatisfiable at k raises the lower bound to k+1).
//  3. DFS over candidate pairs in ranking order. A node is a leaf when at
//     most one movable vertex remains. A node is pruned when its running
//     width reaches the upper bound, when its partition was already expanded
//     with a running width at least as good, or when the oracle proves the
//     subtree cannot beat the upper bound. The search stops as soon as the
//     bounds meet.
//  4. An uncapped run that was exhaustive, or whose bounds met, marks the
//     bound proven. A BranchCap run is never proven.
//
// Determinism: for a fixed graph, options and hint (and no time limit), the
// run visits the same nodes in the same order.

package exact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/twinwidth/trigraph"
)

// Searchable is the trigraph capability set the search relies on.
// *trigraph.TriGraph implements it.
type Searchable interface {
	NumMovable() int
	Movable() []int
	IsActive(v int) bool
	IsFrozen(v int) bool
	Freeze(v int) error
	Thaw(v int) error
	MaxRedDegree() int
	Cost(u, v int) int
	Criteria(u, v int) int
	CostReady() bool
	CriteriaReady() bool
	ComputeAllPairsSymmetricDifferences() error
	RecomputeGreedyCriteria() error
	Contract(removed, survivor int) (trigraph.Token, error)
	Undo(tok trigraph.Token) error
	Snapshot() trigraph.Snapshot
	PartitionKey() string
}

var _ Searchable = (*trigraph.TriGraph)(nil)

// Result summarises a run.
type Result struct {
	RunID       uuid.UUID
	Width       int // best known upper bound (Unbounded if none)
	Lower       int // best known lower bound
	Sequence    []trigraph.Pair
	Proven      bool // Width is optimal
	Interrupted bool // stopped by cancellation or TimeLimit
	Nodes       int64
	Pruned      int64
	TableHits   int64 // nodes pruned by the transposition table
	Truncated   int64 // nodes whose candidate list BranchCap cut short
	// HintOverestimated: the lower-bound hint exceeded a sequence found,
	// so Lower was clamped down and Proven rests on that sequence alone.
	HintOverestimated bool
	Elapsed           time.Duration
}

// BranchSolver searches contraction sequences of one Searchable. It is not
// safe for concurrent use; run several solvers over clones instead.
type BranchSolver struct {
	g      Searchable
	info   *SolverInfo
	opts   Options
	rep    Reporter
	worker int
	runID  uuid.UUID

	ctx         context.Context
	start       time.Time
	path        []trigraph.Pair
	table       *transpositionTable
	nodes       int64
	pruned      int64
	truncated   int64
	interrupted bool
	err         error
}

// NewBranchSolver validates opts and binds the solver to g and info. A nil
// info gets a fresh SolverInfo.
func NewBranchSolver(g Searchable, info *SolverInfo, opts Options) (*BranchSolver, error) {
	if g == nil {
		return nil, fmt.Errorf("NewBranchSolver: %w", ErrNilGraph)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("NewBranchSolver: %w", err)
	}
	if info == nil {
		info = NewSolverInfo()
	}

	return &BranchSolver{
		g:     g,
		info:  info,
		opts:  opts,
		rep:   opts.reporter(),
		runID: uuid.New(),
	}, nil
}

// Info returns the shared bound record.
func (b *BranchSolver) Info() *SolverInfo { return b.info }

// RunID identifies the solver in events.
func (b *BranchSolver) RunID() uuid.UUID { return b.runID }

func (b *BranchSolver) withIdentity(runID uuid.UUID, worker int) *BranchSolver {
	b.runID = runID
	b.worker = worker

	return b
}

// Run searches for a minimum-width contraction sequence. lowerHint must be
// a valid lower bound (0 when unknown); a larger hint is clamped once a
// better sequence is found. Forced merges are undone before Run returns, so
// the trigraph is left as it was found apart from thawed survivors.
//
// Cancellation of ctx or expiry of TimeLimit ends the run with
// Interrupted=true and Proven=false; this is not an error.
//
// Errors: ErrBadFrozen / ErrBadForced for unusable options; trigraph errors
// if the caches cannot be built, a contraction fails or the forced prefix
// cannot be undone.
func (b *BranchSolver) Run(ctx context.Context, lowerHint int) (res Result, err error) {
	if b.opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.opts.TimeLimit)
		defer cancel()
	}
	b.ctx = ctx
	b.start = time.Now()
	b.path = b.path[:0]
	b.nodes, b.pruned, b.truncated = 0, 0, 0
	b.interrupted, b.err = false, nil
	b.table = newTranspositionTable(b.opts.TableLimit)
	b.emit(EventStart, 0)

	if err := b.prepare(); err != nil {
		return Result{}, err
	}
	running, forced, err := b.applyForced()
	if err != nil {
		return Result{}, err
	}
	defer func() {
		b.undoAll(forced)
		if err == nil && b.err != nil {
			res, err = Result{}, fmt.Errorf("Run: undo forced prefix: %w", b.err)
		}
	}()

	b.info.UpdateLowerBound(max(lowerHint, running))
	if b.opts.SeedGreedy {
		seq, w, gerr := GreedySequence(b.g, b.opts.Strategy)
		if gerr != nil {
			return Result{}, gerr
		}
		b.info.UpdateUpperBound(append(clonePairs(b.path), seq...), max(running, w))
		b.emit(EventGreedy, 0)
	}
	b.rootOracle()

	b.dfs(running, 0)
	if b.err != nil {
		return Result{}, b.err
	}
	if ctx.Err() != nil {
		b.interrupted = true
	}
	if b.opts.BranchCap == 0 && (!b.interrupted || b.info.Closed()) {
		b.info.MarkProven()
	}
	b.emit(EventFinish, 0)

	return b.result(), nil
}

// prepare builds missing caches and freezes Options.Frozen.
func (b *BranchSolver) prepare() error {
	if !b.g.CostReady() {
		if err := b.g.ComputeAllPairsSymmetricDifferences(); err != nil {
			return fmt.Errorf("Run: %w", err)
		}
	}
	if b.opts.Strategy != ByCost && !b.g.CriteriaReady() {
		if err := b.g.RecomputeGreedyCriteria(); err != nil {
			return fmt.Errorf("Run: %w", err)
		}
	}
	for _, v := range b.opts.Frozen {
		if err := b.g.Freeze(v); err != nil {
			return fmt.Errorf("Run: freeze %d: %w: %w", v, ErrBadFrozen, err)
		}
	}

	return nil
}

// applyForced contracts the forced prefix and returns the running width.
func (b *BranchSolver) applyForced() (int, []trigraph.Token, error) {
	running := b.g.MaxRedDegree()
	toks := make([]trigraph.Token, 0, len(b.opts.Forced))
	for i, p := range b.opts.Forced {
		if b.g.IsFrozen(p.Survivor) {
			if err := b.g.Thaw(p.Survivor); err != nil {
				b.undoAll(toks)

				return 0, nil, fmt.Errorf("Run: forced #%d: %w: %w", i, ErrBadForced, err)
			}
		}
		tok, err := b.g.Contract(p.Removed, p.Survivor)
		if err != nil {
			b.undoAll(toks)

			return 0, nil, fmt.Errorf("Run: forced #%d (%d into %d): %w: %w", i, p.Removed, p.Survivor, ErrBadForced, err)
		}
		toks = append(toks, tok)
		b.path = append(b.path, p)
		running = max(running, tok.Width)
	}
	if len(toks) > 0 {
		b.emit(EventForced, 0)
	}

	return running, toks, nil
}

func (b *BranchSolver) undoAll(toks []trigraph.Token) {
	for i := len(toks) - 1; i >= 0; i-- {
		if err := b.g.Undo(toks[i]); err != nil && b.err == nil {
			b.err = err
		}
	}
}

// rootOracle raises the lower bound one unsatisfiable threshold at a time.
func (b *BranchSolver) rootOracle() {
	if b.opts.Oracle == nil {
		return
	}
	snap := b.g.Snapshot()
	for {
		lower, upper := b.info.Bounds()
		if lower >= upper || b.ctx.Err() != nil {
			return
		}
		v, err := b.opts.Oracle.Query(b.ctx, snap, lower, b.opts.OracleBudget)
		if err != nil || v != Unsatisfiable {
			return
		}
		b.info.UpdateLowerBound(lower + 1)
		b.emit(EventOracle, 0)
	}
}

// nodeOracle reports whether the oracle proves the subtree cannot beat upper.
func (b *BranchSolver) nodeOracle(depth, upper int) bool {
	if b.opts.Oracle == nil || depth == 0 || depth > b.opts.OracleDepth || upper == Unbounded || upper < 1 {
		return false
	}
	v, err := b.opts.Oracle.Query(b.ctx, b.g.Snapshot(), upper-1, b.opts.OracleBudget)

	return err == nil && v == Unsatisfiable
}

func (b *BranchSolver) dfs(running, depth int) {
	b.nodes++
	if b.opts.ProgressEvery > 0 && b.nodes%int64(b.opts.ProgressEvery) == 0 {
		b.emit(EventProgress, depth)
	}

	if b.g.NumMovable() <= 1 {
		if b.info.UpdateUpperBound(b.path, running) {
			b.emit(EventUpperBound, depth)
		}

		return
	}
	lower, upper := b.info.Bounds()
	if upper <= lower {
		return
	}
	if running >= upper {
		b.pruned++

		return
	}
	if b.table != nil && !b.table.visit(b.g.PartitionKey(), running) {
		b.pruned++

		return
	}
	if b.nodeOracle(depth, upper) {
		b.pruned++

		return
	}

	cands, truncated := rankCandidates(b.g, b.opts.Strategy, upper, b.opts.BranchCap)
	if truncated {
		b.truncated++
	}
	for _, p := range cands {
		if b.ctx.Err() != nil {
			b.interrupted = true

			return
		}
		lower, upper = b.info.Bounds()
		if upper <= lower {
			return
		}
		if b.g.Cost(p.Survivor, p.Removed) >= upper {
			b.pruned++

			continue
		}
		tok, err := b.g.Contract(p.Removed, p.Survivor)
		if err != nil {
			b.err = fmt.Errorf("dfs: depth %d: %w", depth, err)

			return
		}
		b.path = append(b.path, p)
		b.dfs(max(running, tok.Width), depth+1)
		b.path = b.path[:len(b.path)-1]
		if err := b.g.Undo(tok); err != nil && b.err == nil {
			b.err = fmt.Errorf("dfs: depth %d: %w", depth, err)
		}
		if b.err != nil || b.interrupted {
			return
		}
	}
}

func (b *BranchSolver) emit(kind EventKind, depth int) {
	lower, upper := b.info.Bounds()
	b.rep.Report(Event{
		RunID:    b.runID,
		Worker:   b.worker,
		Kind:     kind,
		Strategy: b.opts.Strategy,
		Nodes:    b.nodes,
		Pruned:   b.pruned,
		Lower:    lower,
		Upper:    upper,
		Depth:    depth,
		Proven:   b.info.Proven(),
		Elapsed:  time.Since(b.start),
	})
}

func (b *BranchSolver) result() Result {
	lower, upper := b.info.Bounds()
	res := Result{
		RunID:             b.runID,
		Width:             upper,
		Lower:             lower,
		Sequence:          b.info.ContractionSequence(),
		Proven:            b.info.Proven(),
		Interrupted:       b.interrupted,
		Nodes:             b.nodes,
		Pruned:            b.pruned,
		Truncated:         b.truncated,
		HintOverestimated: b.info.HintOverestimated(),
		Elapsed:           time.Since(b.start),
	}
	if b.table != nil {
		res.TableHits = b.table.hits
	}

	return res
}

func clonePairs(p []trigraph.Pair) []trigraph.Pair {
	return append([]trigraph.Pair(nil), p...)
}
