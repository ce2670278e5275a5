// SPDX-License-Identifier: MIT
// Package: twinwidth/oracle
//
// sat.go - SAT, the exact.Oracle backed by gini.

package oracle

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/twinwidth/exact"
	"github.com/katalvlaran/twinwidth/trigraph"
)

// SAT answers bounded-width queries with a fresh gini instance per query.
// It is safe for concurrent use.
type SAT struct {
	maxVertices int

	queries atomic.Int64
	solved  atomic.Int64
}

var _ exact.Oracle = (*SAT)(nil)

// New returns a SAT oracle with DefaultMaxVertices unless overridden.
func New(opts ...Option) *SAT {
	s := &SAT{maxVertices: DefaultMaxVertices}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Query implements exact.Oracle.
//
// Cheap cases are answered without a solver: a negative threshold or a
// starting red degree above it is Unsatisfiable; one movable vertex or a
// threshold no vertex can exceed is Satisfiable. Otherwise the instance is
// solved with a budget (non-positive: until ctx's deadline, or unbounded).
// Timeout yields Unknown; a context cancelled before solving yields Unknown
// and ctx.Err().
func (s *SAT) Query(ctx context.Context, snap trigraph.Snapshot, threshold int, budget time.Duration) (exact.Verdict, error) {
	s.queries.Add(1)
	if err := ctx.Err(); err != nil {
		return exact.Unknown, err
	}
	n := len(snap.Vertices)
	switch {
	case threshold < 0 || maxRedDegree(snap) > threshold:
		return exact.Unsatisfiable, nil
	case n-len(snap.Frozen) <= 1 || threshold >= n-1:
		return exact.Satisfiable, nil
	case n > s.maxVertices:
		return exact.Unknown, nil
	}

	if budget <= 0 {
		if dl, ok := ctx.Deadline(); ok {
			budget = time.Until(dl)
			if budget <= 0 {
				return exact.Unknown, context.DeadlineExceeded
			}
		}
	}
	enc := encode(snap, threshold)
	s.solved.Add(1)
	var res int
	if budget > 0 {
		res = enc.g.Try(budget)
	} else {
		res = enc.g.Solve()
	}
	switch res {
	case 1:
		return exact.Satisfiable, nil
	case -1:
		return exact.Unsatisfiable, nil
	default:
		return exact.Unknown, nil
	}
}

// Queries returns how many queries were received.
func (s *SAT) Queries() int64 { return s.queries.Load() }

// Solved returns how many queries reached the SAT solver.
func (s *SAT) Solved() int64 { return s.solved.Load() }

func maxRedDegree(snap trigraph.Snapshot) int {
	deg := make(map[int]int, len(snap.Vertices))
	best := 0
	for _, e := range snap.Red {
		deg[e.U]++
		deg[e.V]++
		best = max(best, deg[e.U], deg[e.V])
	}

	return best
}
