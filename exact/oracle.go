// SPDX-License-Identifier: MIT
// Package: twinwidth/exact
//
// oracle.go - lower-bound oracle contract.

package exact

import (
	"context"
	"time"

	"github.com/katalvlaran/twinwidth/trigraph"
)

// Verdict is an oracle answer to "can this trigraph be contracted with
// width at most threshold?".
type Verdict int

const (
	// Unknown carries no information (timeout, budget, error).
	Unknown Verdict = iota
	// Satisfiable means a sequence of width ≤ threshold exists.
	Satisfiable
	// Unsatisfiable means every sequence has width > threshold.
	Unsatisfiable
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case Satisfiable:
		return "sat"
	case Unsatisfiable:
		return "unsat"
	default:
		return "unknown"
	}
}

// Oracle decides bounded-width questions on a trigraph snapshot. Frozen
// vertices in the snapshot never move; the remaining active vertices must
// be merged down to one. A non-positive budget means "no time limit".
// Implementations must honour ctx cancellation by returning Unknown.
type Oracle interface {
	Query(ctx context.Context, snap trigraph.Snapshot, threshold int, budget time.Duration) (Verdict, error)
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(ctx context.Context, snap trigraph.Snapshot, threshold int, budget time.Duration) (Verdict, error)

// Query implements Oracle.
func (f OracleFunc) Query(ctx context.Context, snap trigraph.Snapshot, threshold int, budget time.Duration) (Verdict, error) {
	return f(ctx, snap, threshold, budget)
}
