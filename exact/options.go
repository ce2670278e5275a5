// SPDX-License-Identifier: MIT
// Package: twinwidth/exact
//
// options.go - solver configuration.

package exact

import (
	"fmt"
	"time"

	"github.com/katalvlaran/twinwidth/trigraph"
)

// Options configures a BranchSolver run.
//
//	TimeLimit     - wall-clock budget; 0 means none. Expiry ends the run unproven.
//	BranchCap     - keep only the best k candidates per node; 0 keeps all.
//	                A capped run forfeits optimality and is never marked proven.
//	Strategy      - candidate ranking (see Strategies).
//	SeedGreedy    - run GreedySequence first to seed the upper bound.
//	Oracle        - optional lower-bound oracle; nil disables it.
//	OracleBudget  - time budget per oracle query; 0 means unbounded.
//	OracleDepth   - probe the oracle at search depths 1..OracleDepth as well as
//	                at the root.
//	TableLimit    - maximum entries in the transposition table; 0 disables it.
//	ProgressEvery - emit a progress event every N nodes; 0 disables them.
//	Reporter      - event sink; nil discards events.
//	Frozen        - vertices excluded from every candidate pair.
//	Forced        - merges applied, in order, before the search.
type Options struct {
	TimeLimit     time.Duration
	BranchCap     int
	Strategy      Strategy
	SeedGreedy    bool
	Oracle        Oracle
	OracleBudget  time.Duration
	OracleDepth   int
	TableLimit    int
	ProgressEvery int
	Reporter      Reporter
	Frozen        []int
	Forced        []trigraph.Pair
}

// Default values.
const (
	DefaultTableLimit    = 1 << 20
	DefaultOracleBudget  = 2 * time.Second
	DefaultProgressEvery = 1 << 14
)

// DefaultOptions returns the exhaustive configuration: greedy seeding, cost
// ranking, a transposition table and no oracle.
func DefaultOptions() Options {
	return Options{
		Strategy:      ByCost,
		SeedGreedy:    true,
		OracleBudget:  DefaultOracleBudget,
		TableLimit:    DefaultTableLimit,
		ProgressEvery: DefaultProgressEvery,
	}
}

// Validate checks every numeric field and the strategy.
func (o Options) Validate() error {
	switch {
	case o.TimeLimit < 0:
		return fmt.Errorf("TimeLimit=%s: %w", o.TimeLimit, ErrBadOptions)
	case o.BranchCap < 0:
		return fmt.Errorf("BranchCap=%d: %w", o.BranchCap, ErrBadOptions)
	case !o.Strategy.valid():
		return fmt.Errorf("Strategy=%d: %w", o.Strategy, ErrBadOptions)
	case o.OracleBudget < 0:
		return fmt.Errorf("OracleBudget=%s: %w", o.OracleBudget, ErrBadOptions)
	case o.OracleDepth < 0:
		return fmt.Errorf("OracleDepth=%d: %w", o.OracleDepth, ErrBadOptions)
	case o.TableLimit < 0:
		return fmt.Errorf("TableLimit=%d: %w", o.TableLimit, ErrBadOptions)
	case o.ProgressEvery < 0:
		return fmt.Errorf("ProgressEvery=%d: %w", o.ProgressEvery, ErrBadOptions)
	}

	return nil
}

func (o Options) reporter() Reporter {
	if o.Reporter == nil {
		return NopReporter{}
	}

	return o.Reporter
}
