// SPDX-License-Identifier: MIT
// Package: twinwidth/exact
//
// info.go - SolverInfo, the bound record shared by every worker of a run.

package exact

import (
	"math"
	"slices"
	"sync"

	"github.com/katalvlaran/twinwidth/trigraph"
)

// Unbounded is the upper bound before any complete sequence is known.
const Unbounded = math.MaxInt

// SolverInfo records the best lower bound, the best upper bound and the
// sequence that achieves it. All methods are safe for concurrent use; the
// bounds only ever move towards each other.
type SolverInfo struct {
	mu     sync.Mutex
	lower  int
	upper  int
	seq    []trigraph.Pair
	proven bool
	// overHint is set once a sequence beat the lower bound, which only an
	// inadmissible lower-bound hint can cause.
	overHint bool
}

// NewSolverInfo returns a record with lower 0 and an unbounded upper bound.
func NewSolverInfo() *SolverInfo {
	return &SolverInfo{upper: Unbounded}
}

// UpdateUpperBound installs (seq, width) if width is strictly below the
// current upper bound and reports whether it did. A lower bound above the
// new width can only come from an over-estimated hint: it is clamped down to
// the width and HintOverestimated reports it from then on.
func (s *SolverInfo) UpdateUpperBound(seq []trigraph.Pair, width int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if width >= s.upper {
		return false
	}
	s.upper = width
	s.seq = slices.Clone(seq)
	if s.lower > width {
		s.lower = width
		s.overHint = true
	}

	return true
}

// UpdateLowerBound raises the lower bound to v, capped at a finite upper
// bound, and reports whether it moved.
func (s *SolverInfo) UpdateLowerBound(v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.upper != Unbounded && v > s.upper {
		v = s.upper
	}
	if v <= s.lower {
		return false
	}
	s.lower = v

	return true
}

// LowerBound returns the current lower bound.
func (s *SolverInfo) LowerBound() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lower
}

// UpperBound returns the current upper bound (Unbounded if none).
func (s *SolverInfo) UpperBound() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.upper
}

// Bounds returns both bounds under one lock.
func (s *SolverInfo) Bounds() (lower, upper int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lower, s.upper
}

// Bounded reports whether a complete sequence is known.
func (s *SolverInfo) Bounded() bool { return s.UpperBound() != Unbounded }

// Closed reports whether the bounds met.
func (s *SolverInfo) Closed() bool {
	lo, up := s.Bounds()

	return up <= lo
}

// ContractionSequence returns a copy of the best sequence.
func (s *SolverInfo) ContractionSequence() []trigraph.Pair {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.seq)
}

// HintOverestimated reports whether a lower-bound hint above the true width
// had to be clamped. Only then can the lower bound have decreased.
func (s *SolverInfo) HintOverestimated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.overHint
}

// Proven reports whether the upper bound is known to be optimal.
func (s *SolverInfo) Proven() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.proven
}

// MarkProven records that the search space was exhausted: the lower bound
// becomes the upper bound. A no-op while no sequence is known.
func (s *SolverInfo) MarkProven() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.upper == Unbounded {
		return
	}
	s.lower = s.upper
	s.proven = true
}
