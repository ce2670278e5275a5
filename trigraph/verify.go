// SPDX-License-Identifier: MIT
// Package: twinwidth/trigraph
//
// verify.go - independent replay of a contraction sequence.

package trigraph

import (
	"fmt"

	"github.com/katalvlaran/twinwidth/core"
)

// VerifySequence replays seq on a fresh trigraph built from g and returns the
// width of the sequence: the largest red degree seen, the initial state
// included.
//
// A complete sequence has g.Order()-1 steps (zero for an empty graph);
// anything else is rejected with ErrInvalidInput. A step that is not a legal
// contraction wraps ErrInvalidOperation and names its index.
//
// Complexity: O(len(seq) · Δ).
func VerifySequence(g *core.Graph, seq []Pair) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("VerifySequence: nil graph: %w", ErrInvalidInput)
	}
	want := g.Order() - 1
	if want < 0 {
		want = 0
	}
	if len(seq) != want {
		return 0, fmt.Errorf("VerifySequence: %d steps for %d vertices, want %d: %w",
			len(seq), g.Order(), want, ErrInvalidInput)
	}
	t, err := FromCore(g)
	if err != nil {
		return 0, err
	}
	width := t.MaxRedDegree()
	for i, p := range seq {
		tok, err := t.Contract(p.Removed, p.Survivor)
		if err != nil {
			return 0, fmt.Errorf("VerifySequence: step %d: %w", i, err)
		}
		width = max(width, tok.Width)
	}

	return width, nil
}

// NormalizeSequence rewrites a complete sequence over vertices
// 0..len(seq) so that every step keeps the smaller id: Survivor < Removed.
// Which of two merged vertices keeps its name does not change the trigraph
// up to naming, so the result has the same width as seq.
//
// Ids are tracked by position: after a step, the surviving position carries
// the smaller of the two names and the removed position the larger one.
// Out-of-range ids, self-merges and merges of an already removed position
// wrap ErrInvalidInput.
//
// Complexity: O(len(seq)).
func NormalizeSequence(seq []Pair) ([]Pair, error) {
	n := len(seq) + 1
	names := make([]int, n)
	gone := make([]bool, n)
	for v := range names {
		names[v] = v
	}
	out := make([]Pair, len(seq))
	for i, p := range seq {
		if p.Removed < 0 || p.Removed >= n || p.Survivor < 0 || p.Survivor >= n || p.Removed == p.Survivor {
			return nil, fmt.Errorf("NormalizeSequence: step %d (%d into %d): %w", i, p.Removed, p.Survivor, ErrInvalidInput)
		}
		if gone[p.Removed] || gone[p.Survivor] {
			return nil, fmt.Errorf("NormalizeSequence: step %d reuses a removed vertex: %w", i, ErrInvalidInput)
		}
		a, b := names[p.Survivor], names[p.Removed]
		lo, hi := min(a, b), max(a, b)
		names[p.Survivor], names[p.Removed] = lo, hi
		gone[p.Removed] = true
		out[i] = Pair{Removed: hi, Survivor: lo}
	}

	return out, nil
}
