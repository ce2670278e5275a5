// SPDX-License-Identifier: MIT
// Package: twinwidth/exact
//
// greedy.go - greedy upper bound.

package exact

import (
	"fmt"

	"github.com/katalvlaran/twinwidth/trigraph"
)

// GreedySequence repeatedly contracts the best-ranked candidate until at
// most one movable vertex remains, then undoes every step. It returns the
// sequence and its width, the starting max red degree included. g is left
// exactly as it was found.
//
// Complexity: O(m) rounds of rankCandidates.
func GreedySequence(g Searchable, s Strategy) ([]trigraph.Pair, int, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	width := g.MaxRedDegree()
	var (
		seq  []trigraph.Pair
		toks []trigraph.Token
		err  error
	)
	for g.NumMovable() > 1 {
		cands, _ := rankCandidates(g, s, Unbounded, 1)
		if len(cands) == 0 {
			err = fmt.Errorf("GreedySequence: no candidate with %d movable vertices: %w",
				g.NumMovable(), trigraph.ErrInconsistentState)

			break
		}
		p := cands[0]
		tok, cerr := g.Contract(p.Removed, p.Survivor)
		if cerr != nil {
			err = fmt.Errorf("GreedySequence: %w", cerr)

			break
		}
		toks = append(toks, tok)
		seq = append(seq, p)
		width = max(width, tok.Width)
	}
	for i := len(toks) - 1; i >= 0; i-- {
		if uerr := g.Undo(toks[i]); uerr != nil && err == nil {
			err = fmt.Errorf("GreedySequence: %w", uerr)
		}
	}
	if err != nil {
		return nil, 0, err
	}

	return seq, width, nil
}
