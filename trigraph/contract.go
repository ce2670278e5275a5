// SPDX-License-Identifier: MIT
// Package: twinwidth/trigraph
//
// contract.go - Contract/Undo and the journal behind them.
//
// Each Contract opens a frame (the journal length at entry) and appends one
// entry per primitive change: edge recolouring, vertex deactivation, cost or
// criteria overwrite. Undo replays the top frame backwards.

package trigraph

import (
	"fmt"
	"slices"
)

type opKind uint8

const (
	opEdge opKind = iota
	opDeactivate
	opCost
	opCriteria
)

// entry records the value a primitive change overwrote.
type entry struct {
	kind     opKind
	u, v     int
	old      int
	oldColor Color
}

func (t *TriGraph) recolorJ(u, v int, c Color) {
	if old := t.recolor(u, v, c); old != c {
		t.journal = append(t.journal, entry{kind: opEdge, u: u, v: v, oldColor: old})
	}
}

// Contract merges removed into survivor and returns the frame token.
//
// For every third vertex w adjacent to either endpoint, the survivor edge
// becomes Black when both old edges were Black and Red otherwise; removed
// loses all its edges and becomes inactive.
//
// Errors:
//   - ErrVertexOutOfRange / ErrVertexInactive / ErrSameVertex for a bad pair.
//   - ErrVertexFrozen if removed is frozen (a frozen survivor is allowed).
//
// Complexity: O(d(removed) + d(survivor)) for the adjacency, plus
// O(|affected| · n · d) when the caches are ready.
func (t *TriGraph) Contract(removed, survivor int) (Token, error) {
	if err := t.checkPair("Contract", removed, survivor); err != nil {
		return Token{}, err
	}
	if t.frozen[removed] {
		return Token{}, fmt.Errorf("Contract(%d,%d): %w", removed, survivor, ErrVertexFrozen)
	}

	t.frames = append(t.frames, len(t.journal))
	touched := []int{survivor}
	for _, w := range t.unionNeighbors(removed, survivor) {
		cr, cs := t.color(removed, w), t.color(survivor, w)
		want := Red
		if cr == Black && cs == Black {
			want = Black
		}
		if cr != None {
			t.recolorJ(removed, w, None)
			touched = append(touched, w)
		}
		if cs != want {
			t.recolorJ(survivor, w, want)
			if cr == None {
				touched = append(touched, w)
			}
		}
	}
	t.recolorJ(removed, survivor, None)

	t.active[removed] = false
	t.parent[removed] = survivor
	t.numActive--
	t.journal = append(t.journal, entry{kind: opDeactivate, u: removed, v: survivor})

	t.refreshPairs(touched, true)

	return Token{seq: len(t.frames), Width: t.closedRedMax(survivor)}, nil
}

// Undo reverts the contraction identified by tok, which must be the most
// recent one.
func (t *TriGraph) Undo(tok Token) error {
	if tok.seq == 0 || tok.seq != len(t.frames) {
		return fmt.Errorf("Undo(seq=%d) at depth %d: %w", tok.seq, len(t.frames), ErrTokenMismatch)
	}
	start := t.frames[len(t.frames)-1]
	for i := len(t.journal) - 1; i >= start; i-- {
		e := t.journal[i]
		switch e.kind {
		case opEdge:
			t.recolor(e.u, e.v, e.oldColor)
		case opDeactivate:
			t.active[e.u] = true
			t.parent[e.u] = e.u
			t.numActive++
		case opCost:
			t.cost.set(e.u, e.v, e.old)
		case opCriteria:
			t.criteria.set(e.u, e.v, e.old)
		}
	}
	t.journal = t.journal[:start]
	t.frames = t.frames[:len(t.frames)-1]

	return nil
}

// unionNeighbors lists N(a) ∪ N(b) \ {a, b} in ascending order.
func (t *TriGraph) unionNeighbors(a, b int) []int {
	seen := make(map[int]struct{})
	var out []int
	collect := func(w int) bool {
		if w == a || w == b {
			return true
		}
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			out = append(out, w)
		}

		return true
	}
	t.eachNeighbor(a, collect)
	t.eachNeighbor(b, collect)
	slices.Sort(out)

	return out
}

// closedRedMax is the largest red degree among v and its red neighbours.
func (t *TriGraph) closedRedMax(v int) int {
	best := t.redDeg[v]
	t.red.each(v, func(w int) bool {
		if t.redDeg[w] > best {
			best = t.redDeg[w]
		}

		return true
	})

	return best
}
