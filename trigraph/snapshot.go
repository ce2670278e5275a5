// SPDX-License-Identifier: MIT
// Package: twinwidth/trigraph
//
// snapshot.go - deep copies, oracle snapshots and partition keys.

package trigraph

import (
	"encoding/binary"

	"github.com/katalvlaran/twinwidth/core"
)

// Clone returns an independent deep copy, journal included, so the copy can
// Undo the contractions it inherited.
// Complexity: O(n²/64) Dense, O(n + m) Sparse, plus the tables.
func (t *TriGraph) Clone() *TriGraph {
	c := &TriGraph{
		n:             t.n,
		storage:       t.storage,
		active:        append([]bool(nil), t.active...),
		frozen:        append([]bool(nil), t.frozen...),
		parent:        append([]int(nil), t.parent...),
		numActive:     t.numActive,
		black:         t.black.clone(),
		red:           t.red.clone(),
		blackDeg:      append([]int(nil), t.blackDeg...),
		redDeg:        append([]int(nil), t.redDeg...),
		costReady:     t.costReady,
		criteriaReady: t.criteriaReady,
		criteriaStale: t.criteriaStale,
		journal:       append([]entry(nil), t.journal...),
		frames:        append([]int(nil), t.frames...),
	}
	if t.cost != nil {
		c.cost = t.cost.clone()
	}
	if t.criteria != nil {
		c.criteria = t.criteria.clone()
	}

	return c
}

// Snapshot copies the active vertices, their edges and the frozen set.
func (t *TriGraph) Snapshot() Snapshot {
	s := Snapshot{Vertices: t.Vertices()}
	for _, u := range s.Vertices {
		if t.frozen[u] {
			s.Frozen = append(s.Frozen, u)
		}
		t.black.each(u, func(v int) bool {
			if u < v {
				s.Black = append(s.Black, core.Edge{U: u, V: v})
			}

			return true
		})
		t.red.each(u, func(v int) bool {
			if u < v {
				s.Red = append(s.Red, core.Edge{U: u, V: v})
			}

			return true
		})
	}

	return s
}

// root follows the merge forest to the vertex that currently stands for v.
func (t *TriGraph) root(v int) int {
	for t.parent[v] != v {
		v = t.parent[v]
	}

	return v
}

// Members returns the original vertices merged into v so far, ascending.
// Inactive or out-of-range v yields nil.
func (t *TriGraph) Members(v int) []int {
	if !t.IsActive(v) {
		return nil
	}
	var out []int
	for x := 0; x < t.n; x++ {
		if t.root(x) == v {
			out = append(out, x)
		}
	}

	return out
}

// PartitionKey encodes the current vertex partition independently of the
// merge order: each vertex is labelled with the smallest member of its part.
// Two states reached from the same starting trigraph with equal keys have
// identical trigraphs up to vertex naming.
// Complexity: O(n · depth).
func (t *TriGraph) PartitionKey() string {
	low := make([]int, t.n)
	for v := range low {
		low[v] = -1
	}
	roots := make([]int, t.n)
	for x := 0; x < t.n; x++ {
		r := t.root(x)
		roots[x] = r
		if low[r] < 0 {
			low[r] = x
		}
	}
	buf := make([]byte, 0, 2*t.n)
	for x := 0; x < t.n; x++ {
		buf = binary.AppendUvarint(buf, uint64(low[roots[x]]))
	}

	return string(buf)
}
