// SPDX-License-Identifier: MIT
// Package: twinwidth/trigraph
//
// trigraph.go - TriGraph type, constructors and read-only queries.
//
// Invariants (checked by CheckConsistency):
//   - black and red rows are symmetric and disjoint, without self-loops;
//   - no edge touches an inactive vertex;
//   - blackDeg/redDeg/numActive match the rows;
//   - frozen vertices are active;
//   - when ready, cost and criteria tables match a full recomputation.

package trigraph

import (
	"fmt"

	"github.com/katalvlaran/twinwidth/core"
)

// TriGraph is an undoable trigraph over vertex ids 0..N()-1.
type TriGraph struct {
	n         int
	storage   Storage
	active    []bool
	frozen    []bool
	parent    []int // merge forest: parent[v] == v for every root
	numActive int

	black    adjacency
	red      adjacency
	blackDeg []int
	redDeg   []int

	cost          pairTable
	criteria      pairTable
	costReady     bool
	criteriaReady bool
	criteriaStale bool

	journal []entry
	frames  []int
}

// New builds a TriGraph with n active vertices and the given black edges.
//
// Errors: ErrInvalidInput (wrapping the core cause) for a negative n,
// out-of-range ids, self-loops and duplicate edges.
//
// Complexity: O(n + m) plus O(n²/64) words for Dense storage.
func New(n int, edges []core.Edge, opts ...Option) (*TriGraph, error) {
	g, err := core.FromEdges(n, edges)
	if err != nil {
		return nil, fmt.Errorf("trigraph.New: %w: %w", ErrInvalidInput, err)
	}

	return FromCore(g, opts...)
}

// FromCore builds a TriGraph whose black edges are the edges of g.
func FromCore(g *core.Graph, opts ...Option) (*TriGraph, error) {
	if g == nil {
		return nil, fmt.Errorf("trigraph.FromCore: nil graph: %w", ErrInvalidInput)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Order()
	s := cfg.resolve(n)
	t := &TriGraph{
		n:         n,
		storage:   s,
		active:    make([]bool, n),
		frozen:    make([]bool, n),
		parent:    make([]int, n),
		numActive: n,
		black:     newAdjacency(s, n),
		red:       newAdjacency(s, n),
		blackDeg:  make([]int, n),
		redDeg:    make([]int, n),
	}
	for v := 0; v < n; v++ {
		t.active[v] = true
		t.parent[v] = v
	}
	for _, e := range g.Edges() {
		t.link(e.U, e.V, Black)
	}

	return t, nil
}

// N returns the number of vertex ids, active or not.
func (t *TriGraph) N() int { return t.n }

// Storage reports the resolved storage variant.
func (t *TriGraph) Storage() Storage { return t.storage }

// NumActive returns the number of active vertices.
func (t *TriGraph) NumActive() int { return t.numActive }

// Depth returns the number of outstanding contractions on the journal.
func (t *TriGraph) Depth() int { return len(t.frames) }

func (t *TriGraph) inRange(v int) bool { return v >= 0 && v < t.n }

// IsActive reports whether v is a live vertex. Out-of-range ids yield false.
func (t *TriGraph) IsActive(v int) bool { return t.inRange(v) && t.active[v] }

// IsFrozen reports whether v is frozen.
func (t *TriGraph) IsFrozen(v int) bool { return t.inRange(v) && t.frozen[v] }

// Vertices returns the active vertices in ascending order.
func (t *TriGraph) Vertices() []int {
	out := make([]int, 0, t.numActive)
	for v := 0; v < t.n; v++ {
		if t.active[v] {
			out = append(out, v)
		}
	}

	return out
}

// Movable returns the active, non-frozen vertices in ascending order.
func (t *TriGraph) Movable() []int {
	out := make([]int, 0, t.numActive)
	for v := 0; v < t.n; v++ {
		if t.active[v] && !t.frozen[v] {
			out = append(out, v)
		}
	}

	return out
}

// NumMovable counts the active, non-frozen vertices.
func (t *TriGraph) NumMovable() int {
	c := 0
	for v := 0; v < t.n; v++ {
		if t.active[v] && !t.frozen[v] {
			c++
		}
	}

	return c
}

func (t *TriGraph) rows(c Color) adjacency {
	if c == Red {
		return t.red
	}

	return t.black
}

// Neighbors returns the c-coloured neighbours of v in ascending order.
// c must be Black or Red; anything else yields nil.
func (t *TriGraph) Neighbors(v int, c Color) []int {
	if !t.IsActive(v) || (c != Black && c != Red) {
		return nil
	}
	var out []int
	t.rows(c).each(v, func(w int) bool {
		out = append(out, w)

		return true
	})

	return out
}

// Degree returns the number of c-coloured edges at v.
func (t *TriGraph) Degree(v int, c Color) int {
	if !t.IsActive(v) {
		return 0
	}
	switch c {
	case Black:
		return t.blackDeg[v]
	case Red:
		return t.redDeg[v]
	default:
		return 0
	}
}

// RedDegree returns the red degree of v.
func (t *TriGraph) RedDegree(v int) int { return t.Degree(v, Red) }

// MaxRedDegree returns the largest red degree over the active vertices.
// Complexity: O(n).
func (t *TriGraph) MaxRedDegree() int {
	best := 0
	for v := 0; v < t.n; v++ {
		if t.active[v] && t.redDeg[v] > best {
			best = t.redDeg[v]
		}
	}

	return best
}

// EdgeColor returns the colour of {u, v}, or None.
func (t *TriGraph) EdgeColor(u, v int) Color {
	if !t.inRange(u) || !t.inRange(v) {
		return None
	}

	return t.color(u, v)
}

// HasEdge reports whether {u, v} is an edge of either colour.
func (t *TriGraph) HasEdge(u, v int) bool { return t.EdgeColor(u, v) != None }

func (t *TriGraph) color(u, v int) Color {
	switch {
	case t.black.has(u, v):
		return Black
	case t.red.has(u, v):
		return Red
	default:
		return None
	}
}

// link inserts {u, v} with colour c; the pair must be unlinked.
func (t *TriGraph) link(u, v int, c Color) {
	t.rows(c).add(u, v)
	t.rows(c).add(v, u)
	if c == Red {
		t.redDeg[u]++
		t.redDeg[v]++
	} else {
		t.blackDeg[u]++
		t.blackDeg[v]++
	}
}

// unlink removes {u, v} of colour c.
func (t *TriGraph) unlink(u, v int, c Color) {
	t.rows(c).remove(u, v)
	t.rows(c).remove(v, u)
	if c == Red {
		t.redDeg[u]--
		t.redDeg[v]--
	} else {
		t.blackDeg[u]--
		t.blackDeg[v]--
	}
}

// recolor moves {u, v} from its current colour to c and returns the old one.
func (t *TriGraph) recolor(u, v int, c Color) Color {
	old := t.color(u, v)
	if old == c {
		return old
	}
	if old != None {
		t.unlink(u, v, old)
	}
	if c != None {
		t.link(u, v, c)
	}

	return old
}

// eachNeighbor visits black then red neighbours of u.
func (t *TriGraph) eachNeighbor(u int, fn func(w int) bool) {
	if t.black.each(u, fn) {
		t.red.each(u, fn)
	}
}

func (t *TriGraph) checkVertex(op string, v int) error {
	if !t.inRange(v) {
		return fmt.Errorf("%s: vertex %d with n=%d: %w", op, v, t.n, ErrVertexOutOfRange)
	}
	if !t.active[v] {
		return fmt.Errorf("%s: vertex %d: %w", op, v, ErrVertexInactive)
	}

	return nil
}

func (t *TriGraph) checkPair(op string, u, v int) error {
	if err := t.checkVertex(op, u); err != nil {
		return err
	}
	if err := t.checkVertex(op, v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%s: (%d,%d): %w", op, u, v, ErrSameVertex)
	}

	return nil
}
