// SPDX-License-Identifier: MIT
// Package: twinwidth/oracle
//
// encode.go - CNF encoding of a bounded-width contraction sequence.

package oracle

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/twinwidth/core"
	"github.com/katalvlaran/twinwidth/trigraph"
)

// encoder writes clauses straight into a gini instance. Vertices are the
// snapshot's active vertices renumbered 0..n-1 in ascending order.
type encoder struct {
	g       *gini.Gini
	nv      int
	top     z.Lit
	bot     z.Lit
	n       int
	k       int
	movable []bool
}

func newEncoder(n, k int, movable []bool) *encoder {
	e := &encoder{g: gini.New(), n: n, k: k, movable: movable}
	e.top = e.lit()
	e.bot = e.top.Not()
	e.clause(e.top)

	return e
}

func (e *encoder) lit() z.Lit {
	e.nv++

	return z.Var(e.nv).Pos()
}

func (e *encoder) lits(n int) []z.Lit {
	out := make([]z.Lit, n)
	for i := range out {
		out[i] = e.lit()
	}

	return out
}

func (e *encoder) clause(ls ...z.Lit) {
	for _, l := range ls {
		e.g.Add(l)
	}
	e.g.Add(z.LitNull)
}

// pair maps i < j to a dense index.
func (e *encoder) pair(i, j int) int {
	if i > j {
		i, j = j, i
	}

	return i*e.n - i*(i+1)/2 + (j - i - 1)
}

func (e *encoder) numPairs() int { return e.n * (e.n - 1) / 2 }

// state is the variable layer of one time step.
type state struct {
	alive []z.Lit
	edge  []z.Lit
	red   []z.Lit
}

// initial pins step 0 to the snapshot.
func (e *encoder) initial(black, red [][2]int) state {
	s := state{alive: make([]z.Lit, e.n), edge: e.lits(e.numPairs()), red: e.lits(e.numPairs())}
	for i := range s.alive {
		s.alive[i] = e.top
	}
	isEdge := make([]bool, e.numPairs())
	isRed := make([]bool, e.numPairs())
	for _, p := range black {
		isEdge[e.pair(p[0], p[1])] = true
	}
	for _, p := range red {
		isEdge[e.pair(p[0], p[1])] = true
		isRed[e.pair(p[0], p[1])] = true
	}
	for p := range isEdge {
		e.unit(s.edge[p], isEdge[p])
		e.unit(s.red[p], isRed[p])
	}
	e.boundRed(s)

	return s
}

func (e *encoder) unit(l z.Lit, val bool) {
	if val {
		e.clause(l)
	} else {
		e.clause(l.Not())
	}
}

// step adds one contraction after prev and returns the new layer.
func (e *encoder) step(prev state) state {
	rem := make([]z.Lit, e.n)
	sur := make([]z.Lit, e.n)
	next := state{alive: make([]z.Lit, e.n), edge: e.lits(e.numPairs()), red: e.lits(e.numPairs())}
	var remChoices, surChoices []z.Lit
	for i := 0; i < e.n; i++ {
		if !e.movable[i] {
			rem[i], sur[i], next.alive[i] = e.bot, e.bot, e.top

			continue
		}
		rem[i], sur[i], next.alive[i] = e.lit(), e.lit(), e.lit()
		remChoices = append(remChoices, rem[i])
		surChoices = append(surChoices, sur[i])

		// rem/sur need a live vertex; alive' = alive ∧ ¬rem.
		e.clause(rem[i].Not(), prev.alive[i])
		e.clause(sur[i].Not(), prev.alive[i])
		e.clause(next.alive[i].Not(), prev.alive[i])
		e.clause(next.alive[i].Not(), rem[i].Not())
		e.clause(next.alive[i], prev.alive[i].Not(), rem[i])
	}
	e.exactlyOne(remChoices)
	e.exactlyOne(surChoices)
	// Survivor id below removed id.
	for i := 0; i < e.n; i++ {
		if !e.movable[i] {
			continue
		}
		for j := 0; j <= i; j++ {
			if e.movable[j] {
				e.clause(sur[i].Not(), rem[j].Not())
			}
		}
	}

	for i := 0; i < e.n; i++ {
		for j := i + 1; j < e.n; j++ {
			p := e.pair(i, j)
			eo, en, ro, rn := prev.edge[p], next.edge[p], prev.red[p], next.red[p]
			// Untouched pairs carry over.
			e.clause(rem[i], rem[j], sur[i], sur[j], eo.Not(), en)
			e.clause(rem[i], rem[j], sur[i], sur[j], eo, en.Not())
			e.clause(rem[i], rem[j], sur[i], sur[j], ro.Not(), rn)
			// A removed vertex loses its edges.
			e.clause(rem[i].Not(), en.Not())
			e.clause(rem[j].Not(), en.Not())
			e.clause(rem[i].Not(), rn.Not())
			e.clause(rem[j].Not(), rn.Not())
		}
	}

	for s := 0; s < e.n; s++ {
		if !e.movable[s] {
			continue
		}
		for r := s + 1; r < e.n; r++ {
			if !e.movable[r] {
				continue
			}
			ns, nr := sur[s].Not(), rem[r].Not()
			for w := 0; w < e.n; w++ {
				if w == s || w == r {
					continue
				}
				ps, pr := e.pair(s, w), e.pair(r, w)
				es, er, en := prev.edge[ps], prev.edge[pr], next.edge[ps]
				rs, rr, rn := prev.red[ps], prev.red[pr], next.red[ps]
				e.clause(ns, nr, en.Not(), es, er)
				e.clause(ns, nr, es.Not(), en)
				e.clause(ns, nr, er.Not(), en)
				e.clause(ns, nr, rs.Not(), rn)
				e.clause(ns, nr, rr.Not(), rn)
				e.clause(ns, nr, es.Not(), er, rn)
				e.clause(ns, nr, es, er.Not(), rn)
			}
		}
	}
	e.boundRed(next)

	return next
}

// boundRed caps every vertex's red degree at k in layer s.
func (e *encoder) boundRed(s state) {
	if e.k >= e.n-1 {
		return
	}
	row := make([]z.Lit, 0, e.n-1)
	for i := 0; i < e.n; i++ {
		row = row[:0]
		for j := 0; j < e.n; j++ {
			if j != i {
				row = append(row, s.red[e.pair(i, j)])
			}
		}
		e.atMost(row, e.k)
	}
}

func (e *encoder) exactlyOne(xs []z.Lit) {
	e.clause(xs...)
	e.atMost(xs, 1)
}

// atMost is the Sinz sequential counter: aux[i][j] means "at least j+1 of
// xs[0..i] are true".
func (e *encoder) atMost(xs []z.Lit, k int) {
	n := len(xs)
	if k >= n {
		return
	}
	if k == 0 {
		for _, x := range xs {
			e.clause(x.Not())
		}

		return
	}
	aux := make([][]z.Lit, n-1)
	for i := range aux {
		aux[i] = e.lits(k)
	}
	e.clause(xs[0].Not(), aux[0][0])
	for j := 1; j < k; j++ {
		e.clause(aux[0][j].Not())
	}
	for i := 1; i < n-1; i++ {
		e.clause(xs[i].Not(), aux[i][0])
		e.clause(aux[i-1][0].Not(), aux[i][0])
		for j := 1; j < k; j++ {
			e.clause(xs[i].Not(), aux[i-1][j-1].Not(), aux[i][j])
			e.clause(aux[i-1][j].Not(), aux[i][j])
		}
		e.clause(xs[i].Not(), aux[i-1][k-1].Not())
	}
	e.clause(xs[n-1].Not(), aux[n-2][k-1].Not())
}

// encode builds the full instance for snap at threshold k. Snapshot ids are
// renumbered; movable vertices keep their relative order, so "survivor
// below removed" matches the search's own orientation.
func encode(snap trigraph.Snapshot, k int) *encoder {
	local := make(map[int]int, len(snap.Vertices))
	for i, v := range snap.Vertices {
		local[v] = i
	}
	movable := make([]bool, len(snap.Vertices))
	for i := range movable {
		movable[i] = true
	}
	for _, v := range snap.Frozen {
		movable[local[v]] = false
	}
	conv := func(es []core.Edge) [][2]int {
		out := make([][2]int, len(es))
		for i, ed := range es {
			out[i] = [2]int{local[ed.U], local[ed.V]}
		}

		return out
	}

	e := newEncoder(len(snap.Vertices), k, movable)
	s := e.initial(conv(snap.Black), conv(snap.Red))
	for t := 1; t < countTrue(movable); t++ {
		s = e.step(s)
	}

	return e
}

func countTrue(bs []bool) int {
	c := 0
	for _, b := range bs {
		if b {
			c++
		}
	}

	return c
}
