// SPDX-License-Identifier: MIT
// Package: twinwidth/trigraph
//
// adjacency.go - the two row-set variants behind black and red edges.
//
// Rows are directed; TriGraph keeps the relation symmetric. each() visits
// neighbours in ascending order for both variants so that every traversal
// (and therefore every search) is deterministic.

package trigraph

import (
	"slices"

	"github.com/soniakeys/bits"
	"golang.org/x/exp/maps"
)

// adjacency is the capability set TriGraph needs from a neighbour store.
type adjacency interface {
	has(u, v int) bool
	add(u, v int)
	remove(u, v int)
	// each calls fn for every neighbour of u in ascending order until fn
	// returns false; it reports whether the walk completed.
	each(u int, fn func(v int) bool) bool
	clone() adjacency
}

func newAdjacency(s Storage, n int) adjacency {
	if s == Sparse {
		return newSparseRows(n)
	}

	return newDenseRows(n)
}

// denseRows keeps one bitset of width n per vertex.
type denseRows []bits.Bits

func newDenseRows(n int) denseRows {
	rows := make(denseRows, n)
	for i := range rows {
		rows[i] = bits.New(n)
	}

	return rows
}

func (d denseRows) has(u, v int) bool { return d[u].Bit(v) == 1 }
func (d denseRows) add(u, v int)      { d[u].SetBit(v, 1) }
func (d denseRows) remove(u, v int)   { d[u].SetBit(v, 0) }

func (d denseRows) each(u int, fn func(v int) bool) bool {
	return d[u].IterateOnes(fn)
}

func (d denseRows) clone() adjacency {
	c := make(denseRows, len(d))
	for i := range d {
		c[i] = bits.New(d[i].Num)
		c[i].Set(d[i])
	}

	return c
}

// sparseRows keeps one hash set per vertex.
type sparseRows []map[int]struct{}

func newSparseRows(n int) sparseRows {
	rows := make(sparseRows, n)
	for i := range rows {
		rows[i] = make(map[int]struct{})
	}

	return rows
}

func (s sparseRows) has(u, v int) bool {
	_, ok := s[u][v]

	return ok
}

func (s sparseRows) add(u, v int)    { s[u][v] = struct{}{} }
func (s sparseRows) remove(u, v int) { delete(s[u], v) }

func (s sparseRows) each(u int, fn func(v int) bool) bool {
	keys := maps.Keys(s[u])
	slices.Sort(keys)
	for _, v := range keys {
		if !fn(v) {
			return false
		}
	}

	return true
}

func (s sparseRows) clone() adjacency {
	c := make(sparseRows, len(s))
	for i, row := range s {
		c[i] = maps.Clone(row)
	}

	return c
}
