// SPDX-License-Identifier: MIT
// Package: twinwidth/trigraph
//
// pairs.go - symmetric per-pair integer tables for the Cost Cache and the
// Greedy Criteria. Dense storage is a flat n×n upper triangle, sparse
// storage a map keyed by the packed pair.

package trigraph

import "golang.org/x/exp/maps"

type pairTable interface {
	get(u, v int) int
	set(u, v, x int)
	clone() pairTable
}

func newPairTable(s Storage, n int) pairTable {
	if s == Sparse {
		return sparsePairs{}
	}

	return &densePairs{n: n, cells: make([]int32, n*n)}
}

func ordered(u, v int) (int, int) {
	if u > v {
		return v, u
	}

	return u, v
}

type densePairs struct {
	n     int
	cells []int32
}

func (d *densePairs) get(u, v int) int {
	u, v = ordered(u, v)

	return int(d.cells[u*d.n+v])
}

func (d *densePairs) set(u, v, x int) {
	u, v = ordered(u, v)
	d.cells[u*d.n+v] = int32(x)
}

func (d *densePairs) clone() pairTable {
	return &densePairs{n: d.n, cells: append([]int32(nil), d.cells...)}
}

type sparsePairs map[uint64]int32

func pairKey(u, v int) uint64 {
	u, v = ordered(u, v)

	return uint64(u)<<32 | uint64(uint32(v))
}

func (s sparsePairs) get(u, v int) int { return int(s[pairKey(u, v)]) }

func (s sparsePairs) set(u, v, x int) {
	if x == 0 {
		delete(s, pairKey(u, v))

		return
	}
	s[pairKey(u, v)] = int32(x)
}

func (s sparsePairs) clone() pairTable { return sparsePairs(maps.Clone(s)) }
