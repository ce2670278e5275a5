// SPDX-License-Identifier: MIT
// Package: twinwidth/trigraph
//
// types.go - value types shared with the solvers.

package trigraph

import "github.com/katalvlaran/twinwidth/core"

// Color is the colour of a trigraph edge. None means "no edge".
type Color uint8

const (
	None Color = iota
	Black
	Red
)

// String implements fmt.Stringer.
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	default:
		return "none"
	}
}

// Pair is one step of a contraction sequence: Removed disappears into Survivor.
type Pair struct {
	Removed  int
	Survivor int
}

// Token identifies a Contract frame on the journal. Width is the largest red
// degree found in the survivor's closed red neighbourhood right after the
// contraction; no other vertex gains red degree.
type Token struct {
	seq   int
	Width int
}

// Snapshot is a read-only copy of the active part of a trigraph, used by
// lower-bound oracles. Edge endpoints satisfy U < V; all slices are sorted.
type Snapshot struct {
	Vertices []int
	Black    []core.Edge
	Red      []core.Edge
	Frozen   []int
}
