// SPDX-License-Identifier: MIT
// Package: twinwidth/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). P_1 is a single isolated vertex.
//   - Emits edges in stable order i—(i+1) for i=0..n-2 (block-relative ids).
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twinwidth/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that appends the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := appendBlock(g, n)

		return addEdges(g, methodPath, base, pathChords(n))
	}
}

// pathChords lists the n-1 path edges over 0..n-1.
func pathChords(n int) []chord {
	out := make([]chord, 0, n)
	for i := 0; i+1 < n; i++ {
		out = append(out, chord{U: i, V: i + 1})
	}

	return out
}
