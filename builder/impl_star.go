// SPDX-License-Identifier: MIT
// Package: twinwidth/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices): block-relative vertex 0 is the centre,
//     1..n-1 are leaves.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/twinwidth/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		base := appendBlock(g, n)

		return addEdges(g, methodStar, base, spokeChords(0, 1, n-1))
	}
}

// spokeChords connects hub to count consecutive vertices starting at first.
func spokeChords(hub, first, count int) []chord {
	out := make([]chord, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, chord{U: hub, V: first + i})
	}

	return out
}
