// SPDX-License-Identifier: MIT
// Package: twinwidth/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the path edges 0—1—...—(n-1) and then the closing edge (n-1)—0.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twinwidth/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := appendBlock(g, n)

		return addEdges(g, methodCycle, base, cycleChords(n, 0))
	}
}

// cycleChords lists the ring edges over offset..offset+n-1.
func cycleChords(n, offset int) []chord {
	out := make([]chord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, chord{U: offset + i, V: offset + (i+1)%n})
	}

	return out
}
