// SPDX-License-Identifier: MIT
// Package: twinwidth/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(a, b) constructor.
//
// Contract:
//   - a ≥ 1 and b ≥ 1 (else ErrTooFewVertices).
//   - Left side is block ids 0..a-1, right side a..a+b-1.
//   - Emits edges left-major (i asc, then j asc).
//
// Complexity: O(a+b) vertices + O(a*b) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twinwidth/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that appends K_{a,b}.
func CompleteBipartite(a, b int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if a < minPartitionSize || b < minPartitionSize {
			return fmt.Errorf("%s: a=%d, b=%d < min=%d: %w",
				methodCompleteBipartite, a, b, minPartitionSize, ErrTooFewVertices)
		}
		base := appendBlock(g, a+b)
		list := make([]chord, 0, a*b)
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				list = append(list, chord{U: i, V: a + j})
			}
		}

		return addEdges(g, methodCompleteBipartite, base, list)
	}
}
