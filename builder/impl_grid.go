// SPDX-License-Identifier: MIT
// Package: twinwidth/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighbourhood.
//   - Cell (r,c) has block id r*cols + c (row-major).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - For each (r,c) in row-major order emit Right then Bottom if present.
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/twinwidth/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols grid graph.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := appendBlock(g, rows*cols)
		list := make([]chord, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					list = append(list, chord{U: id, V: id + 1})
				}
				if r+1 < rows {
					list = append(list, chord{U: id, V: id + cols})
				}
			}
		}

		return addEdges(g, methodGrid, base, list)
	}
}
