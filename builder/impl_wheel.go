// SPDX-License-Identifier: MIT
// Package: twinwidth/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition: W_n = C_{n-1} + hub, so n ≥ 4.
// The ring occupies block ids 0..n-2 and the hub is n-1.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twinwidth/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that appends the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		base := appendBlock(g, n)
		list := append(cycleChords(n-1, 0), spokeChords(n-1, 0, n-1)...)

		return addEdges(g, methodWheel, base, list)
	}
}
