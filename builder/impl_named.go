// SPDX-License-Identifier: MIT
// Package: twinwidth/builder
//
// impl_named.go - implementation of Named(name) constructor.
//
// Contract:
//   - name ∈ {Chvatal, Durer, Petersen}; unknown → ErrOptionViolation.
//   - Vertex labelling follows variants_named.go.
//
// Complexity: O(V+E), V ≤ 12.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twinwidth/core"
)

const methodNamed = "Named"

// Named returns a Constructor that appends one of the small named graphs.
func Named(name NamedGraph) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n, ok := namedVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown graph %q: %w", methodNamed, name, ErrOptionViolation)
		}
		base := appendBlock(g, n)

		return addEdges(g, methodNamed, base, namedEdgeSets[name])
	}
}
