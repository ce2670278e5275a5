// SPDX-License-Identifier: MIT
// Package: twinwidth/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name) constructor.
//
// Contract:
//   - name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   - Unknown name → ErrOptionViolation.
//   - Edges come from platonicChords in variants_platonic.go.
//
// Complexity: O(V+E) for the selected solid (V≤20, E≤30).

package builder

import (
	"fmt"

	"github.com/katalvlaran/twinwidth/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that appends the chosen Platonic shell.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		base := appendBlock(g, n)

		return addEdges(g, methodPlatonicSolid, base, platonicChords(name))
	}
}
