// SPDX-License-Identifier: MIT
// Package: twinwidth/builder
//
// variants_platonic.go - Platonic solid names and their edge generators.
//
// Platonic solids are vertex-transitive: every first merge of an adjacent
// pair has the same cost.
//
// Each solid is assembled from rings, spokes and rungs so the labelling
// stays readable: rings are consecutive id ranges.

package builder

// chord is a block-relative unordered vertex pair.
type chord struct {
	U, V int
}

// PlatonicName enumerates the five Platonic solids (canonical graph shells).
type PlatonicName int

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// platonicVertexCounts maps each PlatonicName to its vertex count.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicChords returns the block-relative edges of a solid.
func platonicChords(name PlatonicName) []chord {
	var out []chord
	switch name {
	case Tetrahedron:
		out = cliqueChords(4, nil)
	case Cube:
		// Faces 0-1-2-3 and 4-5-6-7, rungs i-(i+4).
		out = append(cycleChords(4, 0), cycleChords(4, 4)...)
		for i := 0; i < 4; i++ {
			out = append(out, chord{U: i, V: i + 4})
		}
	case Octahedron:
		// K6 minus the antipodal pairs 0-1, 2-3, 4-5.
		out = cliqueChords(6, func(u, v int) bool { return v == u+1 && u%2 == 0 })
	case Dodecahedron:
		// Pentagons 0..4 and 5..9 around the ring 10..19; the top pentagon
		// meets the even ring vertices, the bottom one the odd.
		out = append(cycleChords(5, 0), cycleChords(5, 5)...)
		out = append(out, cycleChords(10, 10)...)
		for i := 0; i < 5; i++ {
			out = append(out, chord{U: i, V: 10 + 2*i}, chord{U: 5 + i, V: 11 + 2*i})
		}
	case Icosahedron:
		// Pole 0 over ring 1..5, ring 6..10 over pole 11; ring vertex i
		// meets 5+i and the next one below.
		out = append(spokeChords(0, 1, 5), cycleChords(5, 1)...)
		out = append(out, cycleChords(5, 6)...)
		out = append(out, spokeChords(11, 6, 5)...)
		for i := 1; i <= 5; i++ {
			out = append(out, chord{U: i, V: 5 + i}, chord{U: i, V: 6 + i%5})
		}
	}

	return out
}

// cliqueChords lists every pair of 0..n-1 except those skip rejects.
func cliqueChords(n int, skip func(u, v int) bool) []chord {
	out := make([]chord, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if skip == nil || !skip(u, v) {
				out = append(out, chord{U: u, V: v})
			}
		}
	}

	return out
}
