// SPDX-License-Identifier: MIT
// Package: twinwidth/builder
//
// variants_named.go - canonical data for small named graphs.
//
// Labellings:
//   - Chvatal:  the networkx chvatal_graph() labelling (12 vertices, 24 edges,
//     4-regular, triangle-free). Twin-width 3.
//   - Durer:    hexagon 0..5, spokes i—(i+6), triangles 6-8-10 and 7-9-11
//     (12 vertices, 18 edges, 3-regular). Twin-width 3.
//   - Petersen: outer cycle 0..4, spokes i—(i+5), inner pentagram
//     (10 vertices, 15 edges).

package builder

// NamedGraph enumerates the small named graphs supported by Named.
type NamedGraph int

// Enum values (stable ordering).
const (
	Chvatal NamedGraph = iota
	Durer
	Petersen
)

// String returns the conventional (ASCII) name.
func (n NamedGraph) String() string {
	switch n {
	case Chvatal:
		return "Chvatal"
	case Durer:
		return "Durer"
	case Petersen:
		return "Petersen"
	default:
		return "Unknown"
	}
}

var namedVertexCounts = map[NamedGraph]int{
	Chvatal:  12,
	Durer:    12,
	Petersen: 10,
}

var namedEdgeSets = map[NamedGraph][]chord{
	Chvatal: {
		{U: 0, V: 1}, {U: 0, V: 4}, {U: 0, V: 6}, {U: 0, V: 9},
		{U: 1, V: 2}, {U: 1, V: 5}, {U: 1, V: 7},
		{U: 2, V: 3}, {U: 2, V: 6}, {U: 2, V: 8},
		{U: 3, V: 4}, {U: 3, V: 7}, {U: 3, V: 9},
		{U: 4, V: 5}, {U: 4, V: 8},
		{U: 5, V: 10}, {U: 5, V: 11},
		{U: 6, V: 10}, {U: 6, V: 11},
		{U: 7, V: 8}, {U: 7, V: 11},
		{U: 8, V: 10},
		{U: 9, V: 10}, {U: 9, V: 11},
	},
	Durer: {
		// hexagon
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}, {U: 0, V: 5},
		// spokes
		{U: 0, V: 6}, {U: 1, V: 7}, {U: 2, V: 8}, {U: 3, V: 9}, {U: 4, V: 10}, {U: 5, V: 11},
		// inner triangles
		{U: 6, V: 8}, {U: 6, V: 10}, {U: 8, V: 10},
		{U: 7, V: 9}, {U: 7, V: 11}, {U: 9, V: 11},
	},
	Petersen: {
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 0, V: 4},
		{U: 0, V: 5}, {U: 1, V: 6}, {U: 2, V: 7}, {U: 3, V: 8}, {U: 4, V: 9},
		{U: 5, V: 7}, {U: 7, V: 9}, {U: 6, V: 9}, {U: 6, V: 8}, {U: 5, V: 8},
	},
}
