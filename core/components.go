// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connected-component decomposition via gonum.

package core

import (
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ToGonum exports g as a gonum simple.UndirectedGraph whose node ids equal
// the core vertex ids. Isolated vertices are kept.
// Complexity: O(n + m).
func (g *Graph) ToGonum() *simple.UndirectedGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ug := simple.NewUndirectedGraph()
	for v := 0; v < g.n; v++ {
		ug.AddNode(simple.Node(v))
	}
	for u := 0; u < g.n; u++ {
		for v := range g.adj[u] {
			if u < v {
				ug.SetEdge(ug.NewEdge(simple.Node(u), simple.Node(v)))
			}
		}
	}

	return ug
}

// Components returns the connected components of g. Each component is
// sorted ascending and the list is ordered by each component's smallest id.
// Complexity: O(n log n + m).
func (g *Graph) Components() [][]int {
	cc := topo.ConnectedComponents(g.ToGonum())
	out := make([][]int, 0, len(cc))
	for _, comp := range cc {
		ids := make([]int, 0, len(comp))
		for _, node := range comp {
			ids = append(ids, int(node.ID()))
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })

	return out
}

// Degeneracy returns the degeneracy k of g and a smallest-last elimination
// order: every vertex has at most k neighbours after it in the order.
// Complexity: O(n + m).
func (g *Graph) Degeneracy() (int, []int) {
	if g.Order() == 0 {
		return 0, nil
	}
	// gonum lists the last eliminated vertex first.
	nodes, cores := topo.DegeneracyOrdering(g.ToGonum())
	order := make([]int, len(nodes))
	for i, node := range nodes {
		order[len(nodes)-1-i] = int(node.ID())
	}

	return len(cores) - 1, order
}
