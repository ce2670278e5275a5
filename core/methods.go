// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex/edge mutation and read-only queries on Graph.
// Determinism:
//   - Neighbors() and Edges() return sorted results.
// Concurrency:
//   - Mutations take the write lock; queries take the read lock.

package core

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Name returns the label set via WithName (may be empty).
func (g *Graph) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.name
}

// Order returns the number of vertices n.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// Size returns the number of edges m.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.m
}

// AddVertex appends a fresh isolated vertex and returns its id (the old n).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.n
	g.adj = append(g.adj, make(map[int]struct{}))
	g.n++

	return id
}

// AddEdge inserts the undirected edge {u, v}.
//
// Errors:
//   - ErrVertexOutOfRange if u or v is outside [0, n).
//   - ErrLoopNotAllowed if u == v.
//   - ErrMultiEdgeNotAllowed if the edge already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("AddEdge(%d,%d) with n=%d: %w", u, v, g.n, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if _, ok := g.adj[u][v]; ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.m++

	return nil
}

// HasEdge reports whether {u, v} is an edge. Out-of-range ids yield false.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Degree returns the number of neighbours of v (0 for out-of-range ids).
func (g *Graph) Degree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= g.n {
		return 0
	}

	return len(g.adj[v])
}

// Neighbors returns the neighbours of v in ascending order.
// Complexity: O(d log d).
func (g *Graph) Neighbors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= g.n {
		return nil
	}
	out := maps.Keys(g.adj[v])
	slices.Sort(out)

	return out
}

// Edges returns all edges with U < V, sorted by (U, V).
// Complexity: O(n + m log m).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.m)
	for u := 0; u < g.n; u++ {
		for v := range g.adj[u] {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if a.U != b.U {
			return a.U - b.U
		}

		return a.V - b.V
	})

	return out
}

// Clone returns a deep copy of g.
// Complexity: O(n + m).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{name: g.name, n: g.n, m: g.m, adj: make([]map[int]struct{}, g.n)}
	for i, nb := range g.adj {
		c.adj[i] = maps.Clone(nb)
	}

	return c
}
