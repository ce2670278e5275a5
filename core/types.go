// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: declares Graph, Edge, GraphOption, the sentinel errors and the
// NewGraph constructor.
//
// Errors:
//
//	ErrInvalidInput         - umbrella class for every construction error below.
//	ErrNegativeOrder        - vertex count below zero.
//	ErrVertexOutOfRange     - edge endpoint outside [0, n).
//	ErrLoopNotAllowed       - self-loop (u == v).
//	ErrMultiEdgeNotAllowed  - the same unordered pair added twice.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidInput is the class every malformed-graph error belongs to.
// Callers that only care whether the input was rejected branch on it with errors.Is.
var ErrInvalidInput = errors.New("core: invalid input graph")

// Sentinel errors for core graph construction. Each wraps ErrInvalidInput.
var (
	// ErrNegativeOrder indicates NewGraph/FromEdges received n < 0.
	ErrNegativeOrder = fmt.Errorf("%w: negative vertex count", ErrInvalidInput)

	// ErrVertexOutOfRange indicates an endpoint outside [0, n).
	ErrVertexOutOfRange = fmt.Errorf("%w: vertex id out of range", ErrInvalidInput)

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = fmt.Errorf("%w: self-loop not allowed", ErrInvalidInput)

	// ErrMultiEdgeNotAllowed indicates a duplicate undirected edge.
	ErrMultiEdgeNotAllowed = fmt.Errorf("%w: duplicate edge not allowed", ErrInvalidInput)
)

// Edge is an unordered vertex pair. Canonical edges returned by Graph.Edges
// always satisfy U < V.
type Edge struct {
	U, V int
}

// Canon returns e with endpoints ordered so that U <= V.
func (e Edge) Canon() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithName attaches a human-readable label used in logs and reports.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// Graph is a simple undirected graph over vertex ids 0..n-1.
//
// mu guards every field below it; all exported methods are safe for
// concurrent use.
type Graph struct {
	mu sync.RWMutex

	name string
	n    int
	m    int

	// adj[u] is the neighbour set of u; the relation is kept symmetric.
	adj []map[int]struct{}
}

// NewGraph creates an edgeless Graph on n vertices.
// A negative n is clamped to zero; use FromEdges for validated construction.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{n: n, adj: make([]map[int]struct{}, n)}
	for i := range g.adj {
		g.adj[i] = make(map[int]struct{})
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromEdges builds a Graph from a vertex count and an edge list, rejecting
// out-of-range ids, self-loops and duplicates.
// Complexity: O(n + m).
func FromEdges(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("FromEdges: n=%d: %w", n, ErrNegativeOrder)
	}
	g := NewGraph(n, opts...)
	for i, e := range edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("FromEdges: edge #%d (%d,%d): %w", i, e.U, e.V, err)
		}
	}

	return g, nil
}
