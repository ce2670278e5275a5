// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph construction and query contracts.

package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twinwidth/core"
)

func TestFromEdges_RejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges []core.Edge
		want  error
	}{
		{"negative order", -1, nil, core.ErrNegativeOrder},
		{"out of range", 3, []core.Edge{{0, 3}}, core.ErrVertexOutOfRange},
		{"negative id", 3, []core.Edge{{-1, 0}}, core.ErrVertexOutOfRange},
		{"self loop", 3, []core.Edge{{1, 1}}, core.ErrLoopNotAllowed},
		{"duplicate", 3, []core.Edge{{0, 1}, {1, 0}}, core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.FromEdges(tc.n, tc.edges)
			require.Nil(t, g)
			require.ErrorIs(t, err, tc.want)
			require.True(t, errors.Is(err, core.ErrInvalidInput), "every construction error is InvalidInput")
		})
	}
}

func TestGraph_Queries(t *testing.T) {
	g, err := core.FromEdges(5, []core.Edge{{3, 1}, {0, 1}, {1, 2}}, core.WithName("claw"))
	require.NoError(t, err)

	require.Equal(t, "claw", g.Name())
	require.Equal(t, 5, g.Order())
	require.Equal(t, 3, g.Size())
	require.True(t, g.HasEdge(1, 3))
	require.True(t, g.HasEdge(3, 1))
	require.False(t, g.HasEdge(0, 2))
	require.False(t, g.HasEdge(0, 9))
	require.Equal(t, []int{0, 2, 3}, g.Neighbors(1))
	require.Equal(t, 3, g.Degree(1))
	require.Equal(t, 0, g.Degree(4))
	require.Equal(t, []core.Edge{{0, 1}, {1, 2}, {1, 3}}, g.Edges())
}

func TestGraph_AddVertexAndClone(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1))

	id := g.AddVertex()
	require.Equal(t, 2, id)
	require.NoError(t, g.AddEdge(1, id))

	c := g.Clone()
	require.NoError(t, c.AddEdge(0, 2))
	require.False(t, g.HasEdge(0, 2), "clone must not alias the source")
	require.Equal(t, g.Size()+1, c.Size())
}

func TestGraph_Components(t *testing.T) {
	// Two paths and an isolated vertex.
	g, err := core.FromEdges(7, []core.Edge{{0, 4}, {4, 5}, {1, 2}, {2, 6}})
	require.NoError(t, err)

	require.Equal(t, [][]int{{0, 4, 5}, {1, 2, 6}, {3}}, g.Components())
	require.Empty(t, core.NewGraph(0).Components())
}

func TestGraph_Degeneracy(t *testing.T) {
	cycle := []core.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4}}
	k4 := []core.Edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	cases := []struct {
		name  string
		n     int
		edges []core.Edge
		want  int
	}{
		{"edgeless", 3, nil, 0},
		{"star", 5, []core.Edge{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, 1},
		{"cycle", 5, cycle, 2},
		{"K4 plus pendant", 5, append(k4, core.Edge{U: 3, V: 4}), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.FromEdges(tc.n, tc.edges)
			require.NoError(t, err)
			k, order := g.Degeneracy()
			require.Equal(t, tc.want, k)
			require.ElementsMatch(t, []int{0, 1, 2, 3, 4}[:tc.n], order)

			pos := make(map[int]int, len(order))
			for i, v := range order {
				pos[v] = i
			}
			for _, v := range order {
				later := 0
				for _, u := range g.Neighbors(v) {
					if pos[u] > pos[v] {
						later++
					}
				}
				require.LessOrEqual(t, later, k, "vertex %d", v)
			}
		})
	}

	k, order := core.NewGraph(0).Degeneracy()
	require.Zero(t, k)
	require.Empty(t, order)
}

func TestGraph_ConcurrentReads(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_ = g.Neighbors(2)
			_ = g.Components()
		}()
	}
	wg.Wait()
}
