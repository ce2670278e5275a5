package exact

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twinwidth/core"
	"github.com/katalvlaran/twinwidth/trigraph"
)

func p4(t *testing.T) *trigraph.TriGraph {
	t.Helper()
	g, err := trigraph.New(4, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}})
	require.NoError(t, err)
	require.NoError(t, g.ComputeAllPairsSymmetricDifferences())
	require.NoError(t, g.ComputeGreedyCriteria())

	return g
}

func TestRankCandidates_ByCost(t *testing.T) {
	g := p4(t)
	all, truncated := rankCandidates(g, ByCost, Unbounded, 0)
	require.False(t, truncated)
	require.Equal(t, []trigraph.Pair{
		{Removed: 1, Survivor: 0}, {Removed: 2, Survivor: 0},
		{Removed: 3, Survivor: 1}, {Removed: 3, Survivor: 2},
		{Removed: 3, Survivor: 0}, {Removed: 2, Survivor: 1},
	}, all)

	below, _ := rankCandidates(g, ByCost, 2, 0)
	require.Equal(t, all[:4], below, "cost filter keeps cost < upper")

	top, truncated := rankCandidates(g, ByCost, Unbounded, 2)
	require.True(t, truncated)
	require.Equal(t, all[:2], top)

	none, _ := rankCandidates(g, ByCost, 1, 0)
	require.Empty(t, none)
}

func TestRankCandidates_FrozenExcluded(t *testing.T) {
	g := p4(t)
	require.NoError(t, g.Freeze(0))
	got, _ := rankCandidates(g, ByCost, Unbounded, 0)
	require.Equal(t, []trigraph.Pair{
		{Removed: 3, Survivor: 1}, {Removed: 3, Survivor: 2}, {Removed: 2, Survivor: 1},
	}, got)
}

// TestRankCandidates_Strategies: every strategy ranks the same candidate set,
// each pair exactly once.
func TestRankCandidates_Strategies(t *testing.T) {
	g := p4(t)
	_, err := g.Contract(2, 0)
	require.NoError(t, err)
	// Active 0,1,3: 0-1 black, 0-3 red.
	require.Equal(t, 1, g.Criteria(1, 3))
	require.Equal(t, 1, g.Criteria(0, 1))

	byCost, _ := rankCandidates(g, ByCost, Unbounded, 0)
	byCarried, _ := rankCandidates(g, ByCarriedRed, Unbounded, 0)
	byNew, _ := rankCandidates(g, ByNewRed, Unbounded, 0)
	require.Len(t, byCost, 3)
	require.ElementsMatch(t, byCost, byCarried)
	require.ElementsMatch(t, byCost, byNew)

	for _, list := range [][]trigraph.Pair{byCost, byCarried, byNew} {
		for i := 1; i < len(list); i++ {
			require.NotEqual(t, list[i-1], list[i])
		}
	}
}

func TestCompareCandidates_TieBreak(t *testing.T) {
	a := candidateKey{score: 1, cost: 2, survivor: 0, removed: 5}
	b := candidateKey{score: 1, cost: 2, survivor: 0, removed: 6}
	c := candidateKey{score: 1, cost: 3, survivor: 0, removed: 1}
	d := candidateKey{score: 0, cost: 9, survivor: 9, removed: 10}
	require.Negative(t, compareCandidates(a, b))
	require.Negative(t, compareCandidates(b, c))
	require.Negative(t, compareCandidates(d, a))
	require.Zero(t, compareCandidates(a, a))
}

func TestStrategyScore(t *testing.T) {
	require.Equal(t, 4, ByCost.score(4, 3))
	require.Equal(t, 1, ByNewRed.score(4, 3))
	require.Equal(t, 3, ByCarriedRed.score(4, 3))
}

func TestTranspositionTable(t *testing.T) {
	require.Nil(t, newTranspositionTable(0))

	tt := newTranspositionTable(2)
	require.True(t, tt.visit("a", 3))
	require.False(t, tt.visit("a", 3), "no better than the first visit")
	require.False(t, tt.visit("a", 4))
	require.True(t, tt.visit("a", 2), "strictly better running width")
	require.False(t, tt.visit("a", 2))
	require.EqualValues(t, 3, tt.hits)

	require.True(t, tt.visit("b", 1))
	require.True(t, tt.visit("c", 1))
	require.Equal(t, 2, tt.size(), "full table admits no new keys")
	require.True(t, tt.visit("c", 1))
}
