package oracle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twinwidth/builder"
	"github.com/katalvlaran/twinwidth/core"
	"github.com/katalvlaran/twinwidth/exact"
	"github.com/katalvlaran/twinwidth/oracle"
	"github.com/katalvlaran/twinwidth/trigraph"
)

func snapshot(t *testing.T, cons ...builder.Constructor) trigraph.Snapshot {
	t.Helper()
	tri, err := trigraph.FromCore(builder.Must(builder.BuildGraph(nil, cons...)))
	require.NoError(t, err)

	return tri.Snapshot()
}

func TestSAT_Thresholds(t *testing.T) {
	cases := []struct {
		name string
		snap trigraph.Snapshot
		k    int
		want exact.Verdict
	}{
		{"P5/0", snapshot(t, builder.Path(5)), 0, exact.Unsatisfiable},
		{"P5/1", snapshot(t, builder.Path(5)), 1, exact.Satisfiable},
		{"K4/0", snapshot(t, builder.Complete(4)), 0, exact.Satisfiable},
		{"C5/1", snapshot(t, builder.Cycle(5)), 1, exact.Unsatisfiable},
		{"C5/2", snapshot(t, builder.Cycle(5)), 2, exact.Satisfiable},
		{"Star/0", snapshot(t, builder.Star(6)), 0, exact.Satisfiable},
		{"negative", snapshot(t, builder.Path(3)), -1, exact.Unsatisfiable},
		{"trivial", snapshot(t, builder.Complete(5)), 4, exact.Satisfiable},
	}
	sat := oracle.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := sat.Query(context.Background(), tc.snap, tc.k, 0)
			require.NoError(t, err)
			require.Equal(t, tc.want, v)
		})
	}
	require.EqualValues(t, len(cases), sat.Queries())
}

// TestSAT_AgreesWithSearch: the oracle threshold flips exactly at the width
// the branch-and-bound proves.
func TestSAT_AgreesWithSearch(t *testing.T) {
	graphs := []*core.Graph{
		builder.Must(builder.BuildGraph(nil, builder.Grid(2, 4))),
		builder.Must(builder.BuildGraph(nil, builder.Wheel(6))),
		builder.Must(builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(4)}, builder.RandomSparse(7, 0.45))),
	}
	sat := oracle.New()
	for i, g := range graphs {
		res, err := exact.Solve(context.Background(), g, exact.DefaultOptions(), 0)
		require.NoError(t, err)
		require.True(t, res.Proven)

		tri, err := trigraph.FromCore(g)
		require.NoError(t, err)
		snap := tri.Snapshot()
		if res.Width > 0 {
			v, err := sat.Query(context.Background(), snap, res.Width-1, 0)
			require.NoError(t, err)
			require.Equal(t, exact.Unsatisfiable, v, "graph %d below width %d", i, res.Width)
		}
		v, err := sat.Query(context.Background(), snap, res.Width, 0)
		require.NoError(t, err)
		require.Equal(t, exact.Satisfiable, v, "graph %d at width %d", i, res.Width)
	}
}

func TestSAT_RedEdgesAndFrozen(t *testing.T) {
	g, err := core.FromEdges(16, []core.Edge{{U: 13, V: 4}, {U: 4, V: 0}, {U: 4, V: 1}, {U: 4, V: 2}, {U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}, {U: 0, V: 3}})
	require.NoError(t, err)
	tri, err := trigraph.FromCore(g)
	require.NoError(t, err)
	for _, v := range []int{5, 6, 7, 8, 9, 10, 11, 12, 14, 15} {
		require.NoError(t, tri.RemoveVertex(v))
	}
	require.NoError(t, tri.MakeEdgeRed(13, 4))
	for v := 0; v < 4; v++ {
		require.NoError(t, tri.Freeze(v))
	}
	snap := tri.Snapshot()
	require.Equal(t, []int{0, 1, 2, 3}, snap.Frozen)

	sat := oracle.New()
	v, err := sat.Query(context.Background(), snap, 2, 0)
	require.NoError(t, err)
	require.Equal(t, exact.Unsatisfiable, v)
	v, err = sat.Query(context.Background(), snap, 3, 0)
	require.NoError(t, err)
	require.Equal(t, exact.Satisfiable, v)
	v, err = sat.Query(context.Background(), snap, 0, 0)
	require.NoError(t, err)
	require.Equal(t, exact.Unsatisfiable, v, "starting red degree already 1")
}

func TestSAT_LimitsAndCancellation(t *testing.T) {
	sat := oracle.New(oracle.WithMaxVertices(4))
	v, err := sat.Query(context.Background(), snapshot(t, builder.Cycle(6)), 1, 0)
	require.NoError(t, err)
	require.Equal(t, exact.Unknown, v)
	require.Zero(t, sat.Solved())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v, err = sat.Query(ctx, snapshot(t, builder.Path(4)), 1, time.Second)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, exact.Unknown, v)

	require.Panics(t, func() { oracle.WithMaxVertices(0) })
}

// TestSAT_InSearch: plugging the oracle into the solver keeps results exact.
func TestSAT_InSearch(t *testing.T) {
	g := builder.Must(builder.BuildGraph(nil, builder.Grid(3, 3)))
	plain, err := exact.Solve(context.Background(), g, exact.DefaultOptions(), 0)
	require.NoError(t, err)

	opts := exact.DefaultOptions()
	opts.Oracle = oracle.New()
	opts.OracleDepth = 1
	opts.OracleBudget = 500 * time.Millisecond
	withOracle, err := exact.Solve(context.Background(), g, opts, 0)
	require.NoError(t, err)
	require.True(t, withOracle.Proven)
	require.Equal(t, plain.Width, withOracle.Width)
}
