package exact_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twinwidth/builder"
	"github.com/katalvlaran/twinwidth/core"
	"github.com/katalvlaran/twinwidth/exact"
	"github.com/katalvlaran/twinwidth/trigraph"
)

func TestSolve_DisjointUnion(t *testing.T) {
	// P5 (1) + C5 (2) + K4 (0) + an isolated vertex.
	g := build(builder.Path(5), builder.Cycle(5), builder.Complete(4))
	g.AddVertex()

	res, err := exact.Solve(context.Background(), g, exact.DefaultOptions(), 0)
	require.NoError(t, err)
	require.True(t, res.Proven)
	require.Equal(t, 2, res.Width)
	require.Equal(t, 2, res.Lower)
	require.Len(t, res.Sequence, g.Order()-1)
	w, err := trigraph.VerifySequence(g, res.Sequence)
	require.NoError(t, err)
	require.Equal(t, 2, w)
}

func TestSolve_HintAboveSmallComponents(t *testing.T) {
	// The hint is valid for the union but not for the path component.
	g := build(builder.Path(6), builder.Named(builder.Chvatal))

	res, err := exact.Solve(context.Background(), g, exact.DefaultOptions(), 3)
	require.NoError(t, err)
	require.True(t, res.Proven)
	require.Equal(t, 3, res.Width)
	require.Equal(t, 3, res.Lower)
	w, err := trigraph.VerifySequence(g, res.Sequence)
	require.NoError(t, err)
	require.Equal(t, 3, w)
}

func TestSolve_Trivial(t *testing.T) {
	res, err := exact.Solve(context.Background(), core.NewGraph(0), exact.DefaultOptions(), 0)
	require.NoError(t, err)
	require.True(t, res.Proven)
	require.Zero(t, res.Width)
	require.Empty(t, res.Sequence)

	g := core.NewGraph(4)
	res, err = exact.Solve(context.Background(), g, exact.DefaultOptions(), 0)
	require.NoError(t, err)
	require.True(t, res.Proven)
	require.Zero(t, res.Width)
	w, err := trigraph.VerifySequence(g, res.Sequence)
	require.NoError(t, err)
	require.Zero(t, w)
}

func TestSolve_WholeGraphWithFrozen(t *testing.T) {
	g := build(builder.Path(4), builder.Path(3))
	opts := exact.DefaultOptions()
	opts.Frozen = []int{0}

	res, err := exact.Solve(context.Background(), g, opts, 0)
	require.NoError(t, err)
	require.True(t, res.Proven)
	for _, p := range res.Sequence {
		require.NotEqual(t, 0, p.Removed)
	}
}

func TestSolve_TimeLimit(t *testing.T) {
	g := build(builder.Grid(6, 6), builder.Grid(6, 6))
	opts := exact.DefaultOptions()
	opts.TimeLimit = time.Nanosecond

	res, err := exact.Solve(context.Background(), g, opts, 0)
	require.NoError(t, err)
	require.False(t, res.Proven)
	require.True(t, res.Interrupted)
	require.NotEqual(t, exact.Unbounded, res.Width)
	w, err := trigraph.VerifySequence(g, res.Sequence)
	require.NoError(t, err)
	require.Equal(t, res.Width, w)
}

func TestSolve_Errors(t *testing.T) {
	_, err := exact.Solve(context.Background(), nil, exact.DefaultOptions(), 0)
	require.ErrorIs(t, err, exact.ErrNilGraph)

	opts := exact.DefaultOptions()
	opts.TableLimit = -1
	_, err = exact.Solve(context.Background(), core.NewGraph(2), opts, 0)
	require.ErrorIs(t, err, exact.ErrBadOptions)
}
