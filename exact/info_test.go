package exact_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twinwidth/exact"
	"github.com/katalvlaran/twinwidth/trigraph"
)

func TestSolverInfo_Bounds(t *testing.T) {
	info := exact.NewSolverInfo()
	require.Equal(t, 0, info.LowerBound())
	require.Equal(t, exact.Unbounded, info.UpperBound())
	require.False(t, info.Bounded())

	info.MarkProven()
	require.False(t, info.Proven(), "nothing to prove without a sequence")

	// An unbounded upper does not cap the lower bound.
	require.True(t, info.UpdateLowerBound(5))
	require.False(t, info.HintOverestimated())
	seq := []trigraph.Pair{{Removed: 1, Survivor: 0}}
	require.True(t, info.UpdateUpperBound(seq, 3))
	lo, up := info.Bounds()
	require.Equal(t, 3, lo, "over-estimated lower bound is clamped")
	require.True(t, info.HintOverestimated())
	require.Equal(t, 3, up)
	require.True(t, info.Closed())

	require.False(t, info.UpdateUpperBound(nil, 3), "only strict improvements")
	require.False(t, info.UpdateLowerBound(7), "lower bound capped at upper")
	require.False(t, info.UpdateLowerBound(2), "lower bound never falls")
	require.Equal(t, seq, info.ContractionSequence())

	seq[0].Removed = 9
	require.Equal(t, 1, info.ContractionSequence()[0].Removed, "stored sequence is a copy")
	got := info.ContractionSequence()
	got[0].Removed = 7
	require.Equal(t, 1, info.ContractionSequence()[0].Removed)
}

func TestSolverInfo_MarkProven(t *testing.T) {
	info := exact.NewSolverInfo()
	info.UpdateUpperBound(nil, 4)
	info.UpdateLowerBound(2)
	info.MarkProven()
	require.True(t, info.Proven())
	lo, up := info.Bounds()
	require.Equal(t, 4, lo)
	require.Equal(t, 4, up)
	require.False(t, info.HintOverestimated(), "an admissible lower bound is never flagged")
}

func TestSolverInfo_Concurrent(t *testing.T) {
	info := exact.NewSolverInfo()
	var wg sync.WaitGroup
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 100; i >= 0; i-- {
				width := i + w
				info.UpdateUpperBound([]trigraph.Pair{{Removed: width, Survivor: 0}}, width)
				info.UpdateLowerBound(i / 4)
				lo, up := info.Bounds()
				if lo > up {
					t.Errorf("lower %d above upper %d", lo, up)
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 0, info.UpperBound())
	require.Equal(t, []trigraph.Pair{{Removed: 0, Survivor: 0}}, info.ContractionSequence())
	require.Equal(t, 0, info.LowerBound())
}

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, exact.DefaultOptions().Validate())
	require.NoError(t, exact.Options{}.Validate())

	bad := []func(*exact.Options){
		func(o *exact.Options) { o.TimeLimit = -1 },
		func(o *exact.Options) { o.BranchCap = -1 },
		func(o *exact.Options) { o.Strategy = exact.Strategy(7) },
		func(o *exact.Options) { o.OracleBudget = -1 },
		func(o *exact.Options) { o.OracleDepth = -1 },
		func(o *exact.Options) { o.TableLimit = -1 },
		func(o *exact.Options) { o.ProgressEvery = -1 },
	}
	for i, mut := range bad {
		o := exact.DefaultOptions()
		mut(&o)
		require.ErrorIs(t, o.Validate(), exact.ErrBadOptions, "case %d", i)
	}
}

func TestStrategy_Names(t *testing.T) {
	for i, s := range exact.Strategies {
		got, ok := exact.ParseStrategy(s.String())
		require.True(t, ok)
		require.Equal(t, s, got)
		require.Equal(t, s, exact.StrategyFor(i))
		require.Equal(t, s, exact.StrategyFor(i+len(exact.Strategies)))
	}
	_, ok := exact.ParseStrategy("fastest")
	require.False(t, ok)
	require.Equal(t, "unknown", exact.Strategy(42).String())
}
