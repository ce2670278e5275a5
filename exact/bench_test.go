// Benchmarks for the exact solvers on small named graphs. Inputs are built
// outside the timer; every iteration searches a fresh trigraph.
package exact_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/twinwidth/builder"
	"github.com/katalvlaran/twinwidth/core"
	"github.com/katalvlaran/twinwidth/exact"
	"github.com/katalvlaran/twinwidth/trigraph"
)

func benchBranch(b *testing.B, g *core.Graph, opts exact.Options) {
	b.Helper()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tri, err := trigraph.FromCore(g)
		if err != nil {
			b.Fatal(err)
		}
		solver, err := exact.NewBranchSolver(tri, nil, opts)
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		if _, err := solver.Run(context.Background(), 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBranch_Chvatal(b *testing.B) {
	benchBranch(b, build(builder.Named(builder.Chvatal)), exact.DefaultOptions())
}

func BenchmarkBranch_Chvatal_NoTable(b *testing.B) {
	opts := exact.DefaultOptions()
	opts.TableLimit = 0
	benchBranch(b, build(builder.Named(builder.Chvatal)), opts)
}

func BenchmarkBranch_Petersen_NewRed(b *testing.B) {
	opts := exact.DefaultOptions()
	opts.Strategy = exact.ByNewRed
	benchBranch(b, build(builder.Named(builder.Petersen)), opts)
}

func BenchmarkGreedy_Grid8(b *testing.B) {
	tri, err := trigraph.FromCore(build(builder.Grid(8, 8)))
	if err != nil {
		b.Fatal(err)
	}
	if err := tri.ComputeAllPairsSymmetricDifferences(); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := exact.GreedySequence(tri, exact.ByCost); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPortfolio_Durer(b *testing.B) {
	g := build(builder.Named(builder.Durer))
	for i := 0; i < b.N; i++ {
		tri, err := trigraph.FromCore(g)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := exact.Portfolio(context.Background(), tri, nil, exact.DefaultOptions(), 3, 0); err != nil {
			b.Fatal(err)
		}
	}
}
