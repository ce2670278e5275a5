// SPDX-License-Identifier: MIT
//
// solve.go - "tww solve".

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/twinwidth/core"
	"github.com/katalvlaran/twinwidth/exact"
	"github.com/katalvlaran/twinwidth/internal/config"
	"github.com/katalvlaran/twinwidth/internal/telemetry"
	"github.com/katalvlaran/twinwidth/pace"
	"github.com/katalvlaran/twinwidth/trigraph"
)

type solveFlags struct {
	config    string
	out       string
	timeLimit time.Duration
	workers   int
	strategy  string
	oracle    bool
	hint      int
	logLevel  string
	pretty    bool
	metrics   string
	normalize bool
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve [graph.gr]",
		Short: "Search for a minimum-width contraction sequence",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			return runSolve(cmd, f, path)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "YAML configuration file")
	fl.StringVarP(&f.out, "out", "o", "", "solution file (default stdout)")
	fl.DurationVarP(&f.timeLimit, "time-limit", "t", 0, "wall-clock budget, 0 for none")
	fl.IntVarP(&f.workers, "workers", "w", 1, "portfolio workers; 1 splits into components instead")
	fl.StringVar(&f.strategy, "strategy", exact.ByCost.String(), "candidate ranking: cost, new-red or carried-red")
	fl.BoolVar(&f.oracle, "oracle", false, "enable the SAT lower-bound oracle")
	fl.IntVar(&f.hint, "lower-hint", 0, "known lower bound")
	fl.StringVar(&f.logLevel, "log-level", "info", "zerolog level")
	fl.BoolVar(&f.pretty, "pretty", false, "human-readable logs")
	fl.StringVar(&f.metrics, "metrics", "", "write Prometheus metrics to this textfile")
	fl.BoolVar(&f.normalize, "normalize", false, "rename merges so every survivor is the smaller id")

	return cmd
}

// mergeFlags applies the flags the user set over cfg.
func mergeFlags(cmd *cobra.Command, f solveFlags, cfg *config.Config) {
	set := cmd.Flags().Changed
	if set("time-limit") {
		cfg.Solver.TimeLimit = f.timeLimit
	}
	if set("workers") {
		cfg.Solver.Workers = f.workers
	}
	if set("strategy") {
		cfg.Solver.Strategy = f.strategy
	}
	if set("oracle") {
		cfg.Oracle.Enabled = f.oracle
	}
	if set("lower-hint") {
		cfg.Solver.LowerHint = f.hint
	}
	if set("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if set("pretty") {
		cfg.Log.Pretty = f.pretty
	}
	if set("metrics") {
		cfg.Metrics.Textfile = f.metrics
	}
}

func runSolve(cmd *cobra.Command, f solveFlags, path string) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	mergeFlags(cmd, f, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := telemetry.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Pretty)
	if err != nil {
		return err
	}

	g, err := readGraph(cmd, path)
	if err != nil {
		return err
	}
	log.Info().Str("input", path).Int("n", g.Order()).Int("m", g.Size()).Msg("graph loaded")

	reg := prometheus.NewRegistry()
	metrics, err := telemetry.NewMetricsReporter(reg)
	if err != nil {
		return err
	}
	rep := exact.MultiReporter{telemetry.NewLogReporter(log, cfg.Log.ProgressInterval), metrics}
	res, err := solve(cmd.Context(), g, cfg, cfg.ExactOptions(rep))
	if err != nil {
		return err
	}
	logResult(log, res)

	if res.Width == exact.Unbounded {
		return fmt.Errorf("no contraction sequence found")
	}
	if f.normalize {
		if res.Sequence, err = trigraph.NormalizeSequence(res.Sequence); err != nil {
			return err
		}
	}
	if err := writeSolution(cmd, f.out, res); err != nil {
		return err
	}
	if cfg.Metrics.Textfile != "" {
		return telemetry.WriteTextfile(cfg.Metrics.Textfile, reg)
	}

	return nil
}

// solve runs a portfolio when more than one worker is requested and the
// component-splitting driver otherwise.
func solve(ctx context.Context, g *core.Graph, cfg config.Config, opts exact.Options) (exact.Result, error) {
	if cfg.Solver.Workers == 1 {
		return exact.Solve(ctx, g, opts, cfg.Solver.LowerHint)
	}
	tri, err := trigraph.FromCore(g)
	if err != nil {
		return exact.Result{}, err
	}

	return exact.Portfolio(ctx, tri, nil, opts, cfg.Solver.Workers, cfg.Solver.LowerHint)
}

func logResult(log zerolog.Logger, res exact.Result) {
	log.Info().
		Str("run", res.RunID.String()).
		Int("width", res.Width).
		Int("lower", res.Lower).
		Bool("proven", res.Proven).
		Bool("interrupted", res.Interrupted).
		Int64("nodes", res.Nodes).
		Int64("pruned", res.Pruned).
		Int64("table_hits", res.TableHits).
		Int64("truncated", res.Truncated).
		Dur("elapsed", res.Elapsed).
		Msg("solved")
	if res.HintOverestimated {
		log.Warn().Int("width", res.Width).Msg("lower-bound hint exceeds the width found; lower bound clamped")
	}
}

func writeSolution(cmd *cobra.Command, path string, res exact.Result) error {
	var w io.Writer = cmd.OutOrStdout()
	if path != "" && path != "-" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}
	fmt.Fprintf(w, "c width %d lower %d proven %t\n", res.Width, res.Lower, res.Proven)

	return pace.WriteSequence(w, res.Sequence)
}
