// SPDX-License-Identifier: MIT
//
// batch.go - "tww batch": solve many .gr files and check each width
// against an expected value.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/twinwidth/exact"
	"github.com/katalvlaran/twinwidth/pace"
	"github.com/katalvlaran/twinwidth/trigraph"
)

type batchOutcome struct {
	name     string
	expected int // -1 when unknown
	width    int
	err      error
}

func (o batchOutcome) String() string {
	switch {
	case o.err != nil:
		return fmt.Sprintf("%s: ERROR %v", o.name, o.err)
	case o.expected < 0:
		return fmt.Sprintf("%s: SKIPPED no expected width (actual=%d)", o.name, o.width)
	case o.expected != o.width:
		return fmt.Sprintf("%s: FAILED (expected=%d, actual=%d)", o.name, o.expected, o.width)
	default:
		return fmt.Sprintf("%s: OK (expected=%d, actual=%d)", o.name, o.expected, o.width)
	}
}

func (o batchOutcome) failed() bool {
	return o.err != nil || o.expected >= 0 && o.expected != o.width
}

func newBatchCmd() *cobra.Command {
	var (
		expect    int
		jobs      int
		timeLimit time.Duration
	)
	cmd := &cobra.Command{
		Use:   "batch path...",
		Short: "Solve .gr files (or directories of them) and check their widths",
		Long: "batch solves every input, replays the sequence it found and compares the width\n" +
			"with --expect or, when unset, with the tww<k> token of the file name\n" +
			"(for example grid_tww3_6x6.gr).",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := collectGraphs(args)
			if err != nil {
				return err
			}
			if jobs <= 0 {
				jobs = runtime.NumCPU()
			}
			opts := exact.DefaultOptions()
			opts.TimeLimit = timeLimit

			outcomes := make([]batchOutcome, len(paths))
			grp, ctx := errgroup.WithContext(cmd.Context())
			grp.SetLimit(jobs)
			for i, path := range paths {
				grp.Go(func() error {
					o := batchOutcome{name: filepath.Base(path), expected: expect}
					if !cmd.Flags().Changed("expect") {
						o.expected = expectedWidth(path)
					}
					o.width, o.err = solveFile(ctx, path, opts)
					outcomes[i] = o

					return nil
				})
			}
			_ = grp.Wait()

			failed := 0
			for i, o := range outcomes {
				fmt.Fprintf(cmd.OutOrStdout(), "(%d/%d) %s\n", i+1, len(outcomes), o)
				if o.failed() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d instances failed", failed, len(outcomes))
			}

			return nil
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&expect, "expect", -1, "expected width for every input (default: from the file name)")
	fl.IntVarP(&jobs, "jobs", "j", 0, "instances solved in parallel, 0 for NumCPU")
	fl.DurationVarP(&timeLimit, "time-limit", "t", 0, "per-instance budget, 0 for none")

	return cmd
}

// collectGraphs expands directories into their .gr files, in name order.
func collectGraphs(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, arg)

			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.gr"))
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no .gr files found")
	}

	return out, nil
}

// expectedWidth reads k from an underscore-separated "tww<k>" token of the
// file name, or returns -1.
func expectedWidth(path string) int {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, tok := range strings.Split(base, "_") {
		if len(tok) > 3 && strings.EqualFold(tok[:3], "tww") {
			if k, err := strconv.Atoi(tok[3:]); err == nil && k >= 0 {
				return k
			}
		}
	}

	return -1
}

// solveFile solves one instance and returns the replayed width.
func solveFile(ctx context.Context, path string, opts exact.Options) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	g, err := pace.ReadGraph(f)
	if err != nil {
		return 0, err
	}
	res, err := exact.Solve(ctx, g, opts, 0)
	if err != nil {
		return 0, err
	}
	if res.Width == exact.Unbounded {
		return 0, fmt.Errorf("no sequence within the time limit")
	}
	w, err := trigraph.VerifySequence(g, res.Sequence)
	if err != nil {
		return 0, err
	}
	if !res.Proven {
		return w, fmt.Errorf("width %d not proven optimal", w)
	}

	return w, nil
}
