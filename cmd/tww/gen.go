// SPDX-License-Identifier: MIT
//
// gen.go - "tww gen": write builder graphs in .gr format.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/twinwidth/builder"
	"github.com/katalvlaran/twinwidth/pace"
)

var namedGraphs = map[string]builder.NamedGraph{
	"chvatal":  builder.Chvatal,
	"durer":    builder.Durer,
	"petersen": builder.Petersen,
}

var platonicSolids = map[string]builder.PlatonicName{
	"tetrahedron":  builder.Tetrahedron,
	"cube":         builder.Cube,
	"octahedron":   builder.Octahedron,
	"dodecahedron": builder.Dodecahedron,
	"icosahedron":  builder.Icosahedron,
}

func newGenCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "gen kind [args...]",
		Short: "Generate a graph: path|cycle|complete|star|wheel N, grid|bipartite A B, random N P, named NAME, platonic NAME",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cons, err := constructor(args[0], args[1:])
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed), builder.WithName(strings.Join(args, " "))}, cons)
			if err != nil {
				return err
			}

			return pace.WriteGraph(cmd.OutOrStdout(), g, strings.Join(args, " "))
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}

func constructor(kind string, args []string) (builder.Constructor, error) {
	ints := func(want int) ([]int, error) {
		if len(args) != want {
			return nil, fmt.Errorf("gen %s: want %d arguments, got %d", kind, want, len(args))
		}
		out := make([]int, want)
		for i, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil {
				return nil, fmt.Errorf("gen %s: %q: %w", kind, a, err)
			}
			out[i] = v
		}

		return out, nil
	}

	switch kind {
	case "path", "cycle", "complete", "star", "wheel":
		v, err := ints(1)
		if err != nil {
			return nil, err
		}
		return map[string]func(int) builder.Constructor{
			"path": builder.Path, "cycle": builder.Cycle, "complete": builder.Complete,
			"star": builder.Star, "wheel": builder.Wheel,
		}[kind](v[0]), nil
	case "grid", "bipartite":
		v, err := ints(2)
		if err != nil {
			return nil, err
		}
		if kind == "grid" {
			return builder.Grid(v[0], v[1]), nil
		}
		return builder.CompleteBipartite(v[0], v[1]), nil
	case "random":
		if len(args) != 2 {
			return nil, fmt.Errorf("gen random: want N P")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("gen random: %q: %w", args[0], err)
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("gen random: %q: %w", args[1], err)
		}
		return builder.RandomSparse(n, p), nil
	case "named", "platonic":
		if len(args) != 1 {
			return nil, fmt.Errorf("gen %s: want NAME", kind)
		}
		name := strings.ToLower(args[0])
		if kind == "named" {
			if ng, ok := namedGraphs[name]; ok {
				return builder.Named(ng), nil
			}
		} else if ps, ok := platonicSolids[name]; ok {
			return builder.PlatonicSolid(ps), nil
		}
		return nil, fmt.Errorf("gen %s: unknown name %q", kind, args[0])
	default:
		return nil, fmt.Errorf("gen: unknown kind %q", kind)
	}
}
