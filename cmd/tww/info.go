// SPDX-License-Identifier: MIT
//
// info.go - "tww info": structural summary of a graph.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [graph.gr]",
		Short: "Print order, size, components, maximum degree and degeneracy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			g, err := readGraph(cmd, path)
			if err != nil {
				return err
			}
			maxDeg := 0
			for v := 0; v < g.Order(); v++ {
				maxDeg = max(maxDeg, g.Degree(v))
			}
			k, _ := g.Degeneracy()
			fmt.Fprintf(cmd.OutOrStdout(), "n %d\nm %d\ncomponents %d\nmax-degree %d\ndegeneracy %d\n",
				g.Order(), g.Size(), len(g.Components()), maxDeg, k)

			return nil
		},
	}
}
