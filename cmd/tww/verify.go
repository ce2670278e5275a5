// SPDX-License-Identifier: MIT
//
// verify.go - "tww verify".

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/twinwidth/pace"
	"github.com/katalvlaran/twinwidth/trigraph"
)

func newVerifyCmd() *cobra.Command {
	var expect int
	cmd := &cobra.Command{
		Use:   "verify graph.gr solution",
		Short: "Replay a solution and print its width",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, args[0])
			if err != nil {
				return err
			}
			in, err := openInput(cmd, args[1])
			if err != nil {
				return err
			}
			defer in.Close()
			seq, err := pace.ReadSequence(in)
			if err != nil {
				return err
			}
			w, err := trigraph.VerifySequence(g, seq)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "width %d\n", w)
			if cmd.Flags().Changed("expect") && w != expect {
				return fmt.Errorf("width %d, expected %d", w, expect)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&expect, "expect", 0, "fail unless the solution has this width")

	return cmd
}
