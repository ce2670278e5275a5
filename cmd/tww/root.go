// SPDX-License-Identifier: MIT
//
// root.go - command tree and shared input helpers.

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/twinwidth/core"
	"github.com/katalvlaran/twinwidth/pace"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tww",
		Short:         "Exact twin-width solver",
		Long:          "tww reads PACE .gr graphs, searches for a minimum-width contraction sequence\nand writes it in the PACE solution format.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd(), newVerifyCmd(), newBatchCmd(), newInfoCmd(), newGenCmd())

	return root
}

// openInput returns stdin for "-" or an empty path.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	return os.Open(path)
}

func readGraph(cmd *cobra.Command, path string) (*core.Graph, error) {
	in, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	return pace.ReadGraph(in)
}
