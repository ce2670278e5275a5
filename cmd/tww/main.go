// SPDX-License-Identifier: MIT
//
// Command tww computes exact twin-width contraction sequences.
//
//	tww gen named chvatal > chvatal.gr
//	tww solve chvatal.gr --workers 3 -o chvatal.sol
//	tww verify chvatal.gr chvatal.sol --expect 3
//	tww batch instances/ --jobs 4
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "tww:", err)
		os.Exit(1)
	}
}
