// SPDX-License-Identifier: MIT
// Package: twinwidth/pace
//
// sequence.go - contraction sequence reader and writer.

package pace

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/twinwidth/trigraph"
)

// WriteSequence writes one "survivor removed" line per step, 1-based.
func WriteSequence(w io.Writer, seq []trigraph.Pair) error {
	bw := bufio.NewWriter(w)
	for _, p := range seq {
		fmt.Fprintf(bw, "%d %d\n", p.Survivor+1, p.Removed+1)
	}

	return errors.Wrap(bw.Flush(), "pace: write sequence")
}

// ReadSequence parses a solution stream written by WriteSequence. It checks
// the syntax only; use trigraph.VerifySequence to check it against a graph.
func ReadSequence(r io.Reader) ([]trigraph.Pair, error) {
	sc := bufio.NewScanner(r)
	var (
		seq  []trigraph.Pair
		line int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] == "c" {
			continue
		}
		s, rm, err := pair(fields, line)
		if err != nil {
			return nil, err
		}
		seq = append(seq, trigraph.Pair{Removed: rm - 1, Survivor: s - 1})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "pace: read sequence")
	}

	return seq, nil
}
