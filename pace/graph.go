// SPDX-License-Identifier: MIT
// Package: twinwidth/pace
//
// graph.go - .gr reader and writer.

package pace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/twinwidth/core"
)

// MaxOrder caps the vertex count a header may announce. Headers are checked
// before any storage is allocated.
const MaxOrder = 1 << 20

// ReadGraph parses a .gr stream. The header must precede every edge and
// the edge count must match it. Duplicate edges and self-loops are rejected,
// as are headers above MaxOrder vertices or more edges than n(n-1)/2.
func ReadGraph(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		g    *core.Graph
		want int
		got  int
		line int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] == "c" {
			continue
		}
		if fields[0] == "p" {
			if g != nil {
				return nil, errors.Wrapf(ErrBadFormat, "line %d: second header", line)
			}
			if len(fields) != 4 || fields[1] != "tww" {
				return nil, errors.Wrapf(ErrBadFormat, "line %d: want \"p tww n m\", got %q", line, sc.Text())
			}
			n, err := atoi(fields[2], line)
			if err != nil {
				return nil, err
			}
			if want, err = atoi(fields[3], line); err != nil {
				return nil, err
			}
			if n > MaxOrder {
				return nil, errors.Wrapf(ErrBadFormat, "line %d: %d vertices exceeds %d", line, n, MaxOrder)
			}
			if want > n*(n-1)/2 {
				return nil, errors.Wrapf(ErrBadFormat, "line %d: %d edges on %d vertices", line, want, n)
			}
			g = core.NewGraph(n)

			continue
		}
		if g == nil {
			return nil, errors.Wrapf(ErrBadFormat, "line %d: edge before header", line)
		}
		u, v, err := pair(fields, line)
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(u-1, v-1); err != nil {
			return nil, errors.Wrapf(ErrBadFormat, "line %d: %v", line, err)
		}
		got++
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "pace: read graph")
	}
	if g == nil {
		return nil, errors.Wrap(ErrBadFormat, "missing header")
	}
	if got != want {
		return nil, errors.Wrapf(ErrBadFormat, "header announces %d edges, found %d", want, got)
	}

	return g, nil
}

// WriteGraph writes g in .gr format. Each comment line is prefixed with "c ".
func WriteGraph(w io.Writer, g *core.Graph, comments ...string) error {
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		fmt.Fprintf(bw, "c %s\n", c)
	}
	fmt.Fprintf(bw, "p tww %d %d\n", g.Order(), g.Size())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e.U+1, e.V+1)
	}

	return errors.Wrap(bw.Flush(), "pace: write graph")
}

func atoi(s string, line int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, errors.Wrapf(ErrBadFormat, "line %d: bad number %q", line, s)
	}

	return v, nil
}

// pair parses a two-field line of positive ids.
func pair(fields []string, line int) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, errors.Wrapf(ErrBadFormat, "line %d: want two ids, got %d fields", line, len(fields))
	}
	u, err := atoi(fields[0], line)
	if err != nil {
		return 0, 0, err
	}
	v, err := atoi(fields[1], line)
	if err != nil {
		return 0, 0, err
	}
	if u == 0 || v == 0 {
		return 0, 0, errors.Wrapf(ErrBadFormat, "line %d: ids are 1-based", line)
	}

	return u, v, nil
}
