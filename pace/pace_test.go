package pace_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twinwidth/builder"
	"github.com/katalvlaran/twinwidth/core"
	"github.com/katalvlaran/twinwidth/pace"
	"github.com/katalvlaran/twinwidth/trigraph"
)

func TestReadGraph(t *testing.T) {
	in := "c a path\n\np tww 4 3\n1 2\nc mid comment\n2 3\n3 4\n"
	g, err := pace.ReadGraph(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 4, g.Order())
	require.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}, g.Edges())
}

func TestReadGraph_Errors(t *testing.T) {
	cases := map[string]string{
		"no header":      "1 2\n",
		"empty":          "",
		"bad header":     "p td 3 1\n1 2\n",
		"second header":  "p tww 2 1\np tww 2 1\n1 2\n",
		"bad number":     "p tww 3 x\n",
		"zero id":        "p tww 3 1\n0 1\n",
		"out of range":   "p tww 3 1\n1 4\n",
		"self loop":      "p tww 3 1\n2 2\n",
		"duplicate":      "p tww 3 2\n1 2\n2 1\n",
		"count mismatch": "p tww 3 2\n1 2\n",
		"three fields":   "p tww 3 1\n1 2 3\n",
		"huge order":     "p tww 2000000000 0\n",
		"too many edges": "p tww 3 4\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := pace.ReadGraph(strings.NewReader(in))
			require.Error(t, err)
			require.True(t, errors.Is(err, pace.ErrBadFormat), "%v", err)
		})
	}
}

func TestGraphRoundTrip(t *testing.T) {
	g := builder.Must(builder.BuildGraph(nil, builder.Named(builder.Petersen)))
	var buf bytes.Buffer
	require.NoError(t, pace.WriteGraph(&buf, g, "petersen"))
	require.True(t, strings.HasPrefix(buf.String(), "c petersen\np tww 10 15\n"))

	back, err := pace.ReadGraph(&buf)
	require.NoError(t, err)
	require.Equal(t, g.Order(), back.Order())
	require.Equal(t, g.Edges(), back.Edges())
}

func TestSequence(t *testing.T) {
	seq := []trigraph.Pair{{Removed: 4, Survivor: 0}, {Removed: 3, Survivor: 1}}
	var buf bytes.Buffer
	require.NoError(t, pace.WriteSequence(&buf, seq))
	require.Equal(t, "1 5\n2 4\n", buf.String())

	back, err := pace.ReadSequence(strings.NewReader("c width 1\n" + buf.String()))
	require.NoError(t, err)
	require.Equal(t, seq, back)

	_, err = pace.ReadSequence(strings.NewReader("1 2\n3\n"))
	require.ErrorIs(t, err, pace.ErrBadFormat)
	require.Contains(t, err.Error(), "line 2")
}
