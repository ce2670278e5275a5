package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestGenSolveVerify(t *testing.T) {
	dir := t.TempDir()
	gr, _, err := run(t, "", "gen", "named", "Chvatal")
	require.NoError(t, err)
	require.Contains(t, gr, "p tww 12 24")
	graphPath := filepath.Join(dir, "chvatal.gr")
	require.NoError(t, os.WriteFile(graphPath, []byte(gr), 0o600))

	solPath := filepath.Join(dir, "chvatal.sol")
	promPath := filepath.Join(dir, "tww.prom")
	_, logs, err := run(t, "", "solve", graphPath, "-o", solPath, "--metrics", promPath, "--log-level", "debug")
	require.NoError(t, err)
	require.Contains(t, logs, `"message":"solved"`)
	require.Contains(t, logs, `"width":3`)

	sol, err := os.ReadFile(solPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(sol), "c width 3 lower 3 proven true\n"))
	require.Len(t, strings.Split(strings.TrimSpace(string(sol)), "\n"), 12)

	prom, err := os.ReadFile(promPath)
	require.NoError(t, err)
	require.Contains(t, string(prom), "tww_proven 1")

	out, _, err := run(t, "", "verify", graphPath, solPath)
	require.NoError(t, err)
	require.Equal(t, "width 3\n", out)
}

func TestSolve_StdinPortfolio(t *testing.T) {
	gr, _, err := run(t, "", "gen", "path", "6")
	require.NoError(t, err)

	out, _, err := run(t, gr, "solve", "--workers", "2", "--strategy", "new-red", "--log-level", "warn")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "c width 1 lower 1 proven true\n"), out)
}

func TestSolve_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "tww.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("solver:\n  strategy: carried-red\noracle:\n  enabled: true\n  budget: 1s\nlog:\n  level: error\n"), 0o600))
	gr, _, err := run(t, "", "gen", "cycle", "5")
	require.NoError(t, err)

	out, logs, err := run(t, gr, "solve", "-c", cfgPath)
	require.NoError(t, err)
	require.Empty(t, logs)
	require.True(t, strings.HasPrefix(out, "c width 2 lower 2 proven true\n"), out)
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "", "gen", "hypercube", "3")
	require.Error(t, err)
	_, _, err = run(t, "", "gen", "grid", "3")
	require.Error(t, err)
	_, _, err = run(t, "", "gen", "named", "heawood")
	require.Error(t, err)
	_, _, err = run(t, "p tww 2 5\n1 2\n", "solve")
	require.Error(t, err)
	_, _, err = run(t, "", "solve", "--strategy", "fastest")
	require.Error(t, err)

	dir := t.TempDir()
	graphPath := filepath.Join(dir, "p3.gr")
	require.NoError(t, os.WriteFile(graphPath, []byte("p tww 3 2\n1 2\n2 3\n"), 0o600))
	_, _, err = run(t, "1 2\n", "verify", graphPath, "-")
	require.Error(t, err, "incomplete sequence")
}

func TestGenKinds(t *testing.T) {
	cases := [][]string{
		{"path", "4"}, {"cycle", "4"}, {"complete", "4"}, {"star", "4"}, {"wheel", "5"},
		{"grid", "2", "3"}, {"bipartite", "2", "3"}, {"random", "8", "0.5"},
		{"named", "petersen"}, {"platonic", "cube"},
	}
	for _, args := range cases {
		out, _, err := run(t, "", append([]string{"gen"}, args...)...)
		require.NoError(t, err, args)
		require.Contains(t, out, "p tww ")
	}
}

func writeGen(t *testing.T, path string, args ...string) {
	t.Helper()
	gr, _, err := run(t, "", append([]string{"gen"}, args...)...)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(gr), 0o600))
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	writeGen(t, filepath.Join(dir, "chvatal_tww3.gr"), "named", "chvatal")
	writeGen(t, filepath.Join(dir, "path_tww1_6.gr"), "path", "6")
	writeGen(t, filepath.Join(dir, "unlabelled.gr"), "complete", "4")

	out, _, err := run(t, "", "batch", dir, "--jobs", "2")
	require.NoError(t, err)
	require.Equal(t, "(1/3) chvatal_tww3.gr: OK (expected=3, actual=3)\n"+
		"(2/3) path_tww1_6.gr: OK (expected=1, actual=1)\n"+
		"(3/3) unlabelled.gr: SKIPPED no expected width (actual=0)\n", out)

	wrong := filepath.Join(dir, "cycle_tww9.gr")
	writeGen(t, wrong, "cycle", "5")
	out, _, err = run(t, "", "batch", wrong)
	require.Error(t, err)
	require.Contains(t, out, "FAILED (expected=9, actual=2)")

	out, _, err = run(t, "", "batch", wrong, "--expect", "2")
	require.NoError(t, err)
	require.Contains(t, out, "OK (expected=2, actual=2)")

	_, _, err = run(t, "", "batch", t.TempDir())
	require.Error(t, err, "empty directory")
}

func TestExpectedWidth(t *testing.T) {
	cases := map[string]int{
		"grid_tww3_6x6.gr":     3,
		"dir/TWW12_x.gr":       12,
		"plain.gr":             -1,
		"twwx_1.gr":            -1,
		"a_tww.gr":             -1,
		"tww0.gr":              0,
		"heuristic_tww2_a.txt": 2,
	}
	for name, want := range cases {
		require.Equal(t, want, expectedWidth(name), name)
	}
}

func TestVerify_Expect(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "p4.gr")
	writeGen(t, graphPath, "path", "4")

	out, _, err := run(t, "1 2\n1 3\n1 4\n", "verify", graphPath, "-", "--expect", "1")
	require.NoError(t, err)
	require.Equal(t, "width 1\n", out)

	_, _, err = run(t, "1 2\n1 3\n1 4\n", "verify", graphPath, "-", "--expect", "0")
	require.Error(t, err)
}

func TestInfo(t *testing.T) {
	gr, _, err := run(t, "", "gen", "named", "petersen")
	require.NoError(t, err)

	out, _, err := run(t, gr, "info")
	require.NoError(t, err)
	require.Equal(t, "n 10\nm 15\ncomponents 1\nmax-degree 3\ndegeneracy 3\n", out)
}

func TestSolve_Normalize(t *testing.T) {
	// Two components: the join between them is normalized too.
	gr := "p tww 5 3\n1 2\n2 3\n4 5\n"
	out, _, err := run(t, gr, "solve", "--normalize", "--log-level", "error")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines[1:] {
		var sur, rem int
		_, err := fmt.Sscanf(line, "%d %d", &sur, &rem)
		require.NoError(t, err)
		require.Less(t, sur, rem, line)
	}
}
