package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twinwidth/exact"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	opts := cfg.ExactOptions(nil)
	require.Equal(t, exact.DefaultOptions().Strategy, opts.Strategy)
	require.True(t, opts.SeedGreedy)
	require.Nil(t, opts.Oracle)
}

func TestLoad_FileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tww.yaml")
	body := `
solver:
  time_limit: 90s
  strategy: new-red
  workers: 3
oracle:
  enabled: true
  budget: 250ms
  depth: 2
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 90*time.Second, cfg.Solver.TimeLimit)
	require.Equal(t, 3, cfg.Solver.Workers)
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.Solver.SeedGreedy, "unset keys keep defaults")

	opts := cfg.ExactOptions(exact.NopReporter{})
	require.Equal(t, exact.ByNewRed, opts.Strategy)
	require.Equal(t, 250*time.Millisecond, opts.OracleBudget)
	require.Equal(t, 2, opts.OracleDepth)
	require.NotNil(t, opts.Oracle)
	require.NotNil(t, opts.Reporter)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("solver: [1, 2"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("solver:\n  strategy: fastest\n"), 0o600))
	_, err = Load(invalid)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TWW_TIME_LIMIT": "5s",
		"TWW_WORKERS":    "4",
		"TWW_STRATEGY":   "carried-red",
		"TWW_LOG_LEVEL":  "warn",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := Default()
	require.NoError(t, cfg.applyEnv(lookup))
	require.Equal(t, 5*time.Second, cfg.Solver.TimeLimit)
	require.Equal(t, 4, cfg.Solver.Workers)
	require.Equal(t, "carried-red", cfg.Solver.Strategy)
	require.Equal(t, "warn", cfg.Log.Level)

	env["TWW_WORKERS"] = "many"
	require.ErrorIs(t, cfg.applyEnv(lookup), ErrInvalid)
}

func TestValidate(t *testing.T) {
	muts := []func(*Config){
		func(c *Config) { c.Solver.Workers = -1 },
		func(c *Config) { c.Solver.LowerHint = -2 },
		func(c *Config) { c.Solver.BranchCap = -1 },
		func(c *Config) { c.Oracle.Enabled = true; c.Oracle.MaxVertices = 0 },
		func(c *Config) { c.Log.ProgressInterval = -time.Second },
	}
	for i, mut := range muts {
		cfg := Default()
		mut(&cfg)
		require.ErrorIs(t, cfg.Validate(), ErrInvalid, "case %d", i)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Solver.TimeLimit = time.Minute
	data, err := cfg.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rt.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	back, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}
