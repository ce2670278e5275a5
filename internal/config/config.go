// SPDX-License-Identifier: MIT
// Package: twinwidth/internal/config
//
// config.go - YAML run configuration for the tww command.
//
// Priority: command-line flags > environment > file > defaults. The file
// and environment layers live here; flags are applied by the command.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/twinwidth/exact"
	"github.com/katalvlaran/twinwidth/oracle"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full run configuration.
type Config struct {
	Solver  SolverConfig  `yaml:"solver"`
	Oracle  OracleConfig  `yaml:"oracle"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SolverConfig mirrors exact.Options plus the portfolio size.
type SolverConfig struct {
	TimeLimit     time.Duration `yaml:"time_limit"`
	BranchCap     int           `yaml:"branch_cap"`
	Strategy      string        `yaml:"strategy"`
	SeedGreedy    bool          `yaml:"seed_greedy"`
	Workers       int           `yaml:"workers"`
	TableLimit    int           `yaml:"table_limit"`
	ProgressEvery int           `yaml:"progress_every"`
	LowerHint     int           `yaml:"lower_hint"`
}

// OracleConfig enables and sizes the SAT oracle.
type OracleConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Budget      time.Duration `yaml:"budget"`
	Depth       int           `yaml:"depth"`
	MaxVertices int           `yaml:"max_vertices"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level            string        `yaml:"level"`
	Pretty           bool          `yaml:"pretty"`
	ProgressInterval time.Duration `yaml:"progress_interval"`
}

// MetricsConfig names the Prometheus textfile written after a run; empty
// disables it.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the built-in configuration.
func Default() Config {
	d := exact.DefaultOptions()

	return Config{
		Solver: SolverConfig{
			Strategy:      d.Strategy.String(),
			SeedGreedy:    d.SeedGreedy,
			Workers:       1,
			TableLimit:    d.TableLimit,
			ProgressEvery: d.ProgressEvery,
		},
		Oracle: OracleConfig{
			Budget:      d.OracleBudget,
			Depth:       0,
			MaxVertices: oracle.DefaultMaxVertices,
		},
		Log: LogConfig{
			Level:            "info",
			ProgressInterval: 2 * time.Second,
		},
	}
}

// Load reads path over the defaults, applies TWW_* environment overrides
// and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// applyEnv reads TWW_TIME_LIMIT, TWW_WORKERS, TWW_STRATEGY and
// TWW_LOG_LEVEL.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("TWW_TIME_LIMIT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: TWW_TIME_LIMIT=%q: %w", v, ErrInvalid)
		}
		c.Solver.TimeLimit = d
	}
	if v, ok := lookup("TWW_WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: TWW_WORKERS=%q: %w", v, ErrInvalid)
		}
		c.Solver.Workers = n
	}
	if v, ok := lookup("TWW_STRATEGY"); ok {
		c.Solver.Strategy = v
	}
	if v, ok := lookup("TWW_LOG_LEVEL"); ok {
		c.Log.Level = v
	}

	return nil
}

// Validate checks every field that ExactOptions does not check itself.
func (c Config) Validate() error {
	if _, ok := exact.ParseStrategy(c.Solver.Strategy); !ok {
		return fmt.Errorf("config: solver.strategy %q: %w", c.Solver.Strategy, ErrInvalid)
	}
	if c.Solver.Workers < 0 {
		return fmt.Errorf("config: solver.workers %d: %w", c.Solver.Workers, ErrInvalid)
	}
	if c.Solver.LowerHint < 0 {
		return fmt.Errorf("config: solver.lower_hint %d: %w", c.Solver.LowerHint, ErrInvalid)
	}
	if c.Oracle.Enabled && c.Oracle.MaxVertices < 1 {
		return fmt.Errorf("config: oracle.max_vertices %d: %w", c.Oracle.MaxVertices, ErrInvalid)
	}
	if c.Log.ProgressInterval < 0 {
		return fmt.Errorf("config: log.progress_interval %s: %w", c.Log.ProgressInterval, ErrInvalid)
	}
	if err := c.ExactOptions(nil).Validate(); err != nil {
		return fmt.Errorf("config: %w: %w", ErrInvalid, err)
	}

	return nil
}

// ExactOptions converts the solver and oracle sections; rep becomes the
// run's Reporter.
func (c Config) ExactOptions(rep exact.Reporter) exact.Options {
	st, _ := exact.ParseStrategy(c.Solver.Strategy)
	opts := exact.Options{
		TimeLimit:     c.Solver.TimeLimit,
		BranchCap:     c.Solver.BranchCap,
		Strategy:      st,
		SeedGreedy:    c.Solver.SeedGreedy,
		TableLimit:    c.Solver.TableLimit,
		ProgressEvery: c.Solver.ProgressEvery,
		OracleBudget:  c.Oracle.Budget,
		OracleDepth:   c.Oracle.Depth,
		Reporter:      rep,
	}
	if c.Oracle.Enabled && c.Oracle.MaxVertices > 0 {
		opts.Oracle = oracle.New(oracle.WithMaxVertices(c.Oracle.MaxVertices))
	}

	return opts
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
