// SPDX-License-Identifier: MIT
// Package: twinwidth/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng  = nil (pure/deterministic unless seeded)
//   - name = ""  (graph label forwarded to core.WithName)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Label attached to the produced graph.
	name string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
