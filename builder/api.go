// SPDX-License-Identifier: MIT
// Package: twinwidth/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Each constructor appends a disjoint block of fresh vertices; ids inside a block
//     are offset by the graph order observed when the constructor starts.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twinwidth/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching g and return sentinel errors (no panics).
//   - Only add vertices via appendBlock so blocks stay disjoint.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g := core.NewGraph(0, core.WithName(cfg.name))

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Must is a test helper that panics when BuildGraph fails. Use it only for
// fixtures whose parameters are known to be valid.
func Must(g *core.Graph, err error) *core.Graph {
	if err != nil {
		panic(err)
	}

	return g
}

// appendBlock adds n isolated vertices to g and returns the id of the first.
// Complexity: O(n).
func appendBlock(g *core.Graph, n int) int {
	base := g.Order()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}

	return base
}

// addEdges inserts every chord of list shifted by base, wrapping the first
// failure with the method tag.
func addEdges(g *core.Graph, method string, base int, list []chord) error {
	for _, ch := range list {
		u, v := base+ch.U, base+ch.V
		if err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w: %w", method, u, v, ErrConstructFailed, err)
		}
	}

	return nil
}
