// SPDX-License-Identifier: MIT
// Package: twinwidth/trigraph
//
// options.go - functional options for New and FromCore.

package trigraph

// Storage selects the adjacency representation.
type Storage int

const (
	// Auto picks Dense up to DenseLimit vertices, Sparse above.
	Auto Storage = iota
	// Dense stores one bitset row per vertex.
	Dense
	// Sparse stores one hash set per vertex.
	Sparse
)

// DenseLimit is the largest vertex count for which Auto picks Dense.
const DenseLimit = 1024

// String implements fmt.Stringer.
func (s Storage) String() string {
	switch s {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	default:
		return "auto"
	}
}

// Option configures a TriGraph at construction time.
type Option func(*config)

type config struct {
	storage Storage
}

// WithStorage forces a storage variant. Panics on an unknown value.
func WithStorage(s Storage) Option {
	if s < Auto || s > Sparse {
		panic("trigraph: WithStorage(unknown)")
	}

	return func(c *config) {
		c.storage = s
	}
}

// resolve maps Auto to a concrete variant for n vertices.
func (c config) resolve(n int) Storage {
	if c.storage != Auto {
		return c.storage
	}
	if n <= DenseLimit {
		return Dense
	}

	return Sparse
}
