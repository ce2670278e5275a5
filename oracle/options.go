// SPDX-License-Identifier: MIT
// Package: twinwidth/oracle
//
// options.go - functional options for SAT.

package oracle

// DefaultMaxVertices bounds the snapshots SAT will encode.
const DefaultMaxVertices = 24

// Option customises a SAT oracle.
type Option func(*SAT)

// WithMaxVertices sets the largest snapshot that is encoded; bigger ones are
// answered Unknown. Panics on n < 1.
func WithMaxVertices(n int) Option {
	if n < 1 {
		panic("oracle: WithMaxVertices(n<1)")
	}

	return func(s *SAT) { s.maxVertices = n }
}
