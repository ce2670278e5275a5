// SPDX-License-Identifier: MIT
// Package: twinwidth/trigraph
//
// errors.go - sentinel errors.
//
// Classes:
//
//	ErrInvalidInput       - malformed construction input.
//	ErrInvalidOperation   - operation not legal in the current state.
//	ErrInconsistentState  - CheckConsistency found a violated invariant.
//
// Specific sentinels wrap their class so errors.Is matches both.

package trigraph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed graphs or sequences handed to constructors.
	ErrInvalidInput = errors.New("trigraph: invalid input")

	// ErrInvalidOperation marks calls that are illegal in the current state.
	ErrInvalidOperation = errors.New("trigraph: invalid operation")

	// ErrInconsistentState marks a violated internal invariant.
	ErrInconsistentState = errors.New("trigraph: inconsistent state")
)

var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, N()).
	ErrVertexOutOfRange = fmt.Errorf("%w: vertex out of range", ErrInvalidOperation)

	// ErrVertexInactive indicates the vertex was already contracted or removed.
	ErrVertexInactive = fmt.Errorf("%w: vertex inactive", ErrInvalidOperation)

	// ErrVertexFrozen indicates a frozen vertex was asked to disappear.
	ErrVertexFrozen = fmt.Errorf("%w: vertex frozen", ErrInvalidOperation)

	// ErrSameVertex indicates a pair with equal endpoints.
	ErrSameVertex = fmt.Errorf("%w: endpoints are equal", ErrInvalidOperation)

	// ErrEdgeNotFound indicates a setup edit on a missing edge.
	ErrEdgeNotFound = fmt.Errorf("%w: edge not found", ErrInvalidOperation)

	// ErrEdgeExists indicates AddEdge on an existing edge.
	ErrEdgeExists = fmt.Errorf("%w: edge exists", ErrInvalidOperation)

	// ErrBadColor indicates a colour other than Black or Red.
	ErrBadColor = fmt.Errorf("%w: colour must be Black or Red", ErrInvalidOperation)

	// ErrJournalNotEmpty indicates a setup edit or full recompute while
	// contractions are outstanding.
	ErrJournalNotEmpty = fmt.Errorf("%w: contractions outstanding", ErrInvalidOperation)

	// ErrTokenMismatch indicates Undo with a token that is not on top of the journal.
	ErrTokenMismatch = fmt.Errorf("%w: token is not the most recent contraction", ErrInvalidOperation)
)
