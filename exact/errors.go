// SPDX-License-Identifier: MIT
// Package: twinwidth/exact
//
// errors.go - sentinel errors. Each wraps one of the trigraph classes so
// callers can branch on ErrInvalidInput / ErrInvalidOperation regardless of
// which layer rejected the call.

package exact

import (
	"fmt"

	"github.com/katalvlaran/twinwidth/trigraph"
)

var (
	// ErrNilGraph indicates a nil graph or trigraph.
	ErrNilGraph = fmt.Errorf("%w: exact: nil graph", trigraph.ErrInvalidInput)

	// ErrBadOptions indicates an Options field outside its domain.
	ErrBadOptions = fmt.Errorf("%w: exact: invalid options", trigraph.ErrInvalidInput)

	// ErrBadFrozen indicates a frozen vertex that is not active.
	ErrBadFrozen = fmt.Errorf("%w: exact: frozen vertex rejected", trigraph.ErrInvalidOperation)

	// ErrBadForced indicates a forced merge that could not be applied.
	ErrBadForced = fmt.Errorf("%w: exact: forced merge rejected", trigraph.ErrInvalidOperation)
)
