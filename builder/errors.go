// SPDX-License-Identifier: MIT
// Package: twinwidth/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context using %w.
//   - Validation panics are confined to option constructors (WithX...).
//
// Priority when several validations fail:
//   - ErrTooFewVertices / ErrOptionViolation - parameter domain first.
//   - ErrInvalidProbability                  - then probability ranges.
//   - ErrNeedRandSource                      - then RNG presence.
//   - ErrConstructFailed                     - only for core rejections.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, part size)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that core rejected an edge or a constructor was nil.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an unknown enumerated parameter
// (PlatonicSolid or Named with an unregistered value).
var ErrOptionViolation = errors.New("builder: invalid option value")
