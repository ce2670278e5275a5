// SPDX-License-Identifier: MIT
// Package: twinwidth/pace
//
// errors.go - sentinel errors.

package pace

import "github.com/pkg/errors"

// ErrBadFormat indicates input that does not follow the PACE formats.
var ErrBadFormat = errors.New("pace: bad format")
