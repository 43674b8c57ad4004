// SPDX-License-Identifier: MIT
// Package: loopclose/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w wrapping at call sites.

package builder

import "errors"

// ErrTooFewStations indicates n < 3; a traverse cannot close on fewer.
var ErrTooFewStations = errors.New("builder: traverse needs at least 3 stations")

// ErrBadLegLength indicates a leg length that is not strictly positive.
var ErrBadLegLength = errors.New("builder: leg length must be positive")

// ErrLegIndex indicates a perturbation aimed at a leg outside [0, n).
var ErrLegIndex = errors.New("builder: leg index out of range")
