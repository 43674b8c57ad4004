// SPDX-License-Identifier: MIT
// Package: loopclose/builder
//
// Package builder constructs deterministic synthetic survey networks
// for tests, benchmarks and examples.
//
// The one constructor, ClosedTraverse(n, opts...), lays out a regular
// n-gon traverse: n stations, n centerline legs of equal length with
// evenly spaced azimuths, positions fixed by a forward walk from the
// origin so the fixture is self-consistent before any perturbation is
// applied. Options then introduce controlled inconsistencies —
// per-leg azimuth errors, a constant clino, survey corrections — that
// give the closure and deviation packages something to measure.
//
// Design contract (strict):
//   - Determinism: same n and options ⇒ identical network, always.
//     No RNG anywhere in this package.
//   - Safety: never panic; sentinel errors only (errors.go).
//   - Perturbations change stored shot values, never the walked
//     positions: the positions stay those of the ideal polygon, which
//     is exactly what makes a perturbed leg measurably inconsistent.
//
// Complexity: O(n) time, O(n) space per build.
package builder
