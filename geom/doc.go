// Package geom provides the two value types every other loopclose
// package is built on: Vector3 (a Cartesian displacement) and Polar
// (a surveyed measurement of distance, azimuth and inclination), plus
// the conversions between them.
//
// Conventions:
//
//   - Azimuth is measured clockwise from grid north (+Y), in radians.
//   - Inclination is measured from the horizontal plane, in radians,
//     positive upwards (+Z).
//   - Distance is never negative.
//   - Survey records carry angles in degrees; Radians and Degrees
//     convert at that boundary.
//
// A vector of near-zero magnitude has no meaningful direction, so
// Vector3.ToPolar normalizes both angles to exactly zero whenever the
// magnitude falls below Epsilon. This keeps degenerate atan2/asin
// results out of downstream proportional corrections.
//
// All operations are pure, deterministic and allocation-free.
//
// Complexity: every function is O(1) time, O(1) space.
package geom
