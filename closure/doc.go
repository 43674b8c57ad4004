// Package closure measures and removes the inconsistency a closed
// survey traverse accumulates: walk a loop of centerline shots, sum
// their displacement vectors, and whatever distance separates the walk
// from its starting point is the loop's closure error. Propagate then
// distributes that error back over the loop's shots with the Bowditch
// (compass) rule — each shot absorbs a share proportional to its
// length — after which re-measuring the same loop closes to within
// floating-point noise.
//
// The walk operates in each shot's raw, uncorrected reference frame:
// declination and convergence shift every shot of a survey by the same
// angle, so they cancel around a loop and play no part in closure.
// (Deviation analysis, which compares shots against absolute station
// positions, is the opposite — see the deviation package.)
//
// ⚙️ Usage:
//
//	cerr, err := closure.Calculate(loop.Path, net)
//	if err != nil { ... }                      // malformed path / model
//	changed, err := closure.Propagate(loop.Path, net, cerr)
//
// A misclosure shorter than geom.Epsilon is treated as already
// consistent: Calculate flattens its angles to zero and Propagate
// returns false without touching a single shot.
//
// Cycle discovery is not this package's business: loops arrive from a
// LoopSource, typically backed by a spanning-tree + back-edge pass over
// the station graph.
//
// Errors:
//
//	ErrPathTooShort           - fewer than 3 path entries.
//	ErrOpenPath               - path[0] != path[last].
//	ErrUnknownStation         - a path entry is missing from the network.
//	survey.ErrNoCenterlineShot - a leg has no connecting centerline shot.
//
// Complexity:
//
//   - Time:   O(Σ deg(v)) over the path's stations (shot lookups)
//   - Memory: O(1) beyond the caller's arguments
package closure
