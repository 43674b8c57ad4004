// Package deviation flags shots whose raw measurement no longer agrees
// with the positions of their endpoint stations, and proposes
// corrected measurements for them.
//
// Unlike the closure walk, which stays in each shot's raw frame,
// deviation analysis reasons in the true/grid frame: a shot's azimuth
// is corrected by its survey's declination + convergence before being
// compared against the already-positioned stations, and a proposed
// replacement azimuth is shifted back to raw form before it is
// reported. A shot without survey metadata is treated as
// zero-corrected (tolerant default, see survey.Shot.Corrections).
//
// The detector does not decide which endpoint position is
// authoritative; it assumes positions already reflect a prior
// adjustment pass (e.g. closure.Propagate followed by the caller's
// forward-traverse rebuild) and reports shots that stick out of that
// adjusted geometry by more than the threshold.
//
// ⚙️ Usage:
//
//	recs, err := deviation.Find(loop.Path, net)   // default 0.01 threshold
//	if deviation.Adjust(recs) {
//	    // shots rewritten in place; rebuild station positions upstream
//	}
//
// Find never mutates the network; only Adjust rewrites shots.
//
// Complexity:
//
//   - Time:   O(Σ deg(v)) over the path's stations
//   - Memory: O(#records)
package deviation
