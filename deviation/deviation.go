package deviation

import (
	"fmt"

	"github.com/speleolab/loopclose/closure"
	"github.com/speleolab/loopclose/geom"
	"github.com/speleolab/loopclose/survey"
)

// Find walks the closed path and reports every shot whose corrected
// vector misses the position of its far endpoint by more than the
// threshold (exclusive; default 0.01 length units).
//
// For each leg the shot is evaluated between its own recorded
// endpoints: the mismatch is (position of Shot.From) + corrected
// vector − (position of Shot.To), which folds the traversal-direction
// convention into the shot's own frame. The proposed replacement is
// the corrected vector minus that mismatch, converted back to a raw
// measurement.
//
// Find never mutates the network; apply proposals with Adjust.
//
// Errors: the closure package's path validation set, plus
// survey.ErrNoCenterlineShot at a leg with no connecting shot.
func Find(path []string, net *survey.Network, opts ...Option) ([]Record, error) {
	// 1) Resolve options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Same closed-walk validation as the closure calculator.
	if err := closure.ValidatePath(path, net); err != nil {
		return nil, err
	}

	// 3) Examine each leg's shot against the adjusted geometry.
	var records []Record
	for i := 0; i+1 < len(path); i++ {
		sh, err := net.ConnectingShot(path[i], path[i+1])
		if err != nil {
			return nil, fmt.Errorf("deviation: Find: %w", err)
		}

		// Station existence was validated for path entries; the shot's
		// recorded endpoints are the same pair, possibly swapped.
		fromSt, ok := net.Station(sh.From)
		if !ok {
			return nil, fmt.Errorf("deviation: Find: %w: %q", closure.ErrUnknownStation, sh.From)
		}
		toSt, ok := net.Station(sh.To)
		if !ok {
			return nil, fmt.Errorf("deviation: Find: %w: %q", closure.ErrUnknownStation, sh.To)
		}

		// 3a) Mismatch in the true/grid frame.
		vec := sh.CorrectedVector()
		diff := fromSt.Position.Add(vec).Sub(toSt.Position)
		if diff.Length() <= o.Threshold {
			continue
		}

		// 3b) Propose the measurement that closes the mismatch exactly,
		//     with the azimuth returned to raw form.
		decl, conv := sh.Corrections()
		proposed := vec.Sub(diff).ToPolar()
		records = append(records, Record{
			Shot:        sh,
			Diff:        diff,
			Length:      proposed.Distance,
			Azimuth:     geom.Degrees(proposed.Azimuth) - decl - conv,
			Clino:       geom.Degrees(proposed.Inclination),
			Declination: decl,
			Convergence: conv,
		})
	}

	return records, nil
}

// Adjust rewrites each record's shot in place with its proposed
// Length/Azimuth/Clino and reports whether at least one shot changed.
// An empty record set yields false.
func Adjust(records []Record) bool {
	for _, r := range records {
		r.Shot.Length = r.Length
		r.Shot.Azimuth = r.Azimuth
		r.Shot.Clino = r.Clino
	}

	return len(records) > 0
}
