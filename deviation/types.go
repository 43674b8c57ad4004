package deviation

import (
	"github.com/speleolab/loopclose/geom"
	"github.com/speleolab/loopclose/survey"
)

// DefaultThreshold is the mismatch distance (length units) a shot must
// exceed — strictly — before it is reported. Sub-threshold mismatches
// are measurement noise.
const DefaultThreshold = 0.01

// Options configures deviation detection.
type Options struct {
	// Threshold is the exclusive reporting bound on the mismatch
	// distance. Non-positive values fall back to DefaultThreshold.
	Threshold float64
}

// DefaultOptions returns the stock configuration: the 0.01 reporting
// threshold.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// Option mutates Options. Use with Find(path, net, opts...).
type Option func(*Options)

// WithThreshold returns an Option that sets the exclusive reporting
// threshold. Non-positive values are ignored (the default stands).
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if t > 0 {
			o.Threshold = t
		}
	}
}

// Record describes one deviating shot: how far it misses the adjusted
// geometry and the measurement that would make it agree exactly.
type Record struct {
	// Shot is the offending measurement.
	Shot *survey.Shot

	// Diff is the mismatch vector between the endpoint position the
	// shot implies and the endpoint's actual position, in the
	// true/grid frame.
	Diff geom.Vector3

	// Length, Azimuth and Clino are the proposed replacement raw
	// values (degrees; Azimuth already has declination + convergence
	// subtracted back out).
	Length  float64
	Azimuth float64
	Clino   float64

	// Declination and Convergence record the corrections (degrees)
	// used when the proposal was derived.
	Declination float64
	Convergence float64
}
