package survey

import (
	"errors"

	"github.com/speleolab/loopclose/geom"
)

// Sentinel errors for survey model operations.
var (
	// ErrEmptyStationName indicates a station was added with an empty name.
	ErrEmptyStationName = errors.New("survey: station name is empty")

	// ErrDuplicateStation indicates a station name is already present.
	ErrDuplicateStation = errors.New("survey: duplicate station name")

	// ErrUnknownStation indicates an operation referenced a non-existent station.
	ErrUnknownStation = errors.New("survey: station not found")

	// ErrBadShotLength indicates a shot length that is not strictly positive.
	ErrBadShotLength = errors.New("survey: shot length must be positive")

	// ErrNoCenterlineShot indicates that no centerline shot connects two
	// stations in either direction.
	ErrNoCenterlineShot = errors.New("survey: no centerline shot between stations")
)

// ShotKind classifies a measurement's role in the network.
//
//   - Centerline — part of the cave's skeleton; the only kind that
//     participates in loop mathematics.
//   - Splay      — wall/detail measurement radiating from a station.
//   - Auxiliary  — duplicate or reference measurement kept for the record.
type ShotKind int

const (
	// Centerline shots form the traverse skeleton and are used by
	// closure and deviation computations.
	Centerline ShotKind = iota

	// Splay shots are radial detail measurements; never adjusted.
	Splay

	// Auxiliary shots are duplicates or reference legs; never adjusted.
	Auxiliary
)

// Station is a named point of the network with a known 3D position.
//
// Position is produced upstream (a forward traversal of the shot set)
// and treated as ground truth by deviation analysis. Shots is the
// back-reference list of every shot incident to this station, in
// insertion order.
type Station struct {
	// Name uniquely identifies this Station within its Network.
	Name string

	// Position is the station's current Cartesian position.
	Position geom.Vector3

	// Shots lists every shot having this station as an endpoint.
	Shots []*Shot
}

// Shot is a single polar measurement between two named stations.
//
// Length, Azimuth and Clino are the raw recorded values — azimuth and
// clino in degrees, uncorrected for declination or convergence. They
// are mutable: applying a loop correction rewrites all three in place.
//
// A shot has no geometric direction preference: whichever endpoint a
// traversal leaves from decides whether its vector is added or
// subtracted (see VectorFrom).
type Shot struct {
	// From and To name the recorded endpoints.
	From, To string

	// Length is the measured distance, > 0, in survey length units.
	Length float64

	// Azimuth is the raw compass bearing in degrees.
	Azimuth float64

	// Clino is the raw inclination in degrees from the horizontal.
	Clino float64

	// Kind classifies the measurement; only Centerline shots take part
	// in loop mathematics.
	Kind ShotKind

	// Comment is optional free-text attached by the surveyor.
	Comment string

	// Survey points at the owning survey, or nil when the shot was
	// recorded outside any survey.
	Survey *Survey
}

// Survey is an ordered collection of shots recorded with the same
// instrument corrections.
//
// Declination and Convergence (degrees) are added to a shot's raw
// azimuth to move it into the true/grid frame, and subtracted back out
// when a corrected measurement is rewritten in raw form.
type Survey struct {
	// Name labels the survey trip.
	Name string

	// Declination is the magnetic declination correction in degrees.
	Declination float64

	// Convergence is the grid convergence correction in degrees.
	Convergence float64

	// Shots holds the survey's shots in recording order.
	Shots []*Shot
}

// Corrections returns the declination and convergence (degrees) to
// apply to this shot's azimuth. A shot without an owning survey is
// treated as zero-corrected rather than rejected; surveys genuinely
// lacking corrections are indistinguishable from missing metadata
// here, so the tolerant default stands.
func (s *Shot) Corrections() (declination, convergence float64) {
	if s.Survey == nil {
		return 0, 0
	}

	return s.Survey.Declination, s.Survey.Convergence
}

// Polar returns the shot's raw measurement in radians-based polar form.
func (s *Shot) Polar() geom.Polar {
	return geom.Polar{
		Distance:    s.Length,
		Azimuth:     geom.Radians(s.Azimuth),
		Inclination: geom.Radians(s.Clino),
	}
}

// Vector returns the shot's raw displacement From→To in the shot's
// own uncorrected reference frame.
func (s *Shot) Vector() geom.Vector3 {
	return s.Polar().ToVector()
}

// CorrectedVector returns the shot's displacement From→To with the
// owning survey's declination and convergence applied to the azimuth,
// i.e. the displacement in the true/grid frame the station positions
// live in.
func (s *Shot) CorrectedVector() geom.Vector3 {
	decl, conv := s.Corrections()
	p := s.Polar()
	p.Azimuth += geom.Radians(decl + conv)

	return p.ToVector()
}

// VectorFrom returns the shot's raw displacement oriented for a walk
// leaving station from: the stored vector when from is the shot's
// recorded From endpoint, its negation otherwise.
//
// This single helper carries the add/subtract-by-traversal-direction
// convention used by both the closure walk and Bowditch propagation,
// so the two can never disagree on sign.
func (s *Shot) VectorFrom(from string) geom.Vector3 {
	v := s.Vector()
	if s.From == from {
		return v
	}

	return v.Scale(-1)
}

// SetPolar overwrites the shot's raw Length/Azimuth/Clino in place
// from a radians-based polar measurement (angles converted back to
// degrees).
func (s *Shot) SetPolar(p geom.Polar) {
	s.Length = p.Distance
	s.Azimuth = geom.Degrees(p.Azimuth)
	s.Clino = geom.Degrees(p.Inclination)
}

// Connects reports whether the shot's unordered endpoint pair equals
// {a, b}.
func (s *Shot) Connects(a, b string) bool {
	return (s.From == a && s.To == b) || (s.From == b && s.To == a)
}
