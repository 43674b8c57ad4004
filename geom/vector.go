package geom

import "math"

// Epsilon is the length (in survey length units) below which a vector
// is treated as having no direction. Vector3.ToPolar flattens the
// angles of any shorter vector to zero, and the closure engine treats
// any misclosure shorter than this as already consistent.
const Epsilon = 1e-4

// degPerRad converts radians to degrees (and back via its inverse).
const degPerRad = 180 / math.Pi

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 { return deg / degPerRad }

// Degrees converts an angle in radians to degrees.
func Degrees(rad float64) float64 { return rad * degPerRad }

// Vector3 is a displacement (or position) in a Cartesian frame:
// X east, Y north, Z up. Immutable value type; all methods return
// new values.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean magnitude ‖v‖.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// ToPolar converts v to polar form.
//
// The azimuth is atan2(X, Y): clockwise from grid north. The
// inclination is asin(Z/‖v‖). When ‖v‖ < Epsilon both angles are
// forced to exactly zero — the direction of a near-zero vector is
// numerical noise and must not leak into corrections derived from it.
func (v Vector3) ToPolar() Polar {
	d := v.Length()
	if d < Epsilon {
		return Polar{Distance: d}
	}

	return Polar{
		Distance:    d,
		Azimuth:     math.Atan2(v.X, v.Y),
		Inclination: math.Asin(v.Z / d),
	}
}

// Polar is a surveyed measurement: a Distance ≥ 0 along a direction
// given by Azimuth (clockwise from grid north) and Inclination (from
// the horizontal plane), both in radians. Neither angle is range
// normalized; callers normalize before storage if they need to.
type Polar struct {
	Distance    float64
	Azimuth     float64
	Inclination float64
}

// Scale returns a Polar with the distance multiplied by s and the
// direction untouched. s must be non-negative to preserve the
// Distance ≥ 0 invariant.
func (p Polar) Scale(s float64) Polar {
	return Polar{Distance: p.Distance * s, Azimuth: p.Azimuth, Inclination: p.Inclination}
}

// ToVector converts p to a Cartesian displacement:
//
//	x = d·cos(inc)·sin(az)
//	y = d·cos(inc)·cos(az)
//	z = d·sin(inc)
func (p Polar) ToVector() Vector3 {
	horiz := p.Distance * math.Cos(p.Inclination)

	return Vector3{
		X: horiz * math.Sin(p.Azimuth),
		Y: horiz * math.Cos(p.Azimuth),
		Z: p.Distance * math.Sin(p.Inclination),
	}
}
