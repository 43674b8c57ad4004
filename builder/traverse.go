// SPDX-License-Identifier: MIT
// Package: loopclose/builder
//
// traverse.go — implementation of ClosedTraverse(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewStations); leg length > 0 (else ErrBadLegLength).
//   • Stations named <prefix><index> in ascending index order (0..n-1).
//   • Leg i runs station i → station (i+1)%n with true azimuth i·(360/n)°.
//   • Stored (raw) azimuth = true azimuth − declination − convergence
//     + any per-leg perturbation; positions always walk the ideal legs.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) stations + O(n) shots.
//   • Space: O(n) for the returned path.
//
// Determinism:
//   • Deterministic IDs, azimuths and positions; no RNG.

package builder

import (
	"fmt"

	"github.com/speleolab/loopclose/geom"
	"github.com/speleolab/loopclose/survey"
)

// File-local constants (no magic numbers; stable method tag for context).
const (
	methodClosedTraverse = "ClosedTraverse"
	minTraverseStations  = 3
	fullCircleDeg        = 360.0
	defaultLegLength     = 10.0
	defaultPrefix        = "ST"
	defaultSurveyName    = "synthetic"
)

// Options holds the resolved build configuration.
type Options struct {
	legLength   float64
	clino       float64
	declination float64
	convergence float64
	prefix      string
	surveyName  string
	azimuthErr  map[int]float64
}

// Option mutates Options before a build.
type Option func(*Options)

// WithLegLength sets the common leg length (default 10).
func WithLegLength(l float64) Option {
	return func(o *Options) { o.legLength = l }
}

// WithClino sets a constant inclination in degrees for every leg
// (default 0). A non-zero clino makes the loop climb every leg and
// therefore misclose vertically by n·leg·sin(clino) — a handy way to
// manufacture a known vertical closure error.
func WithClino(deg float64) Option {
	return func(o *Options) { o.clino = deg }
}

// WithCorrections sets the survey's declination and convergence in
// degrees (default 0, 0). Stored azimuths are shifted to raw form so
// the corrected frame still walks the ideal polygon.
func WithCorrections(declination, convergence float64) Option {
	return func(o *Options) {
		o.declination = declination
		o.convergence = convergence
	}
}

// WithStationPrefix sets the station-name prefix (default "ST").
func WithStationPrefix(prefix string) Option {
	return func(o *Options) { o.prefix = prefix }
}

// WithAzimuthError adds deltaDeg to leg's stored azimuth after
// positioning, manufacturing a loop misclosure. May be repeated for
// different legs; repeated use on one leg accumulates.
func WithAzimuthError(leg int, deltaDeg float64) Option {
	return func(o *Options) {
		if o.azimuthErr == nil {
			o.azimuthErr = make(map[int]float64)
		}
		o.azimuthErr[leg] += deltaDeg
	}
}

// defaultOptions returns the stock configuration.
func defaultOptions() Options {
	return Options{
		legLength:  defaultLegLength,
		prefix:     defaultPrefix,
		surveyName: defaultSurveyName,
	}
}

// ClosedTraverse builds a regular n-station polygon traverse and
// returns the network together with its closed path
// [ST0, ST1, …, STn-1, ST0].
//
// Station positions are fixed by a forward walk of the ideal
// (unperturbed, corrected-frame) legs from the origin, so without
// perturbations the loop closes exactly and every shot agrees with its
// endpoints. Azimuth errors then desynchronize stored measurements
// from those positions without moving any station.
func ClosedTraverse(n int, opts ...Option) (*survey.Network, []string, error) {
	// Resolve options against defaults.
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Validate parameter domain early (fail fast, no work on invalid input).
	if n < minTraverseStations {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodClosedTraverse, n, minTraverseStations, ErrTooFewStations)
	}
	if cfg.legLength <= 0 {
		return nil, nil, fmt.Errorf("%s: leg=%g: %w", methodClosedTraverse, cfg.legLength, ErrBadLegLength)
	}
	for leg := range cfg.azimuthErr {
		if leg < 0 || leg >= n {
			return nil, nil, fmt.Errorf("%s: leg=%d of %d: %w", methodClosedTraverse, leg, n, ErrLegIndex)
		}
	}

	net := survey.NewNetwork()
	sv := net.NewSurvey(cfg.surveyName, cfg.declination, cfg.convergence)

	// Walk the ideal polygon to fix station positions: leg i carries
	// true azimuth i·step and the configured clino.
	step := fullCircleDeg / float64(n)
	pos := geom.Vector3{}
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("%s%d", cfg.prefix, i)
		if _, err := net.AddStation(names[i], pos); err != nil {
			return nil, nil, fmt.Errorf("%s: AddStation(%s): %w", methodClosedTraverse, names[i], err)
		}

		ideal := geom.Polar{
			Distance:    cfg.legLength,
			Azimuth:     geom.Radians(float64(i) * step),
			Inclination: geom.Radians(cfg.clino),
		}
		pos = pos.Add(ideal.ToVector())
	}

	// Emit legs in ascending i; stored azimuth is the raw (uncorrected)
	// bearing plus any configured perturbation.
	for i := 0; i < n; i++ {
		raw := float64(i)*step - cfg.declination - cfg.convergence + cfg.azimuthErr[i]
		to := names[(i+1)%n]
		if _, err := net.AddShot(sv, names[i], to, cfg.legLength, raw, cfg.clino, survey.Centerline); err != nil {
			return nil, nil, fmt.Errorf("%s: AddShot(%s→%s): %w", methodClosedTraverse, names[i], to, err)
		}
	}

	// Close the path on its start station.
	path := append(append([]string(nil), names...), names[0])

	return net, path, nil
}
