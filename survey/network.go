package survey

import (
	"fmt"
	"sort"

	"github.com/speleolab/loopclose/geom"
)

// Network is the in-memory survey model: stations by name plus the
// surveys whose shots connect them.
//
// Construction validates eagerly and returns sentinel errors; once
// built, the closure engine only reads the model and rewrites shot
// numeric fields in place.
type Network struct {
	stations map[string]*Station
	surveys  []*Survey
}

// NewNetwork creates an empty survey network.
// Complexity: O(1)
func NewNetwork() *Network {
	return &Network{stations: make(map[string]*Station)}
}

// AddStation registers a station with the given name and position.
// Returns ErrEmptyStationName or ErrDuplicateStation on invalid input.
// Complexity: O(1)
func (n *Network) AddStation(name string, pos geom.Vector3) (*Station, error) {
	if name == "" {
		return nil, ErrEmptyStationName
	}
	if _, exists := n.stations[name]; exists {
		return nil, fmt.Errorf("AddStation(%q): %w", name, ErrDuplicateStation)
	}

	st := &Station{Name: name, Position: pos}
	n.stations[name] = st

	return st, nil
}

// NewSurvey registers an empty survey carrying the given declination
// and convergence corrections (degrees).
// Complexity: O(1)
func (n *Network) NewSurvey(name string, declination, convergence float64) *Survey {
	sv := &Survey{Name: name, Declination: declination, Convergence: convergence}
	n.surveys = append(n.surveys, sv)

	return sv
}

// AddShot records a measurement of the given kind between two existing
// stations and wires it into both stations' incident lists and the
// owning survey (sv may be nil for a survey-less shot).
//
// Returns ErrUnknownStation (naming the missing endpoint) or
// ErrBadShotLength on invalid input.
// Complexity: O(1)
func (n *Network) AddShot(sv *Survey, from, to string, length, azimuth, clino float64, kind ShotKind) (*Shot, error) {
	if length <= 0 {
		return nil, fmt.Errorf("AddShot(%q→%q): length %g: %w", from, to, length, ErrBadShotLength)
	}

	fromSt, ok := n.stations[from]
	if !ok {
		return nil, fmt.Errorf("AddShot: %w: %q", ErrUnknownStation, from)
	}
	toSt, ok := n.stations[to]
	if !ok {
		return nil, fmt.Errorf("AddShot: %w: %q", ErrUnknownStation, to)
	}

	sh := &Shot{From: from, To: to, Length: length, Azimuth: azimuth, Clino: clino, Kind: kind, Survey: sv}
	fromSt.Shots = append(fromSt.Shots, sh)
	toSt.Shots = append(toSt.Shots, sh)
	if sv != nil {
		sv.Shots = append(sv.Shots, sh)
	}

	return sh, nil
}

// Station returns the station with the given name, or (nil, false).
// Complexity: O(1)
func (n *Network) Station(name string) (*Station, bool) {
	st, ok := n.stations[name]

	return st, ok
}

// Stations returns all station names in lexicographic order.
// Complexity: O(V log V)
func (n *Network) Stations() []string {
	names := make([]string, 0, len(n.stations))
	for name := range n.stations {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Surveys returns the registered surveys in registration order.
// Complexity: O(1)
func (n *Network) Surveys() []*Survey {
	return n.surveys
}

// ConnectingShot resolves the centerline shot joining stations a and b,
// searched in either direction through a's incident-shot list.
//
// Returns ErrUnknownStation when a does not exist, or
// ErrNoCenterlineShot (naming both stations) when no centerline shot
// joins the pair — the latter is a fatal model inconsistency for any
// closed path that claims the pair as a leg.
// Complexity: O(deg(a))
func (n *Network) ConnectingShot(a, b string) (*Shot, error) {
	st, ok := n.stations[a]
	if !ok {
		return nil, fmt.Errorf("ConnectingShot: %w: %q", ErrUnknownStation, a)
	}

	for _, sh := range st.Shots {
		if sh.Kind == Centerline && sh.Connects(a, b) {
			return sh, nil
		}
	}

	return nil, fmt.Errorf("ConnectingShot(%q, %q): %w", a, b, ErrNoCenterlineShot)
}
