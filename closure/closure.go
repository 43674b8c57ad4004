package closure

import (
	"fmt"

	"github.com/speleolab/loopclose/survey"
)

// Calculate walks the closed path and measures its closure error: the
// vector separating the start station's position from the position
// reached by chaining every leg's shot vector around the loop.
//
// The walk runs in each shot's raw, uncorrected frame (declination and
// convergence cancel around a closed loop). A shot recorded against
// the direction of travel contributes its negated vector, so the
// result is independent of how individual legs were booked.
//
// Calculate never mutates the network. A misclosure shorter than
// geom.Epsilon has its angles flattened to exactly zero.
//
// Errors: ErrPathTooShort, ErrOpenPath, ErrUnknownStation (validated
// before any computation), survey.ErrNoCenterlineShot (at the failing
// leg, naming both stations).
func Calculate(path []string, net *survey.Network) (ClosureError, error) {
	// 1) Reject malformed input before touching any shot.
	if err := ValidatePath(path, net); err != nil {
		return ClosureError{}, err
	}

	// 2) Start the walk at the loop's first station.
	start, _ := net.Station(path[0])
	pos := start.Position

	// 3) Chain every leg's shot vector, oriented by travel direction,
	//    accumulating the measured loop length as we go.
	var total float64
	for i := 0; i+1 < len(path); i++ {
		sh, err := net.ConnectingShot(path[i], path[i+1])
		if err != nil {
			return ClosureError{}, fmt.Errorf("closure: Calculate: %w", err)
		}

		pos = pos.Add(sh.VectorFrom(path[i]))
		total += sh.Length
	}

	// 4) The misclosure is whatever separates the start from where the
	//    walk actually arrived. ToPolar flattens sub-Epsilon noise.
	mis := start.Position.Sub(pos).ToPolar()

	return ClosureError{Misclosure: mis, TotalLength: total}, nil
}

// ValidatePath checks that path is an acceptable closed walk over net:
// at least MinPathLen entries, first == last, and every named station
// present. It performs no shot lookups — a missing connecting shot is
// reported by the walk itself, at the leg where it is discovered.
// Complexity: O(len(path)).
func ValidatePath(path []string, net *survey.Network) error {
	if len(path) < MinPathLen {
		return fmt.Errorf("ValidatePath: %d entries: %w", len(path), ErrPathTooShort)
	}
	if path[0] != path[len(path)-1] {
		return fmt.Errorf("ValidatePath: %q … %q: %w", path[0], path[len(path)-1], ErrOpenPath)
	}
	for _, name := range path {
		if _, ok := net.Station(name); !ok {
			return fmt.Errorf("ValidatePath: %w: %q", ErrUnknownStation, name)
		}
	}

	return nil
}
