package closure

import (
	"errors"

	"github.com/speleolab/loopclose/geom"
	"github.com/speleolab/loopclose/survey"
)

// Sentinel errors for path validation.
var (
	// ErrPathTooShort indicates a path with fewer than MinPathLen entries.
	ErrPathTooShort = errors.New("closure: path has fewer than 3 stations")

	// ErrOpenPath indicates a path whose first and last stations differ.
	ErrOpenPath = errors.New("closure: path does not close on its start station")

	// ErrUnknownStation indicates a path entry absent from the network.
	ErrUnknownStation = errors.New("closure: station not found in network")
)

// MinPathLen is the smallest accepted closed-walk length: [A, B, A].
const MinPathLen = 3

// Loop is one closed walk through the station network as delivered by
// a LoopSource: Path[0] == Path[len-1], and every consecutive pair is
// joined by a centerline shot. TotalLength is the provider's nominal
// measured length around the loop; Calculate re-derives the exact
// value from the shots it visits.
type Loop struct {
	Path        []string
	TotalLength float64
}

// LoopSource yields the closed walks of a station network. Cycle
// enumeration (e.g. spanning tree + back edges) is a separate,
// independently testable concern, so the engine consumes it as an
// injected capability rather than owning a graph traversal of its own.
type LoopSource interface {
	Loops(net *survey.Network) ([]Loop, error)
}

// ClosureError is the measured inconsistency of one closed walk: the
// polar misclosure vector separating the walk's start from the
// position reached by chaining every shot around the loop, plus the
// loop's total measured length.
//
// Computed fresh on every Calculate call and never cached here —
// propagation invalidates it, so caching is the caller's concern.
type ClosureError struct {
	// Misclosure is the closing vector in polar form. Its angles are
	// exactly zero whenever Distance < geom.Epsilon.
	Misclosure geom.Polar

	// TotalLength is the sum of the traversed shots' lengths.
	TotalLength float64
}

// Consistent reports whether the loop needs no correction: the
// misclosure distance is below geom.Epsilon.
func (c ClosureError) Consistent() bool {
	return c.Misclosure.Distance < geom.Epsilon
}
