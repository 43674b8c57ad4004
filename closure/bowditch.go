package closure

import (
	"fmt"

	"github.com/speleolab/loopclose/survey"
)

// Propagate distributes cerr over the path's shots with the Bowditch
// (compass) rule and reports whether anything was corrected.
//
// Each shot absorbs the share of the misclosure vector proportional to
// its length: correction_i = misclosure · (length_i / totalLength).
// The correction is added to a shot traversed in its recorded
// direction and subtracted from one traversed against it — the mirror
// of Calculate's walk convention — so the corrections, summed around
// the loop, cancel the measured misclosure exactly: re-running
// Calculate on the same path immediately afterwards yields a distance
// within floating-point tolerance of zero.
//
// Shots are rewritten in place (Length/Azimuth/Clino, degrees); no
// station or survey is touched. When cerr is already consistent
// (misclosure below geom.Epsilon) Propagate returns (false, nil)
// without mutating anything.
//
// Errors: the same validation set as Calculate.
func Propagate(path []string, net *survey.Network, cerr ClosureError) (bool, error) {
	// 1) A consistent loop needs no correction.
	if cerr.Consistent() {
		return false, nil
	}

	// 2) Same up-front rejection as Calculate, so a malformed path can
	//    never be half-corrected.
	if err := ValidatePath(path, net); err != nil {
		return false, err
	}

	// 3) Resolve every leg's shot before mutating any of them:
	//    a missing shot must fail the whole call, not strand the loop
	//    partially adjusted.
	shots := make([]*survey.Shot, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		sh, err := net.ConnectingShot(path[i], path[i+1])
		if err != nil {
			return false, fmt.Errorf("closure: Propagate: %w", err)
		}
		shots = append(shots, sh)
	}

	// 4) Rewrite each shot with its length-proportional share.
	for i, sh := range shots {
		correction := cerr.Misclosure.Scale(sh.Length / cerr.TotalLength).ToVector()

		corrected := sh.Vector()
		if sh.From == path[i] {
			corrected = corrected.Add(correction)
		} else {
			corrected = corrected.Sub(correction)
		}

		sh.SetPolar(corrected.ToPolar())
	}

	return true, nil
}

// Close measures and, when necessary, distributes a loop's closure
// error in one call. It returns the error as measured before any
// correction and whether shots were rewritten.
func Close(path []string, net *survey.Network) (ClosureError, bool, error) {
	cerr, err := Calculate(path, net)
	if err != nil {
		return ClosureError{}, false, err
	}

	changed, err := Propagate(path, net, cerr)
	if err != nil {
		return ClosureError{}, false, err
	}

	return cerr, changed, nil
}
