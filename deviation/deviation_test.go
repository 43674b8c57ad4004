package deviation_test

import (
	"testing"

	"github.com/speleolab/loopclose/builder"
	"github.com/speleolab/loopclose/closure"
	"github.com/speleolab/loopclose/deviation"
	"github.com/speleolab/loopclose/geom"
	"github.com/speleolab/loopclose/survey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rightTriangle builds a consistent 3-station loop A→B→C→A whose
// positions match its shots exactly, and returns it with its path.
// Legs: A→B 10 m north, B→C 10 m east, C→A back along the hypotenuse.
func rightTriangle(t *testing.T) (*survey.Network, []string) {
	t.Helper()
	net := survey.NewNetwork()

	a, err := net.AddStation("A", geom.Vector3{})
	require.NoError(t, err)
	_, err = net.AddStation("B", geom.Vector3{Y: 10})
	require.NoError(t, err)
	c, err := net.AddStation("C", geom.Vector3{X: 10, Y: 10})
	require.NoError(t, err)

	_, err = net.AddShot(nil, "A", "B", 10, 0, 0, survey.Centerline)
	require.NoError(t, err)
	_, err = net.AddShot(nil, "B", "C", 10, 90, 0, survey.Centerline)
	require.NoError(t, err)

	// Closing leg along the hypotenuse, derived from the positions so
	// the fixture starts perfectly consistent.
	back := a.Position.Sub(c.Position).ToPolar()
	_, err = net.AddShot(nil, "C", "A", back.Distance, geom.Degrees(back.Azimuth), geom.Degrees(back.Inclination), survey.Centerline)
	require.NoError(t, err)

	return net, []string{"A", "B", "C", "A"}
}

// TestFind_ConsistentLoopIsQuiet verifies that shots agreeing with
// their endpoint positions produce no records.
func TestFind_ConsistentLoopIsQuiet(t *testing.T) {
	net, path := rightTriangle(t)

	records, err := deviation.Find(path, net)
	require.NoError(t, err)
	assert.Empty(t, records, "nothing deviates in a consistent loop")
}

// TestFind_ThresholdIsExclusive verifies the reporting boundary: a
// mismatch at the threshold is noise, one just above it is a finding.
func TestFind_ThresholdIsExclusive(t *testing.T) {
	net, path := rightTriangle(t)
	sh, err := net.ConnectingShot("A", "B")
	require.NoError(t, err)

	// 1) Stretch A→B by the threshold itself: mismatch ≤ 0.01, quiet.
	sh.Length = 10.01
	records, err := deviation.Find(path, net)
	require.NoError(t, err)
	assert.Empty(t, records, "mismatch at the threshold is not reported")

	// 2) A hair past the threshold: reported.
	sh.Length = 10.0101
	records, err = deviation.Find(path, net)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Same(t, sh, records[0].Shot)
	assert.InDelta(t, 0.0101, records[0].Diff.Length(), 1e-9)

	// 3) The proposal closes the mismatch exactly: back to 10 m north.
	assert.InDelta(t, 10, records[0].Length, 1e-9)
	assert.InDelta(t, 0, records[0].Azimuth, 1e-9)
	assert.InDelta(t, 0, records[0].Clino, 1e-9)
}

// TestFind_CorrectedFrameAndRawProposal verifies that detection runs
// in the declination+convergence-corrected frame and that the proposed
// azimuth is shifted back to raw form.
func TestFind_CorrectedFrameAndRawProposal(t *testing.T) {
	// Pentagon surveyed at declination 2.5°; leg 2 drifts 1.5°.
	net, path, err := builder.ClosedTraverse(5,
		builder.WithCorrections(2.5, 0),
		builder.WithAzimuthError(2, 1.5),
	)
	require.NoError(t, err)

	records, err := deviation.Find(path, net)
	require.NoError(t, err)
	require.Len(t, records, 1, "only the drifted leg deviates")

	r := records[0]
	assert.Equal(t, "ST2", r.Shot.From)
	assert.Equal(t, "ST3", r.Shot.To)
	assert.Equal(t, 2.5, r.Declination)
	assert.Equal(t, 0.0, r.Convergence)

	// Leg 2's true bearing on a pentagon is 2·72° = 144°; the raw
	// proposal has the declination subtracted back out.
	assert.InDelta(t, 144-2.5, r.Azimuth, 1e-9)
	assert.InDelta(t, 10, r.Length, 1e-9)
}

// TestAdjust_AppliesProposalsInPlace verifies Adjust rewrites the
// flagged shots so a second Find pass is quiet, and reports whether
// anything was applied.
func TestAdjust_AppliesProposalsInPlace(t *testing.T) {
	net, path, err := builder.ClosedTraverse(5,
		builder.WithCorrections(2.5, 0),
		builder.WithAzimuthError(2, 1.5),
	)
	require.NoError(t, err)

	records, err := deviation.Find(path, net)
	require.NoError(t, err)
	require.NotEmpty(t, records)

	assert.True(t, deviation.Adjust(records), "at least one proposal applied")

	again, err := deviation.Find(path, net)
	require.NoError(t, err)
	assert.Empty(t, again, "adjusted shots agree with the positions")

	assert.False(t, deviation.Adjust(nil), "empty input applies nothing")
}

// TestFind_WithThreshold verifies the functional option, including the
// ignore-nonpositive rule.
func TestFind_WithThreshold(t *testing.T) {
	net, path := rightTriangle(t)
	sh, err := net.ConnectingShot("B", "C")
	require.NoError(t, err)
	sh.Length = 10.005 // 5 mm past true, below the stock threshold

	records, err := deviation.Find(path, net)
	require.NoError(t, err)
	assert.Empty(t, records, "under the default 0.01")

	records, err = deviation.Find(path, net, deviation.WithThreshold(0.001))
	require.NoError(t, err)
	assert.Len(t, records, 1, "tighter threshold reports it")

	records, err = deviation.Find(path, net, deviation.WithThreshold(-1))
	require.NoError(t, err)
	assert.Empty(t, records, "non-positive threshold falls back to the default")
}

// TestFind_PathValidation verifies the closure package's validation
// set guards Find as well.
func TestFind_PathValidation(t *testing.T) {
	net, _ := rightTriangle(t)

	_, err := deviation.Find([]string{"A", "B", "C"}, net)
	assert.ErrorIs(t, err, closure.ErrOpenPath)

	_, err = deviation.Find([]string{"A"}, net)
	assert.ErrorIs(t, err, closure.ErrPathTooShort)

	_, err = deviation.Find([]string{"A", "X", "A"}, net)
	assert.ErrorIs(t, err, closure.ErrUnknownStation)
}
