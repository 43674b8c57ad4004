package builder_test

import (
	"math"
	"testing"

	"github.com/speleolab/loopclose/builder"
	"github.com/speleolab/loopclose/geom"
	"github.com/speleolab/loopclose/survey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClosedTraverse_SquareLayout verifies names, path shape and the
// walked positions of the canonical 4-station square.
func TestClosedTraverse_SquareLayout(t *testing.T) {
	net, path, err := builder.ClosedTraverse(4)
	require.NoError(t, err)

	assert.Equal(t, []string{"ST0", "ST1", "ST2", "ST3", "ST0"}, path, "closed path")
	assert.Equal(t, []string{"ST0", "ST1", "ST2", "ST3"}, net.Stations())

	want := map[string]geom.Vector3{
		"ST0": {},
		"ST1": {Y: 10},
		"ST2": {X: 10, Y: 10},
		"ST3": {X: 10},
	}
	for name, pos := range want {
		st, ok := net.Station(name)
		require.True(t, ok)
		assert.InDelta(t, pos.X, st.Position.X, 1e-12, "%s.X", name)
		assert.InDelta(t, pos.Y, st.Position.Y, 1e-12, "%s.Y", name)
		assert.InDelta(t, pos.Z, st.Position.Z, 1e-12, "%s.Z", name)
	}
}

// TestClosedTraverse_Validation verifies the sentinel rejects.
func TestClosedTraverse_Validation(t *testing.T) {
	_, _, err := builder.ClosedTraverse(2)
	assert.ErrorIs(t, err, builder.ErrTooFewStations)

	_, _, err = builder.ClosedTraverse(4, builder.WithLegLength(0))
	assert.ErrorIs(t, err, builder.ErrBadLegLength)

	_, _, err = builder.ClosedTraverse(4, builder.WithAzimuthError(4, 1))
	assert.ErrorIs(t, err, builder.ErrLegIndex)

	_, _, err = builder.ClosedTraverse(4, builder.WithAzimuthError(-1, 1))
	assert.ErrorIs(t, err, builder.ErrLegIndex)
}

// TestClosedTraverse_Deterministic verifies two identical builds agree
// shot for shot.
func TestClosedTraverse_Deterministic(t *testing.T) {
	opts := []builder.Option{
		builder.WithLegLength(12.5),
		builder.WithCorrections(1.5, -0.25),
		builder.WithAzimuthError(1, 0.75),
	}
	netA, pathA, err := builder.ClosedTraverse(6, opts...)
	require.NoError(t, err)
	netB, pathB, err := builder.ClosedTraverse(6, opts...)
	require.NoError(t, err)

	assert.Equal(t, pathA, pathB)
	for i := 0; i+1 < len(pathA); i++ {
		a, err := netA.ConnectingShot(pathA[i], pathA[i+1])
		require.NoError(t, err)
		b, err := netB.ConnectingShot(pathB[i], pathB[i+1])
		require.NoError(t, err)
		assert.Equal(t, a.From, b.From, "leg %d", i)
		assert.Equal(t, a.To, b.To, "leg %d", i)
		assert.Equal(t, a.Length, b.Length, "leg %d", i)
		assert.Equal(t, a.Azimuth, b.Azimuth, "leg %d", i)
		assert.Equal(t, a.Clino, b.Clino, "leg %d", i)
	}
}

// TestClosedTraverse_CorrectionsShiftRawAzimuth verifies the stored
// bearings are raw while the corrected frame walks the ideal polygon.
func TestClosedTraverse_CorrectionsShiftRawAzimuth(t *testing.T) {
	net, path, err := builder.ClosedTraverse(4, builder.WithCorrections(3, 1))
	require.NoError(t, err)

	sh, err := net.ConnectingShot(path[0], path[1])
	require.NoError(t, err)
	assert.InDelta(t, -4, sh.Azimuth, 1e-12, "raw bearing = true 0° − corrections")

	v := sh.CorrectedVector()
	assert.InDelta(t, 0, v.X, 1e-9, "corrected frame points true north")
	assert.InDelta(t, 10, v.Y, 1e-9)
}

// TestClosedTraverse_ClinoClimbs verifies that a constant clino makes
// the loop gain n·leg·sin(clino) of height over a full circuit — a
// manufactured vertical misclosure.
func TestClosedTraverse_ClinoClimbs(t *testing.T) {
	const clino = 5.0
	net, path, err := builder.ClosedTraverse(4, builder.WithClino(clino))
	require.NoError(t, err)

	var z float64
	for i := 0; i+1 < len(path); i++ {
		sh, err := net.ConnectingShot(path[i], path[i+1])
		require.NoError(t, err)
		z += sh.VectorFrom(path[i]).Z
	}

	want := 4 * 10 * math.Sin(geom.Radians(clino))
	assert.InDelta(t, want, z, 1e-9, "climb accumulated around the loop")
}

// TestClosedTraverse_AllCenterline verifies every emitted leg is a
// centerline shot owned by the synthetic survey.
func TestClosedTraverse_AllCenterline(t *testing.T) {
	net, path, err := builder.ClosedTraverse(5)
	require.NoError(t, err)

	require.Len(t, net.Surveys(), 1)
	sv := net.Surveys()[0]
	assert.Len(t, sv.Shots, 5)
	for i := 0; i+1 < len(path); i++ {
		sh, err := net.ConnectingShot(path[i], path[i+1])
		require.NoError(t, err)
		assert.Equal(t, survey.Centerline, sh.Kind)
		assert.Same(t, sv, sh.Survey)
	}
}
