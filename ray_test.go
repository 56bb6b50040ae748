package xgeom_test

import (
	"math"
	"testing"

	"deedles.dev/xgeom"
	"github.com/stretchr/testify/require"
)

type testMedium struct{ name string }

func TestNewRayDefaults(t *testing.T) {
	o := xgeom.Pt3[xgeom.Float](1, 2, 3)
	d := xgeom.V3[xgeom.Float](4, 5, 6)

	r := xgeom.NewRay(o, d)
	require.Equal(t, o, r.Origin)
	require.Equal(t, d, r.Direction)
	require.Equal(t, xgeom.Infinity(), r.TMax)
	require.Equal(t, xgeom.Float(0), r.Time)
	require.Nil(t, r.Medium)
}

func TestRayMediumHandle(t *testing.T) {
	m := &testMedium{name: "fog"}

	r := xgeom.NewRay(xgeom.Pt3[xgeom.Float](0, 0, 0), xgeom.V3[xgeom.Float](0, 0, 1))
	r.Medium = m

	// The ray stores the handle itself, not a copy of the referent.
	require.Same(t, m, r.Medium)
}

func TestRayAt(t *testing.T) {
	r := xgeom.NewRay(
		xgeom.Pt3[xgeom.Float](1, 2, 3),
		xgeom.V3[xgeom.Float](2, 2, 2),
	)

	require.Equal(t, xgeom.Pt3[xgeom.Float](2, 3, 4), r.At(0.5))
	require.Equal(t, xgeom.Pt3[xgeom.Float](5, 6, 7), r.At(2))
	require.Equal(t, r.Origin, r.At(0))
}

func TestRayAtIgnoresTMax(t *testing.T) {
	r := xgeom.NewRay(
		xgeom.Pt3[xgeom.Float](0, 0, 0),
		xgeom.V3[xgeom.Float](1, 0, 0),
	)
	r.TMax = 1

	// Evaluation never clamps; the ceiling is the caller's to honor.
	require.Equal(t, xgeom.Pt3[xgeom.Float](10, 0, 0), r.At(10))
}

func TestRayHasNaN(t *testing.T) {
	r := xgeom.NewRay(
		xgeom.Pt3[xgeom.Float](1, 2, 3),
		xgeom.V3[xgeom.Float](4, 5, 6),
	)
	require.False(t, r.HasNaN())

	r.TMax = xgeom.Float(math.NaN())
	require.True(t, r.HasNaN())
}

func TestRayDifferentialFrom(t *testing.T) {
	r := xgeom.NewRay(
		xgeom.Pt3[xgeom.Float](1, 2, 3),
		xgeom.V3[xgeom.Float](4, 5, 6),
	)

	rd := xgeom.RayDifferentialFrom(r)
	require.Equal(t, r, rd.Ray)
	require.False(t, rd.HasDifferentials)
	require.False(t, rd.HasNaN())
}

func TestNewRayDifferential(t *testing.T) {
	rd := xgeom.NewRayDifferential(
		xgeom.Pt3[xgeom.Float](1, 2, 3),
		xgeom.V3[xgeom.Float](4, 5, 6),
	)
	require.Equal(t, xgeom.Infinity(), rd.TMax)
	require.False(t, rd.HasDifferentials)
	require.Equal(t, xgeom.Point3f{}, rd.RxOrigin)
	require.Equal(t, xgeom.Vector3f{}, rd.RyDirection)
}

func TestScaleDifferentials(t *testing.T) {
	rd := xgeom.NewRayDifferential(
		xgeom.Pt3[xgeom.Float](1, 2, 3),
		xgeom.V3[xgeom.Float](4, 5, 6),
	)
	rd.HasDifferentials = true
	rd.RxOrigin = xgeom.Pt3[xgeom.Float](1, 2, 4)
	rd.RyOrigin = xgeom.Pt3[xgeom.Float](1, 2, 5)
	rd.RxDirection = xgeom.V3[xgeom.Float](4, 5, 7)
	rd.RyDirection = xgeom.V3[xgeom.Float](4, 5, 8)

	rd.ScaleDifferentials(2)

	require.Equal(t, xgeom.Pt3[xgeom.Float](1, 2, 5), rd.RxOrigin)
	require.Equal(t, xgeom.Pt3[xgeom.Float](1, 2, 7), rd.RyOrigin)
	require.Equal(t, xgeom.V3[xgeom.Float](4, 5, 8), rd.RxDirection)
	require.Equal(t, xgeom.V3[xgeom.Float](4, 5, 10), rd.RyDirection)
}

func TestScaleDifferentialsShrink(t *testing.T) {
	rd := xgeom.NewRayDifferential(
		xgeom.Pt3[xgeom.Float](0, 0, 0),
		xgeom.V3[xgeom.Float](0, 0, 1),
	)
	rd.HasDifferentials = true
	rd.RxOrigin = xgeom.Pt3[xgeom.Float](4, 0, 0)
	rd.RyOrigin = xgeom.Pt3[xgeom.Float](0, 4, 0)

	rd.ScaleDifferentials(0.25)

	require.Equal(t, xgeom.Pt3[xgeom.Float](1, 0, 0), rd.RxOrigin)
	require.Equal(t, xgeom.Pt3[xgeom.Float](0, 1, 0), rd.RyOrigin)
}

func TestRayDifferentialHasNaN(t *testing.T) {
	nan := xgeom.Float(math.NaN())

	rd := xgeom.NewRayDifferential(
		xgeom.Pt3[xgeom.Float](1, 2, 3),
		xgeom.V3[xgeom.Float](4, 5, 6),
	)
	rd.RxOrigin = xgeom.Point3f{X: nan}

	// Unset auxiliary data is defaulted, not user-supplied, and is
	// never NaN-checked.
	require.False(t, rd.HasNaN())

	rd.HasDifferentials = true
	require.True(t, rd.HasNaN())
}
