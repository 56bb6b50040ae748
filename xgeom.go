// Package xgeom provides the geometric value types that rendering and
// simulation code is built on: 2D and 3D vectors and points,
// axis-aligned bounds, and rays, all parameterized over an
// interchangeable scalar type.
//
// It is patterned after image.Point and image.Rectangle, but
// generalizes them to an arbitrary scalar and to the affine algebra a
// renderer needs: point − point yields a vector, point + vector yields
// a point, and bounds grow by unioning points into them.
//
// Every type is a plain comparable value struct with no heap state, so
// == is component-wise equality and independently-owned values are
// freely usable across goroutines.
//
// # Validation
//
// Constructors and arithmetic guard against NaN components and zero
// divisors. The guards panic and are meant to catch programmer error
// close to its source; build with the geomnocheck tag to compile them
// out of hot paths. Component indexing is range-checked in every
// build.
package xgeom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the component types that xgeom types and
// functions can handle: the build-selected floating type on one hand
// and 32-bit integer coordinates (pixel or voxel space) on the other.
type Scalar interface {
	~int32 | constraints.Float
}
