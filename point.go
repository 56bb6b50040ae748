package xgeom

import "fmt"

// Point2 is an affine 2D position. Points and vectors share a layout
// but not an algebra: subtracting two points yields the vector between
// them, and adding a vector to a point yields another point. Adding
// two points is not an affine operation; AddPoint exists anyway as a
// convenience for centroid and averaging computations and is
// documented as such.
type Point2[T Scalar] struct {
	X, Y T
}

// Point3 is an affine 3D position. See Point2.
type Point3[T Scalar] struct {
	X, Y, Z T
}

type (
	Point2f = Point2[Float]
	Point2i = Point2[int32]
	Point3f = Point3[Float]
	Point3i = Point3[int32]
)

// Pt2 returns the point (x, y).
func Pt2[T Scalar](x, y T) Point2[T] {
	checkNaN(x)
	checkNaN(y)
	return Point2[T]{x, y}
}

// Pt3 returns the point (x, y, z).
func Pt3[T Scalar](x, y, z T) Point3[T] {
	checkNaN(x)
	checkNaN(y)
	checkNaN(z)
	return Point3[T]{x, y, z}
}

func (p Point2[T]) check() {
	if checking && p.HasNaN() {
		panic("xgeom: NaN point operand")
	}
}

func (p Point3[T]) check() {
	if checking && p.HasNaN() {
		panic("xgeom: NaN point operand")
	}
}

// HasNaN reports whether any component is NaN.
func (p Point2[T]) HasNaN() bool {
	return isNaN(p.X) || isNaN(p.Y)
}

// HasNaN reports whether any component is NaN.
func (p Point3[T]) HasNaN() bool {
	return isNaN(p.X) || isNaN(p.Y) || isNaN(p.Z)
}

// Add returns the point reached by displacing p by v.
func (p Point2[T]) Add(v Vector2[T]) Point2[T] {
	p.check()
	return Pt2(p.X+v.X, p.Y+v.Y)
}

// Add returns the point reached by displacing p by v.
func (p Point3[T]) Add(v Vector3[T]) Point3[T] {
	p.check()
	return Pt3(p.X+v.X, p.Y+v.Y, p.Z+v.Z)
}

// Sub returns the vector from q to p.
func (p Point2[T]) Sub(q Point2[T]) Vector2[T] {
	q.check()
	return V2(p.X-q.X, p.Y-q.Y)
}

// Sub returns the vector from q to p.
func (p Point3[T]) Sub(q Point3[T]) Vector3[T] {
	q.check()
	return V3(p.X-q.X, p.Y-q.Y, p.Z-q.Z)
}

// SubVector returns the point reached by displacing p by -v.
func (p Point2[T]) SubVector(v Vector2[T]) Point2[T] {
	v.check()
	return Pt2(p.X-v.X, p.Y-v.Y)
}

// SubVector returns the point reached by displacing p by -v.
func (p Point3[T]) SubVector(v Vector3[T]) Point3[T] {
	v.check()
	return Pt3(p.X-v.X, p.Y-v.Y, p.Z-v.Z)
}

// AddPoint returns the component-wise sum of two points. This is not
// standard affine arithmetic; it exists so that centroids can be
// written as a sum of points divided by their count.
func (p Point2[T]) AddPoint(q Point2[T]) Point2[T] {
	p.check()
	return Pt2(p.X+q.X, p.Y+q.Y)
}

// AddPoint returns the component-wise sum of two points. See the
// Point2 variant for the affine caveat.
func (p Point3[T]) AddPoint(q Point3[T]) Point3[T] {
	p.check()
	return Pt3(p.X+q.X, p.Y+q.Y, p.Z+q.Z)
}

// Scale returns p with every component scaled by s.
func (p Point2[T]) Scale(s T) Point2[T] {
	checkNaN(s)
	return Pt2(p.X*s, p.Y*s)
}

// Scale returns p with every component scaled by s.
func (p Point3[T]) Scale(s T) Point3[T] {
	checkNaN(s)
	return Pt3(p.X*s, p.Y*s, p.Z*s)
}

// Div returns p with every component divided by s.
func (p Point2[T]) Div(s T) Point2[T] {
	checkDivisor(s)
	return Pt2(p.X/s, p.Y/s)
}

// Div returns p with every component divided by s.
func (p Point3[T]) Div(s T) Point3[T] {
	checkDivisor(s)
	return Pt3(p.X/s, p.Y/s, p.Z/s)
}

// Neg returns p with every component negated.
func (p Point2[T]) Neg() Point2[T] {
	return Pt2(-p.X, -p.Y)
}

// Neg returns p with every component negated.
func (p Point3[T]) Neg() Point3[T] {
	return Pt3(-p.X, -p.Y, -p.Z)
}

// Distance returns the distance between p and q.
func (p Point2[T]) Distance(q Point2[T]) Float {
	return p.Sub(q).Length()
}

// Distance returns the distance between p and q.
func (p Point3[T]) Distance(q Point3[T]) Float {
	return p.Sub(q).Length()
}

// DistanceSquared returns the squared distance between p and q.
func (p Point2[T]) DistanceSquared(q Point2[T]) Float {
	return p.Sub(q).LengthSquared()
}

// DistanceSquared returns the squared distance between p and q.
func (p Point3[T]) DistanceSquared(q Point3[T]) Float {
	return p.Sub(q).LengthSquared()
}

// Lerp interpolates between p at t=0 and q at t=1. Interpolation is
// always computed in the canonical floating domain and narrowed back
// to the scalar, so integer points interpolate to truncated results.
func (p Point2[T]) Lerp(q Point2[T], t Float) Point2[T] {
	return Pt2(
		T(Lerp(t, Float(p.X), Float(q.X))),
		T(Lerp(t, Float(p.Y), Float(q.Y))),
	)
}

// Lerp interpolates between p at t=0 and q at t=1 in the canonical
// floating domain. See the Point2 variant for the narrowing rule.
func (p Point3[T]) Lerp(q Point3[T], t Float) Point3[T] {
	return Pt3(
		T(Lerp(t, Float(p.X), Float(q.X))),
		T(Lerp(t, Float(p.Y), Float(q.Y))),
		T(Lerp(t, Float(p.Z), Float(q.Z))),
	)
}

// Index returns component i, with 0 mapping to X and 1 to Y. Any
// other index panics in every build.
func (p Point2[T]) Index(i int) T {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		panic(fmt.Sprintf("xgeom: index %d out of range for Point2", i))
	}
}

// Index returns component i, with 0, 1, 2 mapping to X, Y, Z. Any
// other index panics in every build.
func (p Point3[T]) Index(i int) T {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	default:
		panic(fmt.Sprintf("xgeom: index %d out of range for Point3", i))
	}
}

// Vector reinterprets p as its displacement from the origin.
func (p Point2[T]) Vector() Vector2[T] {
	return Vector2[T](p)
}

// Vector reinterprets p as its displacement from the origin.
func (p Point3[T]) Vector() Vector3[T] {
	return Vector3[T](p)
}
