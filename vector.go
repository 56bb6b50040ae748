package xgeom

import "fmt"

// Vector2 is a free 2D vector: a displacement or direction with a
// magnitude, as opposed to a Point2, which is a position. The two are
// kept apart by their algebra rather than their layout; see Point2 for
// the affine rules.
type Vector2[T Scalar] struct {
	X, Y T
}

// Vector3 is a free 3D vector. See Vector2.
type Vector3[T Scalar] struct {
	X, Y, Z T
}

// Aliases for the two scalar families the kernel is instantiated with.
type (
	Vector2f = Vector2[Float]
	Vector2i = Vector2[int32]
	Vector3f = Vector3[Float]
	Vector3i = Vector3[int32]
)

// V2 returns the vector (x, y).
func V2[T Scalar](x, y T) Vector2[T] {
	checkNaN(x)
	checkNaN(y)
	return Vector2[T]{x, y}
}

// V3 returns the vector (x, y, z).
func V3[T Scalar](x, y, z T) Vector3[T] {
	checkNaN(x)
	checkNaN(y)
	checkNaN(z)
	return Vector3[T]{x, y, z}
}

// check guards an arithmetic operand. Operations check only one of
// their two operands: enough to surface corruption near its source
// without paying for both checks on every hot-path call.
func (v Vector2[T]) check() {
	if checking && v.HasNaN() {
		panic("xgeom: NaN vector operand")
	}
}

func (v Vector3[T]) check() {
	if checking && v.HasNaN() {
		panic("xgeom: NaN vector operand")
	}
}

// HasNaN reports whether any component is NaN. Always false for
// integer instantiations.
func (v Vector2[T]) HasNaN() bool {
	return isNaN(v.X) || isNaN(v.Y)
}

// HasNaN reports whether any component is NaN.
func (v Vector3[T]) HasNaN() bool {
	return isNaN(v.X) || isNaN(v.Y) || isNaN(v.Z)
}

// Add returns v + w.
func (v Vector2[T]) Add(w Vector2[T]) Vector2[T] {
	v.check()
	return V2(v.X+w.X, v.Y+w.Y)
}

// Add returns v + w.
func (v Vector3[T]) Add(w Vector3[T]) Vector3[T] {
	v.check()
	return V3(v.X+w.X, v.Y+w.Y, v.Z+w.Z)
}

// Sub returns v - w.
func (v Vector2[T]) Sub(w Vector2[T]) Vector2[T] {
	w.check()
	return V2(v.X-w.X, v.Y-w.Y)
}

// Sub returns v - w.
func (v Vector3[T]) Sub(w Vector3[T]) Vector3[T] {
	w.check()
	return V3(v.X-w.X, v.Y-w.Y, v.Z-w.Z)
}

// Scale returns v scaled by s.
func (v Vector2[T]) Scale(s T) Vector2[T] {
	checkNaN(s)
	return V2(v.X*s, v.Y*s)
}

// Scale returns v scaled by s.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	checkNaN(s)
	return V3(v.X*s, v.Y*s, v.Z*s)
}

// Div returns v divided by s. Dividing by the scalar zero is a
// programmer error and panics while checking is enabled.
func (v Vector2[T]) Div(s T) Vector2[T] {
	checkDivisor(s)
	return V2(v.X/s, v.Y/s)
}

// Div returns v divided by s.
func (v Vector3[T]) Div(s T) Vector3[T] {
	checkDivisor(s)
	return V3(v.X/s, v.Y/s, v.Z/s)
}

// Neg returns -v.
func (v Vector2[T]) Neg() Vector2[T] {
	return V2(-v.X, -v.Y)
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] {
	return V3(-v.X, -v.Y, -v.Z)
}

// LengthSquared returns the squared magnitude of v as the canonical
// Float, whatever the scalar.
func (v Vector2[T]) LengthSquared() Float {
	return Float(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude of v as the canonical
// Float.
func (v Vector3[T]) LengthSquared() Float {
	return Float(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Length returns the magnitude of v.
func (v Vector2[T]) Length() Float {
	return sqrt(v.LengthSquared())
}

// Length returns the magnitude of v.
func (v Vector3[T]) Length() Float {
	return sqrt(v.LengthSquared())
}

// Index returns component i, with 0 mapping to X and 1 to Y. Any
// other index panics in every build: it is a logic defect, not a
// recoverable condition.
func (v Vector2[T]) Index(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic(fmt.Sprintf("xgeom: index %d out of range for Vector2", i))
	}
}

// Index returns component i, with 0, 1, 2 mapping to X, Y, Z. Any
// other index panics in every build.
func (v Vector3[T]) Index(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Sprintf("xgeom: index %d out of range for Vector3", i))
	}
}

// Point reinterprets v as the position reached by displacing the
// origin by v.
func (v Vector2[T]) Point() Point2[T] {
	return Point2[T](v)
}

// Point reinterprets v as the position reached by displacing the
// origin by v.
func (v Vector3[T]) Point() Point3[T] {
	return Point3[T](v)
}
