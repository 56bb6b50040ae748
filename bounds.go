package xgeom

import "fmt"

// Bounds2 is an axis-aligned box over 2D points, held as its two
// extreme corners. After construction through B2 or any Union,
// Min.X <= Max.X and Min.Y <= Max.Y holds; code that fills the corners
// in by hand is on its own.
type Bounds2[T Scalar] struct {
	Min, Max Point2[T]
}

type (
	Bounds2f = Bounds2[Float]
	Bounds2i = Bounds2[int32]
)

// EmptyB2 returns the degenerate empty bounds: Min at the scalar's
// highest value and Max at its lowest on every axis, so that the first
// point unioned in wins both corners outright.
func EmptyB2[T Scalar]() Bounds2[T] {
	return Bounds2[T]{
		Min: Point2[T]{maxValue[T](), maxValue[T]()},
		Max: Point2[T]{minValue[T](), minValue[T]()},
	}
}

// B2 returns the bounds with p1 and p2 as opposite corners. The
// corners are resolved per axis, so argument order does not matter.
func B2[T Scalar](p1, p2 Point2[T]) Bounds2[T] {
	return Bounds2[T]{
		Min: Pt2(min(p1.X, p2.X), min(p1.Y, p2.Y)),
		Max: Pt2(max(p1.X, p2.X), max(p1.Y, p2.Y)),
	}
}

// Union returns b grown to include p.
func (b Bounds2[T]) Union(p Point2[T]) Bounds2[T] {
	return Bounds2[T]{
		Min: Point2[T]{min(b.Min.X, p.X), min(b.Min.Y, p.Y)},
		Max: Point2[T]{max(b.Max.X, p.X), max(b.Max.Y, p.Y)},
	}
}

// UnionB returns b grown to include all of o.
func (b Bounds2[T]) UnionB(o Bounds2[T]) Bounds2[T] {
	return Bounds2[T]{
		Min: Point2[T]{min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y)},
		Max: Point2[T]{max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y)},
	}
}

// Diagonal returns the vector from Min to Max.
func (b Bounds2[T]) Diagonal() Vector2[T] {
	return b.Max.Sub(b.Min)
}

// Area returns the area enclosed by b. A negative result means the
// corner invariant was violated upstream.
func (b Bounds2[T]) Area() T {
	d := b.Diagonal()
	return d.X * d.Y
}

// MaximumExtent returns the axis index of the diagonal's larger
// component, 0 for x and 1 for y. Ties resolve to the x axis; spatial
// partitioning code depends on that tie-break.
func (b Bounds2[T]) MaximumExtent() int {
	d := b.Diagonal()
	if d.X >= d.Y {
		return 0
	}
	return 1
}

// Lerp interpolates between the corners of b with a per-axis
// parameter: t=(0,0) yields Min and t=(1,1) yields Max. Interpolation
// runs in the canonical floating domain and narrows back to the
// scalar.
func (b Bounds2[T]) Lerp(t Point2f) Point2[T] {
	return Pt2(
		T(Lerp(t.X, Float(b.Min.X), Float(b.Max.X))),
		T(Lerp(t.Y, Float(b.Min.Y), Float(b.Max.Y))),
	)
}

// Offset returns the position of p relative to b, normalized so that
// Min maps to (0,0) and Max to (1,1). An axis with zero extent is left
// un-normalized (the raw p−Min component) instead of dividing by zero.
func (b Bounds2[T]) Offset(p Point2[T]) Vector2[T] {
	o := p.Sub(b.Min)
	if b.Max.X > b.Min.X {
		o.X /= b.Max.X - b.Min.X
	}
	if b.Max.Y > b.Min.Y {
		o.Y /= b.Max.Y - b.Min.Y
	}
	return o
}

// In reports whether p lies within b, inclusive on both corners.
func (p Point2[T]) In(b Bounds2[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// InExclusive reports whether p lies within b under half-open
// membership: inclusive on Min, exclusive on Max. Integer bounds use
// this to tile a plane without points landing in two boxes.
func (p Point2[T]) InExclusive(b Bounds2[T]) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// BoundingSphere returns the center and radius of a circle enclosing
// b: the midpoint of the corners, and its distance to Max. A
// degenerate box whose midpoint falls outside it gets radius zero.
func (b Bounds2[T]) BoundingSphere() (center Point2[T], radius Float) {
	center = b.Min.AddPoint(b.Max).Div(T(2))
	if center.In(b) {
		radius = center.Distance(b.Max)
	}
	return center, radius
}

// Index returns corner i, with 0 mapping to Min and 1 to Max. Any
// other index panics in every build.
func (b Bounds2[T]) Index(i int) Point2[T] {
	switch i {
	case 0:
		return b.Min
	case 1:
		return b.Max
	default:
		panic(fmt.Sprintf("xgeom: index %d out of range for Bounds2", i))
	}
}
