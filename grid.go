package xgeom

import "iter"

// Points yields every integer point of b in scanline order: x fastest,
// inclusive of Min and exclusive of Max, matching InExclusive
// membership. An empty or inverted bounds yields nothing.
func Points(b Bounds2i) iter.Seq[Point2i] {
	return func(yield func(Point2i) bool) {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if !yield(Pt2(x, y)) {
					return
				}
			}
		}
	}
}

// Tiles yields bounds of at most size per axis that together cover b
// exactly, in scanline order. Tiles on the right and bottom edges are
// clamped to b. Renderers hand these out as rectangular work units.
func Tiles(b Bounds2i, size Vector2i) iter.Seq[Bounds2i] {
	if size.X <= 0 || size.Y <= 0 {
		panic("xgeom: non-positive tile size")
	}
	return func(yield func(Bounds2i) bool) {
		for y := b.Min.Y; y < b.Max.Y; y += size.Y {
			for x := b.Min.X; x < b.Max.X; x += size.X {
				t := Bounds2i{
					Min: Pt2(x, y),
					Max: Pt2(min(x+size.X, b.Max.X), min(y+size.Y, b.Max.Y)),
				}
				if !yield(t) {
					return
				}
			}
		}
	}
}
