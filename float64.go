//go:build geomdouble

package xgeom

import "math"

// Float is the canonical floating type used throughout the kernel for
// lengths, interpolation parameters, and ray times. This build selects
// double precision via the geomdouble tag.
type Float = float64

var infinity = math.Inf(1)

func sqrt(x Float) Float { return math.Sqrt(x) }
