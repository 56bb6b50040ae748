//go:build !geomdouble

package xgeom

import "github.com/chewxy/math32"

// Float is the canonical floating type used throughout the kernel for
// lengths, interpolation parameters, and ray times. The default build
// uses single precision; building with the geomdouble tag switches the
// whole module to float64.
type Float = float32

var infinity = math32.Inf(1)

func sqrt(x Float) Float { return math32.Sqrt(x) }
