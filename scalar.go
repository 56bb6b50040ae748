package xgeom

import "math"

// Lerp linearly interpolates between s and e in the canonical floating
// domain: t=0 yields s and t=1 yields e.
func Lerp(t, s, e Float) Float {
	return (1-t)*s + t*e
}

// Infinity returns the positive infinity of the selected Float, the
// default ray parameter ceiling.
func Infinity() Float {
	return infinity
}

// isNaN reports whether v is the floating NaN sentinel. An integer
// scalar can never hold one.
func isNaN[T Scalar](v T) bool {
	return v != v
}

// minValue and maxValue return the lowest and highest finite value a
// scalar can hold. The family is resolved from the representation, not
// the exact type, so named scalars (type pixels int32) instantiate the
// sentinels like their underlying type. Empty bounds start from these
// sentinels so that the first point unioned in wins on every axis.

func minValue[T Scalar]() T {
	if T(1)/T(2) == 0 {
		// Integer division truncates; floats never land here.
		return T(math.MinInt32)
	}
	wide := -math.MaxFloat64
	if lo := T(wide); lo/2 != lo {
		return lo
	}
	// The double-width sentinel overflowed to -inf: single precision.
	narrow := float32(-math.MaxFloat32)
	return T(narrow)
}

func maxValue[T Scalar]() T {
	if T(1)/T(2) == 0 {
		return T(math.MaxInt32)
	}
	wide := math.MaxFloat64
	if hi := T(wide); hi/2 != hi {
		return hi
	}
	narrow := float32(math.MaxFloat32)
	return T(narrow)
}

// checkNaN panics if v is NaN. Compiled out under geomnocheck.
func checkNaN[T Scalar](v T) {
	if checking && isNaN(v) {
		panic("xgeom: NaN scalar component")
	}
}

// checkDivisor panics if s is the scalar zero. Compiled out under
// geomnocheck, where division by zero proceeds and may produce inf.
func checkDivisor[T Scalar](s T) {
	if checking && s == 0 {
		panic("xgeom: division by zero scalar")
	}
}
