//go:build geomnocheck

package xgeom

// checking is off: NaN and zero-divisor guards compile to nothing.
// Component index range checks still panic in this build.
const checking = false
