//go:build !geomnocheck

package xgeom

// checking gates the NaN and zero-divisor guards in constructors and
// arithmetic. It is on by default and compiled out entirely under the
// geomnocheck build tag; the range checks on component indexing are
// unconditional and unaffected by this switch.
const checking = true
