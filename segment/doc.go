// Package segment splits property paths into segments.
//
// A path is a dot separated list of segments, each optionally carrying a
// trailing index in square brackets:
//
//	order.items[3].price
//	lookup[a.b.c]
//	grid[1][2]
//
// Dots inside brackets do not separate segments, so "lookup[a.b.c]" is a
// single segment named "lookup" with the index "a.b.c". The index is kept
// as an opaque string; interpreting it as a position or a map key is up to
// the container it is applied to.
//
// Splitting never fails. Brackets that do not match are kept as part of
// the segment name.
package segment
