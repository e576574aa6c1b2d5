// Package convert coerces values into the declared types of the properties
// they are written to.
//
// A Manager applies, in order:
//   - assignment, when the source is assignable to the destination;
//   - registered casters, looked up by exact (source, destination) pair;
//   - pointer wrapping and unwrapping;
//   - decimal.Decimal and uuid.UUID coercions;
//   - primitive conversions (see package primitive);
//   - encoding.TextUnmarshaler and fmt.Stringer;
//   - element-wise conversions of slices, arrays and maps;
//   - formatting to string as the last resort.
//
// Every step except assignment, casters and pointers is gated by the
// categories the Manager was built with (see options.CategoryEnum).
package convert
