// Package bean reads, writes and inspects nested properties of arbitrary
// object graphs addressed by string paths.
//
// A path is a dot separated list of property names, each optionally
// followed by one or more indexes:
//
//	order.items[3].price
//	labels[env.name]
//	grid[1][2]
//	*this
//
// Properties of structs are resolved through an introspect.Introspector:
// tagged fields, exported fields and getter/setter methods. Maps are
// addressed by key, the index text being converted to the key type.
// Slices, arrays, pointers to slices and node.Sequence values are
// addressed by position.
//
// Four operations are offered, both as package functions using a default
// Util and as methods of a configured Util: GetValue, SetValue, HasValue
// and TypeOf. Each takes an options.Mode combining:
//
//   - options.ModeForced: missing structure on the way is created. Nil
//     pointers, maps and interfaces are materialized, slices are grown by
//     copy, sequences are padded and missing map values are inserted.
//   - options.ModeDeclared: unexported struct fields become accessible.
//   - options.ModeSilent: errors are swallowed and the no-op result is
//     returned instead.
//
// HasValue and TypeOf never modify the graph, whatever the mode.
//
// Values held in maps and interfaces are not addressable. Writes below
// them are made on a copy that is stored back into its owner once the
// operation succeeds.
package bean
