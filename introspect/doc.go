// Package introspect discovers the readable and writable properties of Go
// struct types and caches the result per type.
//
// A property is backed by a struct field (promoted fields of embedded
// structs included) and/or accessor methods found in the method set of
// the pointer type:
//
//	Name() T, GetName() T, IsName() T    // getters, optionally returning (T, error)
//	SetName(v T), SetName(v T) error     // setters
//
// Getters win over fields for reads, setters win over fields for writes.
// A field may be renamed with the `bean:"name"` tag (the tag key is
// configurable) or hidden with `bean:"-"`.
//
// Unexported fields are only reachable in declared mode and only through
// addressable values.
package introspect
