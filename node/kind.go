package node

//go:generate go tool stringer -type=ShapeEnum -trimprefix=Shape -output=shape_string.go

// ShapeEnum is the container shape of a value, derived from its runtime type.
type ShapeEnum int

const (
	ShapeUnknown  ShapeEnum = iota // not a container
	ShapeStruct                    // struct, properties resolved by an introspector
	ShapeArray                     // []T grows by copy, [N]T is fixed
	ShapeSequence                  // *[]T or Sequence, pads in place
	ShapeMap                       // map[K]V, keys converted on demand

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// Indexable reports whether values of the shape accept an index.
func (s ShapeEnum) Indexable() bool {
	return s == ShapeArray || s == ShapeSequence || s == ShapeMap
}
