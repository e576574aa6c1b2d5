package options

import "strings"

// CategoryEnum selects which families of conversions a converter may apply
// when a value has to be coerced into a declared type.
type CategoryEnum int

const (
	CategorySafeNumber   CategoryEnum = 1 << iota // int, uint, float without precision loss
	CategoryUnsafeNumber                          // int, uint, float with precision loss or overflow
	CategoryTextNumber                            // int, uint, float <-> string: textual number representation
	CategoryNumericBool                           // int <-> bool: 0, 1 representation of boolean values
	CategoryTextualBool                           // string <-> bool: yes, no, on, off, true, false representation of boolean values
	CategoryDatetime                              // string(RFC3339Nano) <-> time.Time: textual date and time representation
	CategoryTimestamp                             // int(Unix seconds) <-> time.Time: Unix timestamp representation
	CategoryDuration                              // string(2h45m) <-> time.Duration: textual duration representation
	CategoryNanoseconds                           // int(nanoseconds) <-> time.Duration: numerical (integer) duration representation
	CategorySeconds                               // float(seconds) <-> time.Duration: numerical (floating-point) duration representation
	CategoryEnumString                            // string <-> enum: named string/int types, validated through IsValid() when present
	CategorySafeArray                             // slice <-> array: slice perfectly fits into an array
	CategoryUnsafeArray                           // slice <-> array: slice does not fit into an array, slices are cut, arrays leaved with zero values
	CategoryCollection                            // scalar/string/slice/map -> slice, array or map, element by element
	CategoryDecimal                               // string, int, float <-> decimal.Decimal
	CategoryUUID                                  // string, []byte, [16]byte <-> uuid.UUID
	CategoryText                                  // string <-> encoding.TextUnmarshaler / fmt.Stringer, anything -> string

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // no categories selected
)

var categoryNames = []string{
	"safe-number", "unsafe-number", "text-number", "numeric-bool", "textual-bool",
	"datetime", "timestamp", "duration", "nanoseconds", "seconds", "enum-string",
	"safe-array", "unsafe-array", "collection", "decimal", "uuid", "text",
}

// Has reports whether every category of other is enabled in c.
func (c CategoryEnum) Has(other CategoryEnum) bool {
	return c&other == other
}

func (c CategoryEnum) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryAll:
		return "all"
	}

	var parts []string
	for i, name := range categoryNames {
		if c&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}

	return strings.Join(parts, "|")
}
