package match

import (
	"reflect"
)

// TypeCompatibility represents the level of compatibility between two types.
type TypeCompatibility int

const (
	// TypeIncompatible means the types cannot be converted.
	TypeIncompatible TypeCompatibility = iota
	// TypeNeedsTransform means conversion requires a converter beyond Go's conversions.
	TypeNeedsTransform
	// TypeConvertible means types are convertible using Go's type conversion.
	TypeConvertible
	// TypeAssignable means the source type can be directly assigned to the target.
	TypeAssignable
	// TypeIdentical means the types are exactly the same.
	TypeIdentical
)

const (
	VerdictIdentical      = "identical"
	VerdictAssignable     = "assignable"
	VerdictConvertible    = "convertible"
	VerdictNeedsTransform = "needs_transform"
	VerdictIncompatible   = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c TypeCompatibility) String() string {
	switch c {
	case TypeIdentical:
		return VerdictIdentical
	case TypeAssignable:
		return VerdictAssignable
	case TypeConvertible:
		return VerdictConvertible
	case TypeNeedsTransform:
		return VerdictNeedsTransform
	case TypeIncompatible:
		return VerdictIncompatible
	default:
		return "unknown"
	}
}

// Score returns a numeric score for sorting (higher is better).
func (c TypeCompatibility) Score() int {
	return int(c)
}

// TypeCompatibilityResult contains detailed information about type compatibility.
type TypeCompatibilityResult struct {
	Compatibility TypeCompatibility
	Reason        string // Human-readable explanation
	SourceType    string // String representation of source type
	TargetType    string // String representation of target type
}

// ScoreTypeCompatibility determines the compatibility between a source and target type.
func ScoreTypeCompatibility(source, target reflect.Type) TypeCompatibilityResult {
	if source == nil || target == nil {
		return TypeCompatibilityResult{
			Compatibility: TypeIncompatible,
			Reason:        "type information unavailable",
			SourceType:    typeString(source),
			TargetType:    typeString(target),
		}
	}

	result := TypeCompatibilityResult{
		SourceType: source.String(),
		TargetType: target.String(),
	}

	switch {
	case source == target:
		result.Compatibility, result.Reason = TypeIdentical, "types are identical"
	case source.AssignableTo(target):
		result.Compatibility, result.Reason = TypeAssignable, "source is assignable to target"
	case source.ConvertibleTo(target) && !isRuneConversion(source, target):
		result.Compatibility, result.Reason = TypeConvertible, "source is convertible to target"
	case needsTransform(source, target):
		result.Compatibility, result.Reason = TypeNeedsTransform, "types require a converter"
	default:
		result.Compatibility, result.Reason = TypeIncompatible, "types are not compatible"
	}

	return result
}

// needsTransform checks for cases where types might be converted by a
// converter: textual scalars, pointer lifting and element-wise collections.
func needsTransform(source, target reflect.Type) bool {
	if isScalar(source) && isScalar(target) {
		return true
	}

	// *T -> T (dereference possible if not nil)
	if source.Kind() == reflect.Pointer && target.Kind() != reflect.Pointer {
		if ScoreTypeCompatibility(source.Elem(), target).Compatibility >= TypeNeedsTransform {
			return true
		}
	}

	// T -> *T (take address)
	if source.Kind() != reflect.Pointer && target.Kind() == reflect.Pointer {
		if ScoreTypeCompatibility(source, target.Elem()).Compatibility >= TypeNeedsTransform {
			return true
		}
	}

	switch {
	case isList(source) && isList(target):
		return ScoreTypeCompatibility(source.Elem(), target.Elem()).Compatibility >= TypeNeedsTransform

	case source.Kind() == reflect.Map && target.Kind() == reflect.Map:
		return ScoreTypeCompatibility(source.Key(), target.Key()).Compatibility >= TypeNeedsTransform &&
			ScoreTypeCompatibility(source.Elem(), target.Elem()).Compatibility >= TypeNeedsTransform

	case source.Kind() == reflect.String && isList(target):
		// comma separated values
		return isScalar(target.Elem())

	case source.Kind() == reflect.Struct && target.Kind() == reflect.Struct,
		source.Kind() == reflect.Map && target.Kind() == reflect.Struct:
		// might have compatible fields
		return true
	}

	return false
}

// ScorePointerCompatibility checks compatibility considering pointer wrapping/unwrapping.
func ScorePointerCompatibility(source, target reflect.Type) TypeCompatibilityResult {
	result := ScoreTypeCompatibility(source, target)
	if result.Compatibility >= TypeConvertible || source == nil || target == nil {
		return result
	}

	// Try unwrapping source pointer
	if source.Kind() == reflect.Pointer {
		innerResult := ScoreTypeCompatibility(source.Elem(), target)
		if innerResult.Compatibility >= TypeConvertible {
			return TypeCompatibilityResult{
				Compatibility: TypeNeedsTransform,
				Reason:        "requires pointer dereference",
				SourceType:    source.String(),
				TargetType:    target.String(),
			}
		}
	}

	// Try wrapping source as pointer
	if target.Kind() == reflect.Pointer {
		innerResult := ScoreTypeCompatibility(source, target.Elem())
		if innerResult.Compatibility >= TypeConvertible {
			return TypeCompatibilityResult{
				Compatibility: TypeNeedsTransform,
				Reason:        "requires taking address",
				SourceType:    source.String(),
				TargetType:    target.String(),
			}
		}
	}

	return result
}

func isScalar(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}

// isRuneConversion reports integer to string, which Go allows but which
// yields a character rather than digits.
func isRuneConversion(source, target reflect.Type) bool {
	if target.Kind() != reflect.String {
		return false
	}

	switch source.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}

	return false
}

func isList(t reflect.Type) bool {
	return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
