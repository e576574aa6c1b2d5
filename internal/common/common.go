package common

import (
	"cmp"
	"slices"
)

// UnknownStr is the name printed for out of range enum values.
const UnknownStr = "unknown"

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// IsEmpty reports whether s has no elements.
func IsEmpty[S ~[]E, E any](s S) bool { return len(s) == 0 }

// IsSingle reports whether s holds exactly one element.
func IsSingle[S ~[]E, E any](s S) bool { return len(s) == 1 }
