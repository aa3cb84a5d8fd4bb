// Package sorting implements merge sort and quick sort over a caller supplied key.
//
// Both algorithms return a new slice and never modify their input.
package sorting

import (
	"cmp"
	"fmt"
)

// KeyFunc extracts the ordering key of an element
type KeyFunc[T any, K cmp.Ordered] func(T) K

// Algorithm selects a sort implementation
type Algorithm int

const (
	Merge Algorithm = iota
	Quick
)

// String method for Algorithm enum
func (a Algorithm) String() string {
	switch a {
	case Merge:
		return "Merge Sort"
	case Quick:
		return "Quick Sort"
	default:
		return "Unknown"
	}
}

// Algorithms lists every available implementation in display order
var Algorithms = []Algorithm{Merge, Quick}

// Sort orders seq ascending by key with the selected algorithm
func Sort[T any, K cmp.Ordered](alg Algorithm, seq []T, key KeyFunc[T, K]) ([]T, error) {
	switch alg {
	case Merge:
		return MergeSort(seq, key), nil
	case Quick:
		return QuickSort(seq, key), nil
	default:
		return nil, fmt.Errorf("unsupported sort algorithm: %d", alg)
	}
}

// IsSorted reports whether seq is non-decreasing by key
func IsSorted[T any, K cmp.Ordered](seq []T, key KeyFunc[T, K]) bool {
	for i := 1; i < len(seq); i++ {
		if key(seq[i]) < key(seq[i-1]) {
			return false
		}
	}
	return true
}

// KeysEqual reports whether a and b have the same key at every position
func KeysEqual[T any, K cmp.Ordered](a, b []T, key KeyFunc[T, K]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if key(a[i]) != key(b[i]) {
			return false
		}
	}
	return true
}

func clone[T any](seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	return out
}
