package sorting

import "cmp"

// MergeSort returns seq sorted ascending by key.
//
// The sort is stable: elements with equal keys keep their input order.
// O(n log n) time, O(n) auxiliary space.
func MergeSort[T any, K cmp.Ordered](seq []T, key KeyFunc[T, K]) []T {
	if len(seq) <= 1 {
		return clone(seq)
	}

	mid := len(seq) / 2
	left := MergeSort(seq[:mid], key)
	right := MergeSort(seq[mid:], key)
	return merge(left, right, key)
}

func merge[T any, K cmp.Ordered](left, right []T, key KeyFunc[T, K]) []T {
	merged := make([]T, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		// Ties take from the left half
		if key(right[j]) < key(left[i]) {
			merged = append(merged, right[j])
			j++
		} else {
			merged = append(merged, left[i])
			i++
		}
	}

	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)
	return merged
}
