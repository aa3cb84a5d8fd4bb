package sorting

import "cmp"

// QuickSort returns seq sorted ascending by key.
//
// The pivot is the median of the first, middle and last keys. Elements are
// copied into less, equal and greater partitions rather than swapped in place,
// so each level allocates O(n). O(n log n) comparisons on average, O(n^2) worst
// case. The result is not guaranteed to be stable.
func QuickSort[T any, K cmp.Ordered](seq []T, key KeyFunc[T, K]) []T {
	if len(seq) <= 1 {
		return clone(seq)
	}

	pivot := medianOfThree(key(seq[0]), key(seq[len(seq)/2]), key(seq[len(seq)-1]))

	var less, equal, greater []T
	for _, v := range seq {
		switch k := key(v); {
		case k < pivot:
			less = append(less, v)
		case k > pivot:
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}

	out := make([]T, 0, len(seq))
	out = append(out, QuickSort(less, key)...)
	out = append(out, equal...)
	out = append(out, QuickSort(greater, key)...)
	return out
}

func medianOfThree[K cmp.Ordered](a, b, c K) K {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		return a
	}
	return b
}
