// Package search implements linear and binary search over consumption data.
package search

import (
	"cmp"

	"github.com/vsinha/stocksim/pkg/domain/entities"
	"github.com/vsinha/stocksim/pkg/domain/services/sorting"
)

// NotFound is returned by BinarySearchLeftmost when no element matches
const NotFound = -1

// Linear returns every element of seq satisfying match, in original order.
// O(n), no ordering requirement.
func Linear[T any](seq []T, match func(T) bool) []T {
	out := make([]T, 0)
	for _, v := range seq {
		if match(v) {
			out = append(out, v)
		}
	}
	return out
}

// BinarySearchLeftmost returns the smallest index whose key equals target, or NotFound.
//
// sorted must already be ordered ascending by key. This is not checked: an
// unsorted input yields an arbitrary result. Use sorting.IsSorted to assert it.
// O(log n).
func BinarySearchLeftmost[T any, K cmp.Ordered](sorted []T, key sorting.KeyFunc[T, K], target K) int {
	lo, hi := 0, len(sorted)-1
	found := NotFound

	for lo <= hi {
		mid := lo + (hi-lo)/2
		k := key(sorted[mid])
		if k < target {
			lo = mid + 1
			continue
		}
		if k == target {
			found = mid
		}
		hi = mid - 1
	}

	return found
}

// FindEventsBySupply returns the contiguous run of events for code in a ledger
// sorted ascending by supply code. An absent code yields an empty slice.
func FindEventsBySupply(sortedLedger []entities.ConsumptionEvent, code entities.SupplyCode) []entities.ConsumptionEvent {
	idx := BinarySearchLeftmost(sortedLedger, sorting.BySupplyCode, code)
	if idx == NotFound {
		return []entities.ConsumptionEvent{}
	}

	end := idx
	for end < len(sortedLedger) && sortedLedger[end].SupplyCode == code {
		end++
	}

	out := make([]entities.ConsumptionEvent, end-idx)
	copy(out, sortedLedger[idx:end])
	return out
}

// BySupply returns a predicate matching events for code
func BySupply(code entities.SupplyCode) func(entities.ConsumptionEvent) bool {
	return func(e entities.ConsumptionEvent) bool {
		return e.SupplyCode == code
	}
}
