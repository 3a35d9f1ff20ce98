// Package search locates values in sorted sequences.
//
// Every function here assumes its input is sorted in non-decreasing order.
// That is the caller's responsibility and is not checked: on unsorted input
// the result is meaningless but the call still terminates.
//
// When the target occurs more than once, the index returned is whichever
// matching position the midpoint arithmetic reaches first. It is not
// guaranteed to be the first or last occurrence.
package search

import (
	"cmp"

	"github.com/amp-labs/daily-dev-lab/sortable"
)

// NotFound is returned when the target is not present in the sequence.
const NotFound = -1

// Binary returns the index of an element equal to target, or NotFound.
// It runs in O(log n) time and O(1) space.
func Binary[S ~[]E, E cmp.Ordered](seq S, target E) int {
	return BinaryFunc(seq, target, cmp.Compare[E])
}

// BinaryFunc is Binary with a caller-supplied comparator. compare is called
// as compare(element, target) and must return a negative number if the
// element sorts before the target, zero if it matches and a positive number
// if it sorts after. The sequence must be sorted consistently with compare.
func BinaryFunc[S ~[]E, E, T any](seq S, target T, compare func(E, T) int) int {
	low, high := 0, len(seq)-1

	for low <= high {
		// Written this way so low+high can't overflow on huge ranges.
		mid := low + (high-low)/2

		switch c := compare(seq[mid], target); {
		case c == 0:
			return mid
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return NotFound
}

// BinarySortable is Binary for element types implementing sortable.Sortable.
func BinarySortable[S ~[]E, E sortable.Sortable[E]](seq S, target E) int {
	return BinaryFunc(seq, target, sortable.Compare[E])
}

// BinaryRecursive is the recursive formulation of Binary. It probes the same
// positions as Binary, at the cost of O(log n) call depth.
func BinaryRecursive[S ~[]E, E cmp.Ordered](seq S, target E) int {
	return binaryRecursive(seq, target, 0, len(seq)-1)
}

func binaryRecursive[S ~[]E, E cmp.Ordered](seq S, target E, low, high int) int {
	if low > high {
		return NotFound
	}

	mid := low + (high-low)/2

	switch c := cmp.Compare(seq[mid], target); {
	case c == 0:
		return mid
	case c < 0:
		return binaryRecursive(seq, target, mid+1, high)
	default:
		return binaryRecursive(seq, target, low, mid-1)
	}
}
