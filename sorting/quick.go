package sorting

import (
	"cmp"
	"slices"
)

// span is a half-open range [lo, hi) still waiting to be partitioned.
type span struct {
	lo, hi int
}

// Quick returns a sorted copy of seq using quick sort.
func Quick[S ~[]E, E cmp.Ordered](seq S) S {
	return QuickFunc(seq, cmp.Compare[E])
}

// QuickFunc returns a copy of seq sorted by the three-way comparator compare.
func QuickFunc[S ~[]E, E any](seq S, compare func(a, b E) int) S {
	out := slices.Clone(seq)
	if out == nil {
		out = S{}
	}

	if len(out) < 2 {
		return out
	}

	stack := []span{{lo: 0, hi: len(out)}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lt, gt := partition(out, cur.lo, cur.hi, compare)

		less := span{lo: cur.lo, hi: lt}
		greater := span{lo: gt, hi: cur.hi}

		// Push the larger side first so the smaller one is handled next;
		// this keeps the stack at O(log n) entries.
		if less.hi-less.lo < greater.hi-greater.lo {
			less, greater = greater, less
		}

		for _, s := range []span{less, greater} {
			if s.hi-s.lo > 1 {
				stack = append(stack, s)
			}
		}
	}

	return out
}

// partition rearranges a[lo:hi] into three groups around the middle element:
// a[lo:lt] < pivot, a[lt:gt] == pivot and a[gt:hi] > pivot.
func partition[S ~[]E, E any](a S, lo, hi int, compare func(a, b E) int) (int, int) {
	pivot := a[lo+(hi-lo)/2]
	lt, i, gt := lo, lo, hi

	for i < gt {
		switch c := compare(a[i], pivot); {
		case c < 0:
			a[lt], a[i] = a[i], a[lt]
			lt++
			i++
		case c > 0:
			gt--
			a[i], a[gt] = a[gt], a[i]
		default:
			i++
		}
	}

	return lt, gt
}
