package sorting

import (
	"cmp"
	"slices"

	"github.com/amp-labs/daily-dev-lab/sortable"
)

// Stats describes the work done by a bubble sort.
type Stats struct {
	Passes      int
	Comparisons int
	Swaps       int
}

// Bubble returns a sorted copy of seq using bubble sort.
func Bubble[S ~[]E, E cmp.Ordered](seq S) S {
	out, _ := bubble(seq, cmp.Less[E])

	return out
}

// BubbleFunc returns a copy of seq sorted by less. Elements for which neither
// less(a, b) nor less(b, a) holds keep their original relative order.
func BubbleFunc[S ~[]E, E any](seq S, less func(a, b E) bool) S {
	out, _ := bubble(seq, less)

	return out
}

// BubbleSortable is Bubble for element types implementing sortable.Sortable.
func BubbleSortable[S ~[]E, E sortable.Sortable[E]](seq S) S {
	out, _ := bubble(seq, func(a, b E) bool {
		return a.LessThan(b)
	})

	return out
}

// BubbleWithStats is Bubble, additionally reporting how many passes,
// comparisons and exchanges the sort needed.
func BubbleWithStats[S ~[]E, E cmp.Ordered](seq S) (S, Stats) {
	return bubble(seq, cmp.Less[E])
}

func bubble[S ~[]E, E any](seq S, less func(a, b E) bool) (S, Stats) {
	var stats Stats

	out := slices.Clone(seq)
	if out == nil {
		out = S{}
	}

	n := len(out)
	if n < 2 {
		return out, stats
	}

	for i := range n - 1 {
		stats.Passes++

		swapped := false

		// The last i elements are already in their final place.
		for j := range n - 1 - i {
			stats.Comparisons++

			// Strictly less, so equal neighbours are never exchanged.
			if less(out[j+1], out[j]) {
				out[j], out[j+1] = out[j+1], out[j]
				stats.Swaps++
				swapped = true
			}
		}

		if !swapped {
			break
		}
	}

	return out, stats
}
