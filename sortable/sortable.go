package sortable

import (
	"github.com/amp-labs/daily-dev-lab/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare adapts two Sortable values to a three-way comparison so they can
// be used wherever a compare.Func is expected.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case compare.Equals(a, b):
		return 0
	default:
		return 1
	}
}
