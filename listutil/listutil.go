// Package listutil has small generic helpers for slices.
package listutil

import (
	"fmt"

	"github.com/amp-labs/daily-dev-lab/errors"
)

// Flatten concatenates the inner slices in order.
func Flatten[T any](nested [][]T) []T {
	total := 0
	for _, inner := range nested {
		total += len(inner)
	}

	out := make([]T, 0, total)
	for _, inner := range nested {
		out = append(out, inner...)
	}

	return out
}

// Chunk splits seq into consecutive pieces of size elements. The last piece
// holds whatever is left and may be shorter. The pieces share memory with seq.
func Chunk[T any](seq []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", errors.ErrInvalidSize, size)
	}

	out := make([][]T, 0, (len(seq)+size-1)/size)

	for start := 0; start < len(seq); start += size {
		end := min(start+size, len(seq))
		out = append(out, seq[start:end:end])
	}

	return out, nil
}

// Unique returns the distinct values of seq in order of first appearance.
func Unique[T comparable](seq []T) []T {
	seen := make(map[T]struct{}, len(seq))
	out := make([]T, 0, len(seq))

	for _, v := range seq {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Duplicates returns every value that occurs more than once in seq, each
// reported once, in the order in which its second occurrence appears.
func Duplicates[T comparable](seq []T) []T {
	counts := make(map[T]int, len(seq))
	out := []T{}

	for _, v := range seq {
		counts[v]++
		if counts[v] == 2 {
			out = append(out, v)
		}
	}

	return out
}
