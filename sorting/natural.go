package sorting

import (
	"slices"

	"facette.io/natsort"
)

// Natural returns a copy of seq in natural order, where runs of digits are
// compared by numeric value: "file2" sorts before "file10".
func Natural(seq []string) []string {
	out := slices.Clone(seq)
	if out == nil {
		return []string{}
	}

	natsort.Sort(out)

	return out
}
