// Package anagram detects and groups anagrams.
//
// Comparison is case-insensitive using Unicode case folding. Every other
// rune counts, spaces and punctuation included, so "dormitory" and
// "dirty room" are not anagrams of each other.
package anagram

import (
	"github.com/amp-labs/daily-dev-lab/sorting"
	"golang.org/x/text/cases"
)

// IsAnagram reports whether a and b contain the same runes with the same
// multiplicities once case is folded.
func IsAnagram(a, b string) bool {
	fold := cases.Fold()

	counts := make(map[rune]int)

	for _, r := range fold.String(a) {
		counts[r]++
	}

	for _, r := range fold.String(b) {
		counts[r]--
		if counts[r] < 0 {
			return false
		}
	}

	for _, c := range counts {
		if c != 0 {
			return false
		}
	}

	return true
}

// Key returns the canonical form shared by all anagrams of word: its case
// folded runes in ascending order.
func Key(word string) string {
	return string(sorting.Quick([]rune(cases.Fold().String(word))))
}

// Group partitions words into anagram groups. Groups are ordered by the first
// appearance of one of their members and words keep their input order inside
// a group.
func Group(words []string) [][]string {
	groups := [][]string{}
	index := make(map[string]int)

	for _, word := range words {
		key := Key(word)

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}

		groups[i] = append(groups[i], word)
	}

	return groups
}
