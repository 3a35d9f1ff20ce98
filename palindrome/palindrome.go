// Package palindrome checks whether text reads the same in both directions,
// ignoring case and anything that is not a letter or a digit.
package palindrome

import (
	"slices"
	"unicode"

	"golang.org/x/text/cases"
)

// normalize keeps letters and digits only, case folded.
func normalize(s string) []rune {
	folded := cases.Fold().String(s)

	out := make([]rune, 0, len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out = append(out, r)
		}
	}

	return out
}

// IsPalindrome compares the normalized text with its reverse.
func IsPalindrome(s string) bool {
	runes := normalize(s)
	reversed := slices.Clone(runes)
	slices.Reverse(reversed)

	return slices.Equal(runes, reversed)
}

// IsPalindromeTwoPointer walks inwards from both ends of the normalized text
// and stops at the first mismatch.
func IsPalindromeTwoPointer(s string) bool {
	runes := normalize(s)

	for left, right := 0, len(runes)-1; left < right; left, right = left+1, right-1 {
		if runes[left] != runes[right] {
			return false
		}
	}

	return true
}
