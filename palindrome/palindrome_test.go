package palindrome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPalindrome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{input: "A man a plan a canal Panama", expected: true},
		{input: "race a car", expected: false},
		{input: "Was it a car or a cat I saw", expected: true},
		{input: "No 'x' in Nixon", expected: true},
		{input: "12321", expected: true},
		{input: "123", expected: false},
		{input: "", expected: true},
		{input: "!!!", expected: true},
		{input: "a", expected: true},
		{input: "Ésé", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsPalindrome(tt.input))
			assert.Equal(t, tt.expected, IsPalindromeTwoPointer(tt.input))
		})
	}
}
