package sortable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        Int
		b        Int
		expected int
	}{
		{name: "less", a: 1, b: 2, expected: -1},
		{name: "equal", a: 5, b: 5, expected: 0},
		{name: "greater", a: 10, b: -10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare(tt.a, tt.b))
		})
	}
}

func TestWrappers(t *testing.T) {
	t.Parallel()

	assert.True(t, String("apple").LessThan("banana"))
	assert.True(t, String("apple").Equals("apple"))
	assert.True(t, String("v10").LessThan("v2"))
	assert.True(t, Natural("v2").LessThan("v10"))
	assert.False(t, Natural("v10").LessThan("v2"))
	assert.True(t, Natural("v10").Equals("v10"))
	assert.True(t, Float(1.5).LessThan(2.5))
	assert.True(t, Float(math.NaN()).Equals(Float(math.NaN())))
	assert.True(t, Float(math.NaN()).LessThan(Float(math.Inf(-1))))
	assert.Equal(t, []Int{3, 1, 2}, Ints(3, 1, 2))
	assert.Empty(t, Ints())
}
