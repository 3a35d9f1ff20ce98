package mathutil

import (
	"math"
	"testing"

	"github.com/amp-labs/daily-dev-lab/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPrime(t *testing.T) {
	t.Parallel()

	var primes []int

	for n := -5; n <= 50; n++ {
		if IsPrime(n) {
			primes = append(primes, n)
		}
	}

	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}, primes)
	assert.True(t, IsPrime(7919))
	assert.False(t, IsPrime(7917))
}

func TestGCDAndLCM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b     int
		gcd, lcm int
	}{
		{a: 48, b: 18, gcd: 6, lcm: 144},
		{a: 18, b: 48, gcd: 6, lcm: 144},
		{a: 7, b: 13, gcd: 1, lcm: 91},
		{a: -4, b: 6, gcd: 2, lcm: 12},
		{a: 0, b: 5, gcd: 5, lcm: 0},
		{a: 0, b: 0, gcd: 0, lcm: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.gcd, GCD(tt.a, tt.b), "GCD(%d, %d)", tt.a, tt.b)

		lcm, err := LCM(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.lcm, lcm, "LCM(%d, %d)", tt.a, tt.b)
	}
}

func TestLCM_Overflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b int
	}{
		{name: "coprime halves", a: math.MaxInt, b: math.MaxInt - 1},
		{name: "min int", a: math.MinInt, b: 1},
		{name: "min int times minus one", a: math.MinInt, b: -1},
		{name: "both min int", a: math.MinInt, b: math.MinInt},
		{name: "large primes", a: 4294967311, b: 4294967357},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LCM(tt.a, tt.b)
			require.ErrorIs(t, err, errors.ErrOverflow)
		})
	}

	got, err := LCM(math.MaxInt, 1)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got)

	got, err = LCM(math.MinInt+1, -1)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got)
}

func TestGCD_MinInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, math.MinInt, GCD(math.MinInt, 0))
	assert.Equal(t, 2, GCD(math.MinInt, 6))
}

func TestFactorial(t *testing.T) {
	t.Parallel()

	expected := []uint64{1, 1, 2, 6, 24, 120, 720}
	for n, want := range expected {
		got, err := Factorial(n)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := Factorial(MaxFactorial)
	require.NoError(t, err)
	assert.Equal(t, uint64(2432902008176640000), got)

	_, err = Factorial(-1)
	require.ErrorIs(t, err, errors.ErrNegativeInput)

	_, err = Factorial(MaxFactorial + 1)
	require.ErrorIs(t, err, errors.ErrOverflow)
}

func TestPrimeFactors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{2, 2, 3, 7}, PrimeFactors(84))
	assert.Equal(t, []int{97}, PrimeFactors(97))
	assert.Equal(t, []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}, PrimeFactors(1024))
	assert.Equal(t, []int{}, PrimeFactors(1))
	assert.Equal(t, []int{}, PrimeFactors(-12))
}
