// Package mathutil holds integer number theory helpers.
package mathutil

import (
	"fmt"
	"math"

	"github.com/amp-labs/daily-dev-lab/errors"
)

// MaxFactorial is the largest n whose factorial fits in a uint64.
const MaxFactorial = 20

// IsPrime reports whether n is prime, by trial division up to sqrt(n).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}

	for d := 2; d <= n/d; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// GCD returns the greatest common divisor of a and b. The result is never
// negative, and GCD(0, 0) is 0. The one exception is a divisor of 2^63, which
// int cannot hold: GCD(math.MinInt, 0) and GCD(math.MinInt, math.MinInt)
// return math.MinInt.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return abs(a)
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
// A multiple that does not fit in an int is reported as ErrOverflow.
func LCM(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	// Divide first to keep the intermediate product small.
	q := a / GCD(a, b)
	p := q * b

	if p/b != q || p == math.MinInt {
		return 0, fmt.Errorf("%w: lcm(%d, %d)", errors.ErrOverflow, a, b)
	}

	return abs(p), nil
}

// Factorial returns n!.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: n=%d", errors.ErrNegativeInput, n)
	}

	if n > MaxFactorial {
		return 0, fmt.Errorf("%w: %d! does not fit in 64 bits", errors.ErrOverflow, n)
	}

	result := uint64(1)
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}

	return result, nil
}

// PrimeFactors returns the prime factorization of n in ascending order, with
// repeated factors listed once per multiplicity. Values below 2 have no
// factors.
func PrimeFactors(n int) []int {
	factors := []int{}

	for d := 2; d <= n/d; d++ {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}

	if n > 1 {
		factors = append(factors, n)
	}

	return factors
}

// abs of math.MinInt is math.MinInt; callers rule that case out first.
func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
