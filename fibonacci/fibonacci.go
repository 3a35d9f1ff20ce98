// Package fibonacci computes Fibonacci numbers, F(0) = 0, F(1) = 1.
//
// Memoization lives in an explicit Memo value owned by the caller rather
// than in hidden package state, so independent callers never share a cache
// unless they choose to and a cache can be dropped with Reset.
package fibonacci

import (
	"fmt"
	"sync"

	"github.com/amp-labs/daily-dev-lab/errors"
)

// MaxN is the largest n whose Fibonacci number fits in a uint64.
const MaxN = 93

func check(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: n=%d", errors.ErrNegativeInput, n)
	}

	if n > MaxN {
		return fmt.Errorf("%w: F(%d) does not fit in 64 bits", errors.ErrOverflow, n)
	}

	return nil
}

// Iterative computes F(n) in O(n) time and O(1) space.
func Iterative(n int) (uint64, error) {
	if err := check(n); err != nil {
		return 0, err
	}

	var a, b uint64 = 0, 1
	for range n {
		a, b = b, a+b
	}

	return a, nil
}

// Memo caches Fibonacci numbers between calls. The zero value is ready to
// use, and a Memo is safe for concurrent use.
type Memo struct {
	mut    sync.Mutex
	values []uint64
}

// NewMemo returns an empty cache.
func NewMemo() *Memo {
	return &Memo{}
}

// Get returns F(n), computing and remembering any values not yet cached.
func (m *Memo) Get(n int) (uint64, error) {
	if err := check(n); err != nil {
		return 0, err
	}

	m.mut.Lock()
	defer m.mut.Unlock()

	if len(m.values) == 0 {
		m.values = append(m.values, 0, 1)
	}

	for i := len(m.values); i <= n; i++ {
		m.values = append(m.values, m.values[i-1]+m.values[i-2])
	}

	return m.values[n], nil
}

// Len returns how many values are cached.
func (m *Memo) Len() int {
	m.mut.Lock()
	defer m.mut.Unlock()

	return len(m.values)
}

// Reset drops every cached value.
func (m *Memo) Reset() {
	m.mut.Lock()
	defer m.mut.Unlock()

	m.values = nil
}
