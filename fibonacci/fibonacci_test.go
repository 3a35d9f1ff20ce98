package fibonacci

import (
	"sync"
	"testing"

	"github.com/amp-labs/daily-dev-lab/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var first = []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}

func TestIterative(t *testing.T) {
	t.Parallel()

	for n, expected := range first {
		got, err := Iterative(n)

		require.NoError(t, err)
		assert.Equal(t, expected, got, "F(%d)", n)
	}

	largest, err := Iterative(MaxN)
	require.NoError(t, err)
	assert.Equal(t, uint64(12200160415121876738), largest)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	memo := NewMemo()

	_, err := Iterative(-1)
	require.ErrorIs(t, err, errors.ErrNegativeInput)

	_, err = memo.Get(-1)
	require.ErrorIs(t, err, errors.ErrNegativeInput)

	_, err = Iterative(MaxN + 1)
	require.ErrorIs(t, err, errors.ErrOverflow)

	_, err = memo.Get(MaxN + 1)
	require.ErrorIs(t, err, errors.ErrOverflow)

	assert.Zero(t, memo.Len())
}

func TestMemo(t *testing.T) {
	t.Parallel()

	var memo Memo

	for n := len(first) - 1; n >= 0; n-- {
		got, err := memo.Get(n)

		require.NoError(t, err)
		assert.Equal(t, first[n], got)
	}

	assert.Equal(t, len(first), memo.Len())

	v, err := memo.Get(50)
	require.NoError(t, err)
	assert.Equal(t, uint64(12586269025), v)
	assert.Equal(t, 51, memo.Len())

	memo.Reset()
	assert.Zero(t, memo.Len())

	v, err = memo.Get(0)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestMemo_Independent(t *testing.T) {
	t.Parallel()

	a, b := NewMemo(), NewMemo()

	_, err := a.Get(30)
	require.NoError(t, err)

	assert.Equal(t, 31, a.Len())
	assert.Zero(t, b.Len())
}

func TestMemo_Concurrent(t *testing.T) {
	t.Parallel()

	memo := NewMemo()

	var wg sync.WaitGroup

	for n := range MaxN + 1 {
		wg.Go(func() {
			got, err := memo.Get(n)
			assert.NoError(t, err)

			expected, _ := Iterative(n)
			assert.Equal(t, expected, got)
		})
	}

	wg.Wait()

	assert.Equal(t, MaxN+1, memo.Len())
}
