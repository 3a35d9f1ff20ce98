package linkedlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Empty(t *testing.T) {
	t.Parallel()

	var l List[int]

	assert.True(t, l.IsEmpty())
	assert.Zero(t, l.Len())
	assert.Equal(t, []int{}, l.Slice())
	assert.Equal(t, "LinkedList(empty)", l.String())
	assert.False(t, l.Delete(1))

	_, found := l.Search(1)
	assert.False(t, found)

	l.Reverse()
	assert.True(t, l.IsEmpty())
}

func TestList_Operations(t *testing.T) {
	t.Parallel()

	l := New[int]()

	l.InsertHead(3)
	l.InsertHead(2)
	l.InsertHead(1)
	assert.Equal(t, []int{1, 2, 3}, l.Slice())

	l.InsertTail(4)
	l.InsertTail(5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Slice())
	assert.Equal(t, 5, l.Len())

	node, found := l.Search(3)
	require.True(t, found)
	assert.Equal(t, 3, node.Value)
	assert.Equal(t, 4, node.Next().Value)
	assert.Equal(t, "Node(3)", node.String())

	_, found = l.Search(10)
	assert.False(t, found)

	assert.True(t, l.Delete(3))
	assert.Equal(t, []int{1, 2, 4, 5}, l.Slice())

	assert.True(t, l.Delete(1))
	assert.Equal(t, []int{2, 4, 5}, l.Slice())
	assert.Equal(t, 3, l.Len())

	l.Reverse()
	assert.Equal(t, []int{5, 4, 2}, l.Slice())
	assert.Equal(t, "LinkedList(5 -> 4 -> 2)", l.String())
}

func TestList_TailTracking(t *testing.T) {
	t.Parallel()

	t.Run("deleting the tail", func(t *testing.T) {
		t.Parallel()

		l := From("a", "b", "c")

		require.True(t, l.Delete("c"))
		l.InsertTail("d")

		assert.Equal(t, []string{"a", "b", "d"}, l.Slice())
	})

	t.Run("deleting the only element", func(t *testing.T) {
		t.Parallel()

		l := From("solo")

		require.True(t, l.Delete("solo"))
		assert.True(t, l.IsEmpty())

		l.InsertTail("next")
		assert.Equal(t, []string{"next"}, l.Slice())
	})

	t.Run("insert tail after reverse", func(t *testing.T) {
		t.Parallel()

		l := From(1, 2, 3)
		l.Reverse()
		l.InsertTail(0)

		assert.Equal(t, []int{3, 2, 1, 0}, l.Slice())
	})

	t.Run("insert head on empty sets tail", func(t *testing.T) {
		t.Parallel()

		l := New[int]()
		l.InsertHead(1)
		l.InsertTail(2)

		assert.Equal(t, []int{1, 2}, l.Slice())
	})
}

func TestList_DeleteFirstOccurrenceOnly(t *testing.T) {
	t.Parallel()

	l := From(1, 2, 1, 2)

	require.True(t, l.Delete(2))
	assert.Equal(t, []int{1, 1, 2}, l.Slice())
}

func TestList_AllStopsEarly(t *testing.T) {
	t.Parallel()

	l := From(1, 2, 3, 4)

	var seen []int

	for v := range l.All() {
		if v == 3 {
			break
		}

		seen = append(seen, v)
	}

	assert.Equal(t, []int{1, 2}, seen)
}
