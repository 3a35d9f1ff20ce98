// Package linkedlist implements a generic singly linked list.
//
// The list keeps a tail pointer, so both InsertHead and InsertTail are O(1).
// Search and Delete walk the list and are O(n). A List is not safe for
// concurrent use.
package linkedlist

import (
	"fmt"
	"iter"
	"strings"
)

// Node is a single element of a List.
type Node[T comparable] struct {
	Value T
	next  *Node[T]
}

// Next returns the following node, or nil at the end of the list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

func (n *Node[T]) String() string {
	return fmt.Sprintf("Node(%v)", n.Value)
}

// List is a singly linked list. The zero value is an empty list ready to use.
type List[T comparable] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// From returns a list holding values in order.
func From[T comparable](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.InsertTail(v)
	}

	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Head returns the first node, or nil if the list is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// InsertHead adds value at the front of the list.
func (l *List[T]) InsertHead(value T) {
	node := &Node[T]{Value: value, next: l.head}

	l.head = node
	if l.tail == nil {
		l.tail = node
	}

	l.size++
}

// InsertTail adds value at the end of the list.
func (l *List[T]) InsertTail(value T) {
	node := &Node[T]{Value: value}

	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}

	l.tail = node
	l.size++
}

// Delete removes the first element equal to value. It reports whether an
// element was removed.
func (l *List[T]) Delete(value T) bool {
	var prev *Node[T]

	for cur := l.head; cur != nil; prev, cur = cur, cur.next {
		if cur.Value != value {
			continue
		}

		if prev == nil {
			l.head = cur.next
		} else {
			prev.next = cur.next
		}

		if l.tail == cur {
			l.tail = prev
		}

		l.size--

		return true
	}

	return false
}

// Search returns the first node holding value.
func (l *List[T]) Search(value T) (*Node[T], bool) {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.Value == value {
			return cur, true
		}
	}

	return nil, false
}

// Reverse reverses the list in place.
func (l *List[T]) Reverse() {
	var prev *Node[T]

	l.tail = l.head

	for cur := l.head; cur != nil; {
		next := cur.next
		cur.next = prev
		prev, cur = cur, next
	}

	l.head = prev
}

// All iterates over the values from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.Value) {
				return
			}
		}
	}
}

// Slice returns the values from head to tail. An empty list yields an empty,
// non-nil slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}

func (l *List[T]) String() string {
	if l.IsEmpty() {
		return "LinkedList(empty)"
	}

	parts := make([]string, 0, l.size)
	for v := range l.All() {
		parts = append(parts, fmt.Sprint(v))
	}

	return "LinkedList(" + strings.Join(parts, " -> ") + ")"
}
