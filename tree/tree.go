// Package tree provides a binary tree node and its depth-first traversals.
//
// Traversals are iterative and keep their pending nodes on an explicit
// stack, so a degenerate (list-shaped) tree of any height can be walked
// without growing the goroutine stack.
package tree

import (
	"cmp"
	"iter"
)

// Node is a binary tree node. A nil *Node is an empty tree.
type Node[T any] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// New returns a leaf holding value.
func New[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// InOrderSeq yields values left subtree first, then the node, then the right subtree.
func InOrderSeq[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []*Node[T]

		cur := root
		for cur != nil || len(stack) > 0 {
			for cur != nil {
				stack = append(stack, cur)
				cur = cur.Left
			}

			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(cur.Value) {
				return
			}

			cur = cur.Right
		}
	}
}

// PreOrderSeq yields the node first, then its left and right subtrees.
func PreOrderSeq[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if root == nil {
			return
		}

		stack := []*Node[T]{root}

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(cur.Value) {
				return
			}

			// Right goes on first so left is popped first.
			if cur.Right != nil {
				stack = append(stack, cur.Right)
			}

			if cur.Left != nil {
				stack = append(stack, cur.Left)
			}
		}
	}
}

// PostOrderSeq yields the left and right subtrees before the node itself.
func PostOrderSeq[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var (
			stack    []*Node[T]
			lastSeen *Node[T]
		)

		cur := root
		for cur != nil || len(stack) > 0 {
			for cur != nil {
				stack = append(stack, cur)
				cur = cur.Left
			}

			top := stack[len(stack)-1]

			if top.Right != nil && top.Right != lastSeen {
				cur = top.Right

				continue
			}

			stack = stack[:len(stack)-1]

			if !yield(top.Value) {
				return
			}

			lastSeen = top
		}
	}
}

// InOrder returns the in-order walk of root as a slice.
func InOrder[T any](root *Node[T]) []T {
	return collect(InOrderSeq(root))
}

// PreOrder returns the pre-order walk of root as a slice.
func PreOrder[T any](root *Node[T]) []T {
	return collect(PreOrderSeq(root))
}

// PostOrder returns the post-order walk of root as a slice.
func PostOrder[T any](root *Node[T]) []T {
	return collect(PostOrderSeq(root))
}

func collect[T any](seq iter.Seq[T]) []T {
	out := []T{}
	for v := range seq {
		out = append(out, v)
	}

	return out
}

// Insert adds value to the binary search tree rooted at root and returns the
// (possibly new) root. Values equal to an existing node go to its right.
func Insert[T cmp.Ordered](root *Node[T], value T) *Node[T] {
	leaf := New(value)
	if root == nil {
		return leaf
	}

	cur := root

	for {
		if value < cur.Value {
			if cur.Left == nil {
				cur.Left = leaf

				return root
			}

			cur = cur.Left
		} else {
			if cur.Right == nil {
				cur.Right = leaf

				return root
			}

			cur = cur.Right
		}
	}
}

// FromSorted builds a height-balanced tree whose in-order walk is values.
func FromSorted[T any](values []T) *Node[T] {
	if len(values) == 0 {
		return nil
	}

	mid := len(values) / 2

	return &Node[T]{
		Value: values[mid],
		Left:  FromSorted(values[:mid]),
		Right: FromSorted(values[mid+1:]),
	}
}

// Height returns the number of nodes on the longest root-to-leaf path.
func Height[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}

	height := 0
	level := []*Node[T]{root}

	for len(level) > 0 {
		height++

		var next []*Node[T]

		for _, n := range level {
			if n.Left != nil {
				next = append(next, n.Left)
			}

			if n.Right != nil {
				next = append(next, n.Right)
			}
		}

		level = next
	}

	return height
}
