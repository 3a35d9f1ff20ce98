// Package compare provides equality and ordering helpers shared by the
// search and sorting exercises.
package compare

import "cmp"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Func is a three-way comparator. It returns a negative number when a sorts
// before b, zero when they are equivalent and a positive number otherwise.
type Func[T any] func(a, b T) int

// Ordered returns the natural comparator for an ordered type.
func Ordered[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Reverse flips a comparator, turning an ascending order into a descending one.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// Less adapts a three-way comparator into a less-than predicate.
func Less[T any](f Func[T]) func(a, b T) bool {
	return func(a, b T) bool {
		return f(a, b) < 0
	}
}
