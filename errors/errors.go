// Package errors holds the sentinel errors shared by the exercise packages
// and a small helper for accumulating several errors into one.
package errors

import (
	"errors"
	"slices"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")
	ErrNegativeInput    = errors.New("negative input")
	ErrOverflow         = errors.New("result overflows")
	ErrInvalidSize      = errors.New("invalid size")
	ErrInvalidDate      = errors.New("invalid date")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// Errors returns a copy of the collected errors in the order they were added.
func (c *Collection) Errors() []error {
	return slices.Clone(c.errors)
}

// GetError returns nil for an empty collection, the error itself when there
// is exactly one, and errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
