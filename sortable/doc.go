// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use with the search and sorting
// exercises that work on user-defined ordered types.
//
// # Overview
//
// The Sortable interface extends [github.com/amp-labs/daily-dev-lab/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// Ready-to-use implementations exist for [Int], [Float], [String] and [Natural].
//
// # Usage
//
//	values := []sortable.Int{42, 10, 25}
//	sorted := sorting.BubbleSortable(values)  // 10, 25, 42
//	idx := search.BinarySortable(sorted, 25)   // 1
//
// # Creating Custom Sortable Types
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// Equals and LessThan must agree: for any a and b exactly one of a.LessThan(b),
// b.LessThan(a) and a.Equals(b) holds. Search results are undefined otherwise.
package sortable
