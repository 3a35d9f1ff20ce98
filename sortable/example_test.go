package sortable_test

import (
	"fmt"

	"github.com/amp-labs/daily-dev-lab/search"
	"github.com/amp-labs/daily-dev-lab/sortable"
	"github.com/amp-labs/daily-dev-lab/sorting"
)

// Example sorts and searches the package's Int wrapper.
func Example() {
	values := []sortable.Int{42, 10, 25}
	sorted := sorting.BubbleSortable(values)

	fmt.Println(sorted, search.BinarySortable(sorted, 25))
	// Output: [10 25 42] 1
}

func ExampleFloat() {
	fmt.Println(sorting.BubbleSortable([]sortable.Float{2.5, -1, 0}))
	// Output: [-1 0 2.5]
}

func ExampleString() {
	fmt.Println(sorting.BubbleSortable([]sortable.String{"v10", "v2", "V1"}))
	// Output: [V1 v10 v2]
}

// ExampleNatural compares runs of digits by value.
func ExampleNatural() {
	sorted := sorting.BubbleSortable([]sortable.Natural{"v10", "v2", "v1"})

	fmt.Println(sorted, search.BinarySortable(sorted, "v10"))
	// Output: [v1 v2 v10] 2
}
