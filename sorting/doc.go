// Package sorting holds comparison sorts that return a sorted copy of their
// input. The caller's slice is never modified.
//
// Two algorithm families are provided:
//
//   - Bubble sort (adjacent exchange). Stable, O(n^2) worst case, and O(n) on
//     input that is already sorted thanks to the early exit after a pass with
//     no exchanges.
//   - Quick sort (three-way partition around the middle element). Not stable,
//     O(n log n) on average. Pending ranges live on an explicit stack, so deep
//     recursion on adversarial input is impossible.
//
// [Natural] sorts strings so embedded numbers compare numerically.
package sorting
