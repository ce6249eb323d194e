// Package sort provides observable in-place comparison sorts.
//
// Every algorithm has the same shape:
//
//	func(s seq.Sequence[T], r seq.Range, obs seq.Observer[T]) error
//
// It reorders the elements of s in r into non-decreasing order and calls
// obs.Notify synchronously at fixed points of its traversal, so a renderer,
// logger or test can watch the sort without the algorithm knowing what the
// observer does.
//
// # Algorithms
//
//   - Bubble: adjacent exchanges, stops after the first pass with no exchange
//   - Shaker: bubble sort alternating direction between two shrinking bounds
//   - Selection: one placing exchange per position, notifies on every new
//     candidate minimum as well
//   - Insertion: shifts by single-slot overwrites, notifies on every shift
//   - Quick: Lomuto partition with the last element as pivot, always
//     notifying against the top-level range
//
// # Notifications
//
// Notify is called after every exchange (and after every shift and final
// write for Insertion). No algorithm depends on the observer for its own
// correctness: a nil or no-op observer sorts the same way.
//
// # Errors
//
// An inverted range returns an error wrapping seq.ErrInvertedRange, a range
// outside the sequence one wrapping seq.ErrOutOfBounds. Ranges of length
// 0 or 1 are a no-op.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortvis/seq/contrib/sort"
//
//	func Sorted(data []int) []int {
//	    _ = sort.Run(sort.AlgoQuick, data, nil)
//	    return data
//	}
package sort
