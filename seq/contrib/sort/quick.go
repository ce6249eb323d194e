// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import "github.com/ajroetker/go-sortvis/seq"

// Quick sorts r with an in-place Lomuto quicksort that pivots on the last
// element of each sub-range.
//
// Partitioning works on a shrinking sub-range, but every notification
// reports r, the range passed to this call, so an observer always sees the
// whole sequence. obs is notified after each exchange that moves an element
// below the pivot and after the pivot is placed.
//
// A fixed last-element pivot degrades to quadratic time on sorted, reverse
// sorted and all-equal input. Recursion depth does not: the smaller side of
// each partition is sorted recursively and the larger side iteratively, so
// the stack never grows past log2(n) frames.
func Quick[T seq.Ordered](s seq.Sequence[T], r seq.Range, obs seq.Observer[T]) error {
	obs, ok, err := prepare(s, r, obs)
	if !ok {
		return err
	}
	quick(s, r.First, r.Last, r, obs)
	return nil
}

// quick sorts [first, last) and reports against full.
func quick[T seq.Ordered](s seq.Sequence[T], first, last int, full seq.Range, obs seq.Observer[T]) {
	for last-first > 1 {
		p := partition(s, first, last, full, obs)
		if p-first < last-p-1 {
			quick(s, first, p, full, obs)
			first = p + 1
		} else {
			quick(s, p+1, last, full, obs)
			last = p
		}
	}
}

// partition moves every element of [first, last) smaller than the pivot
// s[last-1] in front of it and returns the pivot's final position.
func partition[T seq.Ordered](s seq.Sequence[T], first, last int, full seq.Range, obs seq.Observer[T]) int {
	pivot := s.At(last - 1)
	boundary := first
	for j := first; j < last-1; j++ {
		if s.At(j) < pivot {
			s.Swap(boundary, j)
			boundary++
			obs.Notify(s, full)
		}
	}
	s.Swap(boundary, last-1)
	obs.Notify(s, full)
	return boundary
}
