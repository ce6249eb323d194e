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

// Shaker sorts r with cocktail-shaker sort.
//
// A forward pass bubbles the maximum of the window [left, right) to its
// right edge and shrinks right; a backward pass bubbles the minimum to the
// left edge and grows left. The sort ends when the bounds meet. Small
// elements stranded near the end move one pass at a time instead of one
// position per pass as in Bubble. obs is notified after every exchange in
// both directions.
func Shaker[T seq.Ordered](s seq.Sequence[T], r seq.Range, obs seq.Observer[T]) error {
	obs, ok, err := prepare(s, r, obs)
	if !ok {
		return err
	}

	left, right := r.First, r.Last
	for left < right {
		for i := left; i < right-1; i++ {
			if s.At(i) > s.At(i+1) {
				s.Swap(i, i+1)
				obs.Notify(s, r)
			}
		}
		right--

		for i := right - 1; i > left; i-- {
			if s.At(i) < s.At(i-1) {
				s.Swap(i, i-1)
				obs.Notify(s, r)
			}
		}
		left++
	}
	return nil
}
