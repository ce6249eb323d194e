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

// Bubble sorts r by repeatedly exchanging adjacent out-of-order pairs.
//
// Each pass carries the largest remaining element to the end of the
// unsorted prefix, which then shrinks by one. The sort stops after the
// first pass that made no exchange, so sorted input costs one pass and no
// notifications. obs is notified after every exchange with r.
func Bubble[T seq.Ordered](s seq.Sequence[T], r seq.Range, obs seq.Observer[T]) error {
	obs, ok, err := prepare(s, r, obs)
	if !ok {
		return err
	}

	swapped := true
	for end := r.Last - 1; end > r.First && swapped; end-- {
		swapped = false
		for i := r.First; i < end; i++ {
			if s.At(i) > s.At(i+1) {
				s.Swap(i, i+1)
				swapped = true
				obs.Notify(s, r)
			}
		}
	}
	return nil
}
