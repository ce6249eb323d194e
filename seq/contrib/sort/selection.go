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

// Selection sorts r by selecting the minimum of the unsorted suffix and
// exchanging it into place, one exchange per position at most.
//
// obs is notified at two points: every time the scan finds a new candidate
// minimum (nothing has moved yet; the notification shows the current best
// guess), and after the placing exchange. When the minimum is already in
// place the exchange and its notification are skipped.
func Selection[T seq.Ordered](s seq.Sequence[T], r seq.Range, obs seq.Observer[T]) error {
	obs, ok, err := prepare(s, r, obs)
	if !ok {
		return err
	}

	for pos := r.First; pos < r.Last-1; pos++ {
		smallest := pos
		for i := pos + 1; i < r.Last; i++ {
			if s.At(i) < s.At(smallest) {
				smallest = i
				obs.Notify(s, r)
			}
		}

		if smallest != pos {
			s.Swap(smallest, pos)
			obs.Notify(s, r)
		}
	}
	return nil
}
