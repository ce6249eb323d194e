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

// Insertion sorts r by growing a sorted prefix one element at a time.
//
// The next element is held aside while every larger element of the prefix
// is shifted one slot right by a single overwrite; obs is notified after
// each shift. The held value is then written into the hole and obs is
// notified once more. Work is proportional to how far elements travel, so
// sorted input costs one comparison per element.
//
// If obs panics while a value is held aside, the value is written back into
// the hole before the panic leaves Insertion.
func Insertion[T seq.Ordered](s seq.Sequence[T], r seq.Range, obs seq.Observer[T]) error {
	obs, ok, err := prepare(s, r, obs)
	if !ok {
		return err
	}

	var key T
	hole, holding := r.First, false
	defer func() {
		if holding {
			s.Set(hole, key)
		}
	}()

	for i := r.First + 1; i < r.Last; i++ {
		key, hole, holding = s.At(i), i, true
		for hole > r.First && s.At(hole-1) > key {
			s.Set(hole, s.At(hole-1))
			hole--
			obs.Notify(s, r)
		}
		s.Set(hole, key)
		holding = false
		obs.Notify(s, r)
	}
	return nil
}
