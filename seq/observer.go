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

package seq

// Observer is told each time an algorithm has made a new, consistent state
// of the sequence visible. r is the range the algorithm reports against;
// the observer may read s over r but must not modify it.
//
// Notify runs synchronously on the sorting goroutine. An observer that
// blocks (e.g. waiting for the next frame) stalls the sort with it, so the
// observer sets the pace of the algorithm.
//
// A panic raised by Notify propagates out of the sort call. The sequence is
// then left as a valid permutation of its input: every mutation is either
// an exchange or an overwrite of a value the algorithm still holds.
type Observer[T Ordered] interface {
	Notify(s Sequence[T], r Range)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc[T Ordered] func(s Sequence[T], r Range)

// Notify calls f(s, r).
func (f ObserverFunc[T]) Notify(s Sequence[T], r Range) { f(s, r) }

// Nop is an Observer that ignores every notification.
type Nop[T Ordered] struct{}

// Notify does nothing.
func (Nop[T]) Notify(Sequence[T], Range) {}

// OrNop returns obs, or a Nop observer when obs is nil.
func OrNop[T Ordered](obs Observer[T]) Observer[T] {
	if obs == nil {
		return Nop[T]{}
	}
	return obs
}

// Multi returns an Observer that forwards each notification to every
// non-nil observer in order.
func Multi[T Ordered](observers ...Observer[T]) Observer[T] {
	list := make([]Observer[T], 0, len(observers))
	for _, o := range observers {
		if o != nil {
			list = append(list, o)
		}
	}
	switch len(list) {
	case 0:
		return Nop[T]{}
	case 1:
		return list[0]
	}
	return multi[T](list)
}

type multi[T Ordered] []Observer[T]

func (m multi[T]) Notify(s Sequence[T], r Range) {
	for _, o := range m {
		o.Notify(s, r)
	}
}
