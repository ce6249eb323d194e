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

// Sequence is a fixed-length, mutable, randomly indexable run of ordered
// elements. Algorithms never resize a Sequence; they only read, overwrite
// and exchange positions in [0, Len()).
type Sequence[T Ordered] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at position i.
	At(i int) T

	// Set overwrites the element at position i.
	Set(i int, v T)

	// Swap exchanges the elements at positions i and j.
	Swap(i, j int)
}

// Slice adapts a Go slice to the Sequence interface. The slice is borrowed,
// not copied: mutations made through the Slice are visible in the caller's
// backing array.
type Slice[T Ordered] []T

// Len returns the slice length.
func (s Slice[T]) Len() int { return len(s) }

// At returns s[i].
func (s Slice[T]) At(i int) T { return s[i] }

// Set assigns s[i] = v.
func (s Slice[T]) Set(i int, v T) { s[i] = v }

// Swap exchanges s[i] and s[j].
func (s Slice[T]) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Values copies the elements of r out of s into a new slice.
// The copy is a consistent snapshot: later mutations of s do not affect it.
func Values[T Ordered](s Sequence[T], r Range) []T {
	if sl, ok := s.(Slice[T]); ok {
		out := make([]T, r.Len())
		copy(out, sl[r.First:r.Last])
		return out
	}
	out := make([]T, 0, r.Len())
	for i := r.First; i < r.Last; i++ {
		out = append(out, s.At(i))
	}
	return out
}

// IsSorted reports whether the elements of r are in non-decreasing order.
func IsSorted[T Ordered](s Sequence[T], r Range) bool {
	for i := r.First + 1; i < r.Last; i++ {
		if s.At(i) < s.At(i-1) {
			return false
		}
	}
	return true
}

// Counts holds the number of element accesses made through a Counting
// sequence.
type Counts struct {
	Reads  int
	Writes int
	Swaps  int
}

// Counting wraps a Sequence and counts every At, Set and Swap call made
// through it. It is not safe for concurrent use, matching the exclusive
// borrow a sort call holds over its sequence.
type Counting[T Ordered] struct {
	Sequence[T]
	Counts Counts
}

// NewCounting wraps s.
func NewCounting[T Ordered](s Sequence[T]) *Counting[T] {
	return &Counting[T]{Sequence: s}
}

// At counts a read and forwards it.
func (c *Counting[T]) At(i int) T {
	c.Counts.Reads++
	return c.Sequence.At(i)
}

// Set counts a write and forwards it.
func (c *Counting[T]) Set(i int, v T) {
	c.Counts.Writes++
	c.Sequence.Set(i, v)
}

// Swap counts an exchange and forwards it.
func (c *Counting[T]) Swap(i, j int) {
	c.Counts.Swaps++
	c.Sequence.Swap(i, j)
}

// Reset zeroes the counters.
func (c *Counting[T]) Reset() {
	c.Counts = Counts{}
}
