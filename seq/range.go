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

import (
	"errors"
	"fmt"
)

var (
	// ErrInvertedRange is returned when a Range has First > Last.
	ErrInvertedRange = errors.New("seq: range first is after last")

	// ErrOutOfBounds is returned when a Range reaches outside its Sequence.
	ErrOutOfBounds = errors.New("seq: range out of bounds")
)

// Range is a half-open interval [First, Last) of positions in a Sequence.
type Range struct {
	First int
	Last  int
}

// Full returns the Range covering every position of s.
func Full[T Ordered](s Sequence[T]) Range {
	return Range{First: 0, Last: s.Len()}
}

// Len returns the number of positions in r. An inverted range has length 0.
func (r Range) Len() int {
	if r.Last < r.First {
		return 0
	}
	return r.Last - r.First
}

// Contains reports whether position i lies in r.
func (r Range) Contains(i int) bool {
	return i >= r.First && i < r.Last
}

// Covers reports whether inner lies entirely within r.
func (r Range) Covers(inner Range) bool {
	return inner.First >= r.First && inner.Last <= r.Last
}

// String returns r in interval notation.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.First, r.Last)
}

// Check verifies that r is a well-formed range over a sequence of length n.
// The returned error wraps ErrInvertedRange or ErrOutOfBounds.
func (r Range) Check(n int) error {
	if r.First > r.Last {
		return fmt.Errorf("%w: %v", ErrInvertedRange, r)
	}
	if r.First < 0 || r.Last > n {
		return fmt.Errorf("%w: %v over length %d", ErrOutOfBounds, r, n)
	}
	return nil
}
