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

// Package seq provides the contracts shared by every observable sort:
// a random-access Sequence handle, the half-open Range it is sorted and
// reported over, and the Observer that is told about each mutation.
//
// Algorithms in seq/contrib/sort are written once against these
// interfaces. Any container can be sorted by implementing Sequence, and
// any consumer (renderer, logger, test harness) can watch the sort by
// implementing Observer.
//
// Basic usage:
//
//	import (
//	    "github.com/ajroetker/go-sortvis/seq"
//	    "github.com/ajroetker/go-sortvis/seq/contrib/sort"
//	)
//
//	data := []int{5, 3, 4, 1, 2}
//	s := seq.Slice[int](data)
//	err := sort.Quick(s, seq.Full(s), seq.ObserverFunc[int](func(s seq.Sequence[int], r seq.Range) {
//	    fmt.Println(s.(seq.Slice[int])[r.First:r.Last])
//	}))
package seq

// Floats is a constraint for floating-point types.
//
// NaN values break the total order the algorithms rely on; callers
// sorting floats must not pass NaN.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Numbers is a constraint for values that can be mapped onto a numeric
// scale, e.g. a bar height.
type Numbers interface {
	Integers | Floats
}

// Ordered is a constraint for every element type the sort engine accepts.
type Ordered interface {
	Numbers | ~string
}
