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

// Package gen produces the initial sequences fed to the sort engine.
//
// Every random generator takes an explicit seed: the same seed always yields
// the same sequence, so benchmarks and test fixtures are reproducible.
package gen

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/ajroetker/go-sortvis/seq"
)

// ErrInvalidMax is returned when a uniform draw has no values to draw from.
var ErrInvalidMax = errors.New("gen: max must be at least 1")

// Ascending returns the identity permutation 1..n.
func Ascending[T seq.Numbers](n int) []T {
	out := make([]T, max(n, 0))
	for i := range out {
		out[i] = T(i + 1)
	}
	return out
}

// Descending returns n..1.
func Descending[T seq.Numbers](n int) []T {
	out := make([]T, max(n, 0))
	for i := range out {
		out[i] = T(len(out) - i)
	}
	return out
}

// Constant returns n copies of v.
func Constant[T seq.Ordered](n int, v T) []T {
	out := make([]T, max(n, 0))
	for i := range out {
		out[i] = v
	}
	return out
}

// Uniform returns n values drawn uniformly from [1, hi] using seed.
func Uniform[T seq.Integers](n int, hi T, seed uint64) ([]T, error) {
	if hi < 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidMax, hi)
	}
	rng := NewRand(seed)
	out := make([]T, max(n, 0))
	for i := range out {
		out[i] = T(rng.Uint64N(uint64(hi))) + 1
	}
	return out, nil
}

// Shuffle permutes data in place with a Fisher-Yates shuffle driven by seed.
func Shuffle[T any](data []T, seed uint64) {
	rng := NewRand(seed)
	rng.Shuffle(len(data), func(i, j int) {
		data[i], data[j] = data[j], data[i]
	})
}

// NewRand returns the deterministic generator used by this package.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
