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

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ajroetker/go-sortvis/seq"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm and For for names or
// values that do not denote an algorithm.
var ErrUnknownAlgorithm = errors.New("sort: unknown algorithm")

// Func is the common signature of every algorithm in this package.
type Func[T seq.Ordered] func(s seq.Sequence[T], r seq.Range, obs seq.Observer[T]) error

// Algorithm names one of the sorts in this package.
type Algorithm int

const (
	// AlgoBubble selects Bubble.
	AlgoBubble Algorithm = iota

	// AlgoShaker selects Shaker (cocktail-shaker sort).
	AlgoShaker

	// AlgoSelection selects Selection.
	AlgoSelection

	// AlgoInsertion selects Insertion.
	AlgoInsertion

	// AlgoQuick selects Quick.
	AlgoQuick
)

// String returns the short name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgoBubble:
		return "bubble"
	case AlgoShaker:
		return "shaker"
	case AlgoSelection:
		return "selection"
	case AlgoInsertion:
		return "insertion"
	case AlgoQuick:
		return "quick"
	default:
		return "unknown"
	}
}

// All returns every algorithm in the order they are demonstrated.
func All() []Algorithm {
	return []Algorithm{AlgoBubble, AlgoShaker, AlgoSelection, AlgoInsertion, AlgoQuick}
}

// ParseAlgorithm maps a name to its Algorithm. Matching is case-insensitive
// and accepts a trailing "sort" ("quicksort", "bubble_sort") as well as
// "cocktail" for the shaker sort.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimRight(strings.TrimSuffix(n, "sort"), " _-")
	switch n {
	case "bubble":
		return AlgoBubble, nil
	case "shaker", "cocktail", "cocktail-shaker", "cocktail_shaker":
		return AlgoShaker, nil
	case "selection":
		return AlgoSelection, nil
	case "insertion":
		return AlgoInsertion, nil
	case "quick":
		return AlgoQuick, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// For returns the implementation of a for element type T.
func For[T seq.Ordered](a Algorithm) (Func[T], error) {
	switch a {
	case AlgoBubble:
		return Bubble[T], nil
	case AlgoShaker:
		return Shaker[T], nil
	case AlgoSelection:
		return Selection[T], nil
	case AlgoInsertion:
		return Insertion[T], nil
	case AlgoQuick:
		return Quick[T], nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
}

// Run sorts all of data in place with algorithm a, notifying obs.
// obs may be nil.
func Run[T seq.Ordered](a Algorithm, data []T, obs seq.Observer[T]) error {
	fn, err := For[T](a)
	if err != nil {
		return err
	}
	s := seq.Slice[T](data)
	return fn(s, seq.Full[T](s), obs)
}

// prepare validates r against s and substitutes a no-op for a nil observer.
// It reports whether the range needs sorting at all.
func prepare[T seq.Ordered](s seq.Sequence[T], r seq.Range, obs seq.Observer[T]) (seq.Observer[T], bool, error) {
	if err := r.Check(s.Len()); err != nil {
		return nil, false, err
	}
	return seq.OrNop(obs), r.Len() > 1, nil
}
