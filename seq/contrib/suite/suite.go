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

// Package suite runs the sort algorithms over grids of generated inputs.
//
// Verify checks, in parallel, that every algorithm turns every input into a
// sorted permutation of itself. Bench times each algorithm once per input,
// sequentially, with no observer attached.
package suite

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/ajroetker/go-sortvis/seq"
	"github.com/ajroetker/go-sortvis/seq/contrib/bench"
	"github.com/ajroetker/go-sortvis/seq/contrib/gen"
	"github.com/ajroetker/go-sortvis/seq/contrib/observe"
	"github.com/ajroetker/go-sortvis/seq/contrib/sort"
	"github.com/ajroetker/go-sortvis/seq/contrib/workerpool"
)

var (
	// ErrNotSorted reports an algorithm returned with an out-of-order pair.
	ErrNotSorted = errors.New("suite: result not sorted")

	// ErrNotPermutation reports an algorithm lost or duplicated an element.
	ErrNotPermutation = errors.New("suite: result is not a permutation of the input")
)

// Config describes the grid of cases to run.
type Config struct {
	Algorithms []sort.Algorithm
	Sizes      []int

	// Seeds is the number of random inputs per algorithm and size.
	Seeds int

	// BaseSeed is the seed of the first input; the others follow it.
	BaseSeed uint64

	// Max bounds generated values to [1, Max]. Zero uses the size.
	Max int

	// Metrics, if set, receives one observation per benchmarked run.
	Metrics *observe.Metrics
}

// Case is one algorithm applied to one generated input.
type Case struct {
	Algorithm sort.Algorithm
	Size      int
	Seed      uint64
}

func (c Case) String() string {
	return fmt.Sprintf("%s/n=%d/seed=%d", c.Algorithm, c.Size, c.Seed)
}

// Result is the outcome of one Case.
type Result struct {
	Case
	Nanos         int64
	Notifications int
}

// Cases expands cfg into the list of cases in algorithm, size, seed order.
func (cfg Config) Cases() []Case {
	seeds := max(cfg.Seeds, 1)
	var out []Case
	for _, a := range cfg.Algorithms {
		for _, n := range cfg.Sizes {
			for i := range seeds {
				out = append(out, Case{Algorithm: a, Size: n, Seed: cfg.BaseSeed + uint64(i)})
			}
		}
	}
	return out
}

// Input returns the generated input for c.
func (cfg Config) Input(c Case) ([]int, error) {
	hi := cfg.Max
	if hi <= 0 {
		hi = max(c.Size, 1)
	}
	return gen.Uniform(c.Size, hi, c.Seed)
}

// Verify runs every case on pool and checks each result. It returns all
// results in case order and the first failure found.
func Verify(ctx context.Context, pool *workerpool.Pool, cfg Config) ([]Result, error) {
	cases := cfg.Cases()
	results := make([]Result, len(cases))
	err := pool.Each(ctx, len(cases), func(i int) error {
		c := cases[i]
		input, err := cfg.Input(c)
		if err != nil {
			return err
		}
		data := slices.Clone(input)
		counter := &observe.Counter[int]{}
		if err := sort.Run[int](c.Algorithm, data, counter); err != nil {
			return fmt.Errorf("%v: %w", c, err)
		}
		results[i] = Result{Case: c, Notifications: counter.N}
		return Check(input, data)
	})
	return results, err
}

// Bench times every case once, in order, on the calling goroutine.
func Bench(ctx context.Context, cfg Config) ([]Result, error) {
	cases := cfg.Cases()
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		data, err := cfg.Input(c)
		if err != nil {
			return results, err
		}
		ns, err := bench.NanosecondsErr(func() error {
			return sort.Run[int](c.Algorithm, data, nil)
		})
		if err != nil {
			return results, fmt.Errorf("%v: %w", c, err)
		}
		if cfg.Metrics != nil {
			cfg.Metrics.ObserveRun(c.Algorithm.String(), c.Size, ns)
		}
		results = append(results, Result{Case: c, Nanos: ns})
	}
	return results, nil
}

// Check reports whether got is a non-decreasing permutation of input.
func Check[T seq.Ordered](input, got []T) error {
	s := seq.Slice[T](got)
	if !seq.IsSorted[T](s, seq.Full[T](s)) {
		return ErrNotSorted
	}
	want := slices.Clone(input)
	slices.Sort(want)
	if !slices.Equal(want, got) {
		return ErrNotPermutation
	}
	return nil
}

// Summary aggregates the timings of one algorithm at one size.
type Summary struct {
	Algorithm sort.Algorithm
	Size      int
	Runs      int
	MinNanos  int64
	MeanNanos int64
	MaxNanos  int64
}

// Summarize groups results by algorithm and size, preserving first-seen
// order.
func Summarize(results []Result) []Summary {
	type key struct {
		a sort.Algorithm
		n int
	}
	index := make(map[key]int)
	var out []Summary
	var totals []int64
	for _, r := range results {
		k := key{r.Algorithm, r.Size}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Summary{Algorithm: r.Algorithm, Size: r.Size, MinNanos: r.Nanos, MaxNanos: r.Nanos})
			totals = append(totals, 0)
		}
		s := &out[i]
		s.Runs++
		s.MinNanos = min(s.MinNanos, r.Nanos)
		s.MaxNanos = max(s.MaxNanos, r.Nanos)
		totals[i] += r.Nanos
	}
	for i := range out {
		out[i].MeanNanos = totals[i] / int64(out[i].Runs)
	}
	return out
}
