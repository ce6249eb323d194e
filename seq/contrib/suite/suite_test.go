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

package suite

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortvis/seq/contrib/observe"
	"github.com/ajroetker/go-sortvis/seq/contrib/sort"
	"github.com/ajroetker/go-sortvis/seq/contrib/workerpool"
)

func TestCases(t *testing.T) {
	cfg := Config{
		Algorithms: []sort.Algorithm{sort.AlgoBubble, sort.AlgoQuick},
		Sizes:      []int{0, 10},
		Seeds:      3,
		BaseSeed:   100,
	}
	cases := cfg.Cases()
	require.Len(t, cases, 12)
	assert.Equal(t, Case{Algorithm: sort.AlgoBubble, Size: 0, Seed: 100}, cases[0])
	assert.Equal(t, Case{Algorithm: sort.AlgoQuick, Size: 10, Seed: 102}, cases[11])
	assert.Equal(t, "quick/n=10/seed=102", cases[11].String())
}

func TestVerifyAllAlgorithms(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	cfg := Config{
		Algorithms: sort.All(),
		Sizes:      []int{0, 1, 2, 17, 64},
		Seeds:      8,
		BaseSeed:   1,
		Max:        20,
	}
	results, err := Verify(context.Background(), pool, cfg)
	require.NoError(t, err)
	require.Len(t, results, len(cfg.Cases()))
	for _, r := range results {
		if r.Size <= 1 {
			assert.Zero(t, r.Notifications, r.Case.String())
		}
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check([]int{3, 1, 2}, []int{1, 2, 3}))
	assert.ErrorIs(t, Check([]int{3, 1, 2}, []int{1, 3, 2}), ErrNotSorted)
	assert.ErrorIs(t, Check([]int{3, 1, 2}, []int{1, 1, 2}), ErrNotPermutation)
	assert.NoError(t, Check([]string{}, []string{}))
}

func TestBenchRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := Config{
		Algorithms: []sort.Algorithm{sort.AlgoInsertion, sort.AlgoSelection},
		Sizes:      []int{50},
		Seeds:      2,
		Metrics:    observe.NewMetrics(reg),
	}
	results, err := Bench(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, 4)
	for _, r := range results {
		assert.Positive(t, r.Nanos)
	}

	n, err := testutil.GatherAndCount(reg, "sortvis_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	sums := Summarize(results)
	require.Len(t, sums, 2)
	assert.Equal(t, sort.AlgoInsertion, sums[0].Algorithm)
	assert.Equal(t, 2, sums[0].Runs)
	assert.LessOrEqual(t, sums[0].MinNanos, sums[0].MeanNanos)
	assert.LessOrEqual(t, sums[0].MeanNanos, sums[0].MaxNanos)
}

func TestBenchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := Bench(ctx, Config{Algorithms: sort.All(), Sizes: []int{10}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
