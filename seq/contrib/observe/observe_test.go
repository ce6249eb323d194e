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

package observe

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ajroetker/go-sortvis/seq"
	"github.com/ajroetker/go-sortvis/seq/contrib/sort"
)

func TestRecorderQuickFullRange(t *testing.T) {
	data := []int{9, 3, 7, 1, 8, 2, 6, 5, 4}
	rec := &Recorder[int]{}
	require.NoError(t, sort.Run[int](sort.AlgoQuick, data, rec))

	require.NotEmpty(t, rec.Snapshots)
	full := seq.Range{First: 0, Last: len(data)}
	for i, r := range rec.Ranges() {
		assert.Equal(t, full, r, "notification %d", i)
	}
	last := rec.Snapshots[len(rec.Snapshots)-1]
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, last.Values); diff != "" {
		t.Errorf("final snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorderLimitAndReplay(t *testing.T) {
	rec := &Recorder[int]{Limit: 2}
	s := seq.Slice[int]{3, 2, 1}
	for i := 0; i < 5; i++ {
		rec.Notify(s, seq.Range{First: 1, Last: 3})
	}
	assert.Equal(t, 5, rec.Total)
	require.Len(t, rec.Snapshots, 2)
	assert.Equal(t, []int{2, 1}, rec.Snapshots[0].Values)

	var replayed [][]int
	rec.Replay(seq.ObserverFunc[int](func(s seq.Sequence[int], r seq.Range) {
		replayed = append(replayed, seq.Values(s, r))
	}))
	assert.Equal(t, [][]int{{2, 1}, {2, 1}}, replayed)

	rec.Reset()
	assert.Empty(t, rec.Snapshots)
	assert.Zero(t, rec.Total)
}

func TestCounter(t *testing.T) {
	c := &Counter[int]{}
	data := []int{5, 4, 3, 2, 1}
	require.NoError(t, sort.Run[int](sort.AlgoBubble, data, c))
	assert.Equal(t, 10, c.N)
	assert.Equal(t, 1, c.Distinct)
	assert.Equal(t, seq.Range{First: 0, Last: 5}, c.Last)
}

func TestPacedLimitsRate(t *testing.T) {
	c := &Counter[int]{}
	p := NewPaced[int](context.Background(), 100, c)

	start := time.Now()
	for i := 0; i < 6; i++ {
		p.Notify(seq.Slice[int]{1}, seq.Range{First: 0, Last: 1})
	}
	// The first token is immediate, the next five wait 10ms each.
	assert.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond)
	assert.Equal(t, 6, c.N)
	assert.Zero(t, p.Skipped())
}

func TestPacedUnlimitedAndCancelled(t *testing.T) {
	c := &Counter[int]{}
	p := NewPaced[int](context.Background(), 0, c)
	data := []int{4, 3, 2, 1}
	require.NoError(t, sort.Run[int](sort.AlgoInsertion, data, p))
	assert.Equal(t, 9, c.N)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c = &Counter[int]{}
	p = NewPaced[int](ctx, 0.001, c)
	start := time.Now()
	data = []int{4, 3, 2, 1}
	require.NoError(t, sort.Run[int](sort.AlgoBubble, data, p))
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 6, c.N)
	assert.Equal(t, 6, p.Skipped())
	assert.Equal(t, []int{1, 2, 3, 4}, data)
}

func TestLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLogged[int](zap.New(core), "selection")
	l.MaxValues = 3

	require.NoError(t, sort.Run[int](sort.AlgoSelection, []int{3, 1, 2}, l))
	entries := logs.All()
	require.Len(t, entries, l.Count())
	require.NotEmpty(t, entries)

	first := entries[0].ContextMap()
	assert.Equal(t, "selection", first["algorithm"])
	assert.Equal(t, int64(1), first["notification"])
	assert.Contains(t, first, "values")

	l.MaxValues = 0
	l.Notify(seq.Slice[int]{1, 2}, seq.Range{First: 0, Last: 2})
	assert.NotContains(t, logs.All()[len(logs.All())-1].ContextMap(), "values")
}

func TestLoggedDisabledLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewLogged[int](zap.New(core), "bubble")
	require.NoError(t, sort.Run[int](sort.AlgoBubble, []int{2, 1}, l))
	assert.Equal(t, 1, l.Count())
	assert.Zero(t, logs.Len())
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	obs := Observer[int](m, "bubble")
	require.NoError(t, sort.Run(sort.AlgoBubble, []int{3, 2, 1}, obs))
	m.ObserveRun("bubble", 3, 1500)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.notifications.WithLabelValues("bubble")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("bubble")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.length.WithLabelValues("bubble")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.runDuration))

	n, err := testutil.GatherAndCount(reg, "sortvis_notifications_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
