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

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortvis/seq/contrib/observe"
	"github.com/ajroetker/go-sortvis/seq/contrib/sort"
)

func noSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

func newTestDemo(cfg Config, out *bytes.Buffer) *demo {
	return &demo{
		cfg:     cfg,
		out:     out,
		log:     zap.NewNop(),
		metrics: observe.NewMetrics(prometheus.NewRegistry()),
		sleep:   noSleep,
	}
}

func TestDemoRunsEveryStage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 12
	cfg.FPS = 0
	cfg.Color = "ascii"
	cfg.Height = 4

	var out bytes.Buffer
	d := newTestDemo(cfg, &out)
	results, err := d.run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, len(sort.All()))

	text := out.String()
	assert.Contains(t, text, "starting in x")
	assert.Contains(t, text, "now")
	for i, a := range sort.All() {
		assert.Equal(t, a, results[i].Algorithm)
		assert.Contains(t, text, "performing "+a.String()+" sort on 12 elements...")
		assert.Contains(t, text, "finished "+a.String()+" sort in ")
		assert.Positive(t, results[i].Notifications, a.String())
	}
	assert.Contains(t, text, "quick sort  n=12  frame")
}

func TestDemoWithoutRender(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 30
	cfg.Input = "uniform"
	cfg.Render = false
	cfg.Countdown = 0
	cfg.Algorithms = []string{"insertion"}

	var out bytes.Buffer
	results, err := newTestDemo(cfg, &out).run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NotContains(t, out.String(), "█")
	assert.NotContains(t, out.String(), "starting in")
}

func TestDemoStopsWhenCancelled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Render = false

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	results, err := newTestDemo(cfg, &out).run(ctx)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 1, strings.Count(out.String(), "ending now"))
}

func TestDemoInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithms = []string{"sleep"}
	_, err := newTestDemo(cfg, &bytes.Buffer{}).run(context.Background())
	assert.ErrorIs(t, err, errInvalidConfig)
}

func TestElapsed(t *testing.T) {
	secs, mins := elapsed(90 * int64(time.Second))
	assert.Equal(t, 90.0, secs)
	assert.Equal(t, 1.5, mins)
}

func TestColorProfile(t *testing.T) {
	for _, name := range []string{"auto", "ascii", "ansi", "ansi256", "truecolor", "TrueColor"} {
		_, err := colorProfile(name)
		assert.NoError(t, err, name)
	}
	_, err := colorProfile("cmyk")
	assert.Error(t, err)
}

func TestCommands(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"verify", "--sizes", "0,1,5,20", "--seeds", "3", "--workers", "2"}, []string{"ok: 60 cases"}},
		{[]string{"bench", "--sizes", "20", "--seeds", "1", "--algorithms", "quick,shaker", "--metrics"}, []string{"sortvis bench", "quick", "shaker", "sortvis_runs_total"}},
		{[]string{"demo", "--size", "5", "--countdown", "0", "--pause", "0s", "--render=false", "--algorithms", "bubble"}, []string{"finished bubble sort"}},
	}
	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			var out bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.ExecuteContext(context.Background()))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}
