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
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortvis/seq"
	"github.com/ajroetker/go-sortvis/seq/contrib/bench"
	"github.com/ajroetker/go-sortvis/seq/contrib/gen"
	"github.com/ajroetker/go-sortvis/seq/contrib/observe"
	"github.com/ajroetker/go-sortvis/seq/contrib/render"
	"github.com/ajroetker/go-sortvis/seq/contrib/sort"
)

func newDemoCmd() *cobra.Command {
	var (
		cfg         = DefaultConfig()
		showMetrics bool
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Count down, then animate and time each algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			run := cfg
			if flagConfig != "" {
				loaded, err := LoadConfig(flagConfig)
				if err != nil {
					zap.L().Error("unable to load config",
						zap.String("filename", flagConfig),
						zap.Error(err))
					return err
				}
				run = mergeFlags(cmd, loaded, cfg)
			}

			reg := prometheus.NewRegistry()
			d := &demo{
				cfg:     run,
				out:     cmd.OutOrStdout(),
				log:     zap.L(),
				metrics: observe.NewMetrics(reg),
			}
			if err := d.Run(cmd.Context()); err != nil {
				return err
			}
			if showMetrics {
				return writeMetrics(d.out, reg)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.Size, "size", cfg.Size, "number of elements")
	f.StringVar(&cfg.Input, "input", cfg.Input, "ascending or uniform")
	f.IntVar(&cfg.Max, "max", cfg.Max, "largest uniform value (0 uses size)")
	f.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for shuffles and uniform input")
	f.Float64Var(&cfg.FPS, "fps", cfg.FPS, "frames per second; 0 runs unpaced")
	f.IntVar(&cfg.Countdown, "countdown", cfg.Countdown, "seconds to count down before starting")
	f.DurationVar(&cfg.Pause, "pause", cfg.Pause, "pause around each stage")
	f.StringSliceVar(&cfg.Algorithms, "algorithms", cfg.Algorithms, "algorithms to run, in order")
	f.BoolVar(&cfg.Render, "render", cfg.Render, "draw the bar chart")
	f.IntVar(&cfg.Height, "height", cfg.Height, "bar chart height in rows")
	f.StringVar(&cfg.Color, "color", cfg.Color, "auto, ascii, ansi, ansi256 or truecolor")
	f.BoolVar(&showMetrics, "metrics", false, "print Prometheus metrics after the run")
	return cmd
}

// mergeFlags copies every flag the user set explicitly from flags onto file.
func mergeFlags(cmd *cobra.Command, file, flags Config) Config {
	changed := cmd.Flags().Changed
	if changed("size") {
		file.Size = flags.Size
	}
	if changed("input") {
		file.Input = flags.Input
	}
	if changed("max") {
		file.Max = flags.Max
	}
	if changed("seed") {
		file.Seed = flags.Seed
	}
	if changed("fps") {
		file.FPS = flags.FPS
	}
	if changed("countdown") {
		file.Countdown = flags.Countdown
	}
	if changed("pause") {
		file.Pause = flags.Pause
	}
	if changed("algorithms") {
		file.Algorithms = flags.Algorithms
	}
	if changed("render") {
		file.Render = flags.Render
	}
	if changed("height") {
		file.Height = flags.Height
	}
	if changed("color") {
		file.Color = flags.Color
	}
	return file
}

// demo runs the staged presentation: a countdown, then for every algorithm
// show the input, shuffle it, sort it under the renderer and report the time.
type demo struct {
	cfg     Config
	out     io.Writer
	log     *zap.Logger
	metrics *observe.Metrics

	// sleep is replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// stageResult is the timing of one algorithm stage.
type stageResult struct {
	Algorithm     sort.Algorithm
	Nanos         int64
	Notifications int
}

func (d *demo) Run(ctx context.Context) error {
	_, err := d.run(ctx)
	return err
}

func (d *demo) run(ctx context.Context) ([]stageResult, error) {
	algos, err := d.cfg.Validate()
	if err != nil {
		return nil, err
	}
	if d.sleep == nil {
		d.sleep = sleepCtx
	}

	data, err := d.input()
	if err != nil {
		return nil, err
	}
	bars, err := d.bars()
	if err != nil {
		return nil, err
	}
	draw := func() {
		if bars != nil {
			s := seq.Slice[int](data)
			bars.Notify(s, seq.Full[int](s))
		}
	}

	if err := d.countdown(ctx, draw); err != nil {
		return nil, err
	}

	var results []stageResult
	for i, algo := range algos {
		if ctx.Err() != nil {
			fmt.Fprintln(d.out, "\nending now")
			return results, nil
		}
		d.log.Info("starting stage",
			zap.String("algorithm", algo.String()),
			zap.Int("size", len(data)))

		fmt.Fprintf(d.out, "\n\nperforming %s sort on %d elements...\n", algo, len(data))
		draw()
		if err := d.sleep(ctx, d.cfg.Pause); err != nil {
			continue
		}
		gen.Shuffle(data, d.cfg.Seed+uint64(i))
		if err := d.sleep(ctx, d.cfg.Pause); err != nil {
			continue
		}

		res, err := d.stage(ctx, algo, data, bars)
		if err != nil {
			return results, err
		}
		results = append(results, res)

		secs, mins := elapsed(res.Nanos)
		fmt.Fprintf(d.out, "finished %s sort in %g seconds or %g minutes\n", algo, secs, mins)
		_ = d.sleep(ctx, d.cfg.Pause)
	}
	return results, nil
}

// stage sorts data with algo under the configured observers and times it.
func (d *demo) stage(ctx context.Context, algo sort.Algorithm, data []int, bars *render.Bars[int]) (stageResult, error) {
	counter := &observe.Counter[int]{}
	observers := []seq.Observer[int]{
		counter,
		observe.NewLogged[int](d.log, algo.String()),
		observe.Observer[int](d.metrics, algo.String()),
	}
	if bars != nil {
		bars.Title = fmt.Sprintf("%s sort  n=%d", algo, len(data))
		observers = append(observers, observe.NewPaced[int](ctx, d.cfg.FPS, bars))
	}
	obs := seq.Multi(observers...)

	ns, err := bench.NanosecondsErr(func() error {
		return sort.Run(algo, data, obs)
	})
	if err != nil {
		return stageResult{}, fmt.Errorf("%s sort: %w", algo, err)
	}
	if bars != nil && bars.Err() != nil {
		return stageResult{}, fmt.Errorf("drawing %s sort: %w", algo, bars.Err())
	}
	d.metrics.ObserveRun(algo.String(), len(data), ns)
	return stageResult{Algorithm: algo, Nanos: ns, Notifications: counter.N}, nil
}

func (d *demo) countdown(ctx context.Context, draw func()) error {
	if d.cfg.Countdown <= 0 {
		return nil
	}
	fmt.Fprint(d.out, "starting in x")
	for j := d.cfg.Countdown; j > 0; j-- {
		fmt.Fprintf(d.out, "\b%d", j)
		draw()
		if err := d.sleep(ctx, time.Second); err != nil {
			return nil
		}
	}
	fmt.Fprintln(d.out, "\b\b\b\bnow ")
	draw()
	return nil
}

func (d *demo) input() ([]int, error) {
	if d.cfg.Input == "uniform" {
		hi := d.cfg.Max
		if hi <= 0 {
			hi = max(d.cfg.Size, 1)
		}
		return gen.Uniform(d.cfg.Size, hi, d.cfg.Seed)
	}
	return gen.Ascending[int](d.cfg.Size), nil
}

func (d *demo) bars() (*render.Bars[int], error) {
	if !d.cfg.Render {
		return nil, nil
	}
	top := d.cfg.Max
	if d.cfg.Input == "ascending" || top <= 0 {
		top = d.cfg.Size
	}
	b := render.NewBars[int](d.out, top, d.cfg.Height)
	b.Clear = true
	profile, err := colorProfile(d.cfg.Color)
	if err != nil {
		return nil, err
	}
	if d.cfg.Color != "auto" {
		b.SetColorProfile(profile)
	}
	return b, nil
}

func colorProfile(name string) (termenv.Profile, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return termenv.EnvColorProfile(), nil
	case "ascii", "none":
		return termenv.Ascii, nil
	case "ansi":
		return termenv.ANSI, nil
	case "ansi256":
		return termenv.ANSI256, nil
	case "truecolor":
		return termenv.TrueColor, nil
	}
	return termenv.Ascii, fmt.Errorf("unknown color profile %q", name)
}

// elapsed converts nanoseconds to seconds and minutes.
func elapsed(ns int64) (seconds, minutes float64) {
	seconds = float64(ns) / 1e9
	return seconds, seconds / 60
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}
