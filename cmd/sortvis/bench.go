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
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortvis/seq/contrib/bench"
	"github.com/ajroetker/go-sortvis/seq/contrib/observe"
	"github.com/ajroetker/go-sortvis/seq/contrib/suite"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newBenchCmd() *cobra.Command {
	var (
		algorithms  []string
		sizes       = []int{100, 1000}
		seeds       = 3
		seed        = uint64(1)
		showMetrics bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every algorithm over random inputs without drawing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(algorithms) == 0 {
				algorithms = DefaultConfig().Algorithms
			}
			algos, err := parseAlgorithms(algorithms)
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			cfg := suite.Config{
				Algorithms: algos,
				Sizes:      sizes,
				Seeds:      seeds,
				BaseSeed:   seed,
				Metrics:    observe.NewMetrics(reg),
			}

			zap.L().Info("benchmarking",
				zap.Strings("algorithms", algorithms),
				zap.Ints("sizes", sizes),
				zap.Int("seeds", seeds))
			results, err := suite.Bench(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("sortvis bench"))
			fmt.Fprintln(out, mutedStyle.Render(bench.CurrentHost().String()))
			writeSummary(out, suite.Summarize(results))
			if showMetrics {
				return writeMetrics(out, reg)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&algorithms, "algorithms", nil, "algorithms to time (default all)")
	f.IntSliceVar(&sizes, "sizes", sizes, "sequence lengths")
	f.IntVar(&seeds, "seeds", seeds, "random inputs per algorithm and size")
	f.Uint64Var(&seed, "seed", seed, "seed of the first input")
	f.BoolVar(&showMetrics, "metrics", false, "print Prometheus metrics after the run")
	return cmd
}

func writeSummary(w io.Writer, sums []suite.Summary) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("algorithm", "n", "runs", "min", "mean", "max").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, s := range sums {
		t.Row(
			s.Algorithm.String(),
			strconv.Itoa(s.Size),
			strconv.Itoa(s.Runs),
			formatNanos(s.MinNanos),
			formatNanos(s.MeanNanos),
			formatNanos(s.MaxNanos),
		)
	}
	fmt.Fprintln(w, t.Render())
}

func formatNanos(ns int64) string {
	return bench.Duration(ns).Round(time.Microsecond).String()
}
