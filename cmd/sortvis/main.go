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

// Command sortvis animates and benchmarks the observable sorts.
//
// Usage:
//
//	sortvis demo                          # countdown, then every algorithm in turn
//	sortvis demo --size 80 --fps 120 --algorithms quick,insertion
//	sortvis demo --config demo.yaml --metrics
//	sortvis bench --sizes 100,1000 --seeds 5
//	sortvis verify --sizes 0,1,2,50,200 --seeds 100
//
// The demo draws each sort as a terminal bar chart, one frame per exchange,
// and prints how long each sort took. bench times the algorithms without
// drawing; verify checks their results over many random inputs in parallel.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortvis/seq/contrib/sort"
)

var (
	flagConfig  string
	flagVerbose bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sortvis",
		Short: "Watch and time classic comparison sorts",
		Long: `sortvis runs bubble, shaker, selection, insertion and quick sort over
generated sequences, drawing every exchange as a terminal bar chart and
reporting how long each sort took.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(flagVerbose)
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			zap.ReplaceGlobals(log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging, including every notification")

	root.AddCommand(newDemoCmd(), newBenchCmd(), newVerifyCmd())
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

func algorithmNames(algos []sort.Algorithm) []string {
	return lo.Map(algos, func(a sort.Algorithm, _ int) string {
		return a.String()
	})
}
