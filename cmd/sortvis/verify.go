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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortvis/seq/contrib/suite"
	"github.com/ajroetker/go-sortvis/seq/contrib/workerpool"
)

func newVerifyCmd() *cobra.Command {
	var (
		algorithms []string
		sizes      = []int{0, 1, 2, 3, 16, 100, 500}
		seeds      = 50
		seed       = uint64(1)
		maxValue   int
		workers    int
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every algorithm sorts many random inputs correctly",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(algorithms) == 0 {
				algorithms = DefaultConfig().Algorithms
			}
			algos, err := parseAlgorithms(algorithms)
			if err != nil {
				return err
			}

			pool := workerpool.New(workers)
			defer pool.Close()

			cfg := suite.Config{
				Algorithms: algos,
				Sizes:      sizes,
				Seeds:      seeds,
				BaseSeed:   seed,
				Max:        maxValue,
			}
			results, err := suite.Verify(cmd.Context(), pool, cfg)
			if err != nil {
				zap.L().Error("verification failed", zap.Error(err))
				return err
			}

			notifications := 0
			for _, r := range results {
				notifications += r.Notifications
			}
			zap.L().Info("verification passed",
				zap.Int("cases", len(results)),
				zap.Int("workers", pool.NumWorkers()))
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d cases, %d notifications\n", len(results), notifications)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&algorithms, "algorithms", nil, "algorithms to check (default all)")
	f.IntSliceVar(&sizes, "sizes", sizes, "sequence lengths")
	f.IntVar(&seeds, "seeds", seeds, "random inputs per algorithm and size")
	f.Uint64Var(&seed, "seed", seed, "seed of the first input")
	f.IntVar(&maxValue, "max", 0, "largest generated value (0 uses the size, so duplicates are common)")
	f.IntVar(&workers, "workers", 0, "parallel workers (0 uses GOMAXPROCS)")
	return cmd
}
