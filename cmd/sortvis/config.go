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
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-sortvis/seq/contrib/sort"
)

// Config drives the demo. It is read from a YAML file and overridden by
// command-line flags.
type Config struct {
	// Size is the number of elements to sort.
	Size int `yaml:"size"`

	// Input is "ascending" (1..Size, shuffled before each stage) or
	// "uniform" (random values in [1, Max]).
	Input string `yaml:"input"`

	// Max bounds uniform values. Zero uses Size.
	Max int `yaml:"max"`

	// Seed drives the shuffles and the uniform draw.
	Seed uint64 `yaml:"seed"`

	// FPS caps how many frames per second the renderer draws, which paces
	// the sorts. Zero disables pacing.
	FPS float64 `yaml:"fps"`

	// Countdown is the number of seconds counted down before the first stage.
	Countdown int `yaml:"countdown"`

	// Pause is the delay around each stage.
	Pause time.Duration `yaml:"pause"`

	// Algorithms lists the stages in order.
	Algorithms []string `yaml:"algorithms"`

	// Render enables the terminal bar chart.
	Render bool `yaml:"render"`

	// Height is the bar chart height in rows.
	Height int `yaml:"height"`

	// Color is one of "auto", "ascii", "ansi", "ansi256" or "truecolor".
	Color string `yaml:"color"`
}

// DefaultConfig matches the classic demo: fifty bars, a three second
// countdown and every algorithm once.
func DefaultConfig() Config {
	return Config{
		Size:       50,
		Input:      "ascending",
		Seed:       1,
		FPS:        60,
		Countdown:  3,
		Pause:      time.Second,
		Algorithms: algorithmNames(sort.All()),
		Render:     true,
		Height:     20,
		Color:      "auto",
	}
}

// LoadConfig reads path over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

var errInvalidConfig = errors.New("invalid config")

// Validate checks cfg and returns the parsed algorithm list.
func (cfg Config) Validate() ([]sort.Algorithm, error) {
	var errs []error
	if cfg.Size < 0 {
		errs = append(errs, fmt.Errorf("size must not be negative, got %d", cfg.Size))
	}
	if cfg.Max < 0 {
		errs = append(errs, fmt.Errorf("max must not be negative, got %d", cfg.Max))
	}
	if cfg.FPS < 0 {
		errs = append(errs, fmt.Errorf("fps must not be negative, got %v", cfg.FPS))
	}
	if cfg.Countdown < 0 {
		errs = append(errs, fmt.Errorf("countdown must not be negative, got %d", cfg.Countdown))
	}
	if cfg.Pause < 0 {
		errs = append(errs, fmt.Errorf("pause must not be negative, got %v", cfg.Pause))
	}
	switch cfg.Input {
	case "ascending", "uniform":
	default:
		errs = append(errs, fmt.Errorf("input must be ascending or uniform, got %q", cfg.Input))
	}
	if _, err := colorProfile(cfg.Color); err != nil {
		errs = append(errs, err)
	}

	algos, err := parseAlgorithms(cfg.Algorithms)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", errInvalidConfig, errors.Join(errs...))
	}
	return algos, nil
}

func parseAlgorithms(names []string) ([]sort.Algorithm, error) {
	algos := make([]sort.Algorithm, 0, len(names))
	for _, name := range names {
		a, err := sort.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algos = append(algos, a)
	}
	return algos, nil
}
