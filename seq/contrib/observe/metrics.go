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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ajroetker/go-sortvis/seq"
)

// Metrics holds the Prometheus collectors for sort runs.
type Metrics struct {
	notifications *prometheus.CounterVec
	runs          *prometheus.CounterVec
	runDuration   *prometheus.HistogramVec
	length        *prometheus.GaugeVec
}

// NewMetrics registers the sort collectors with reg. A nil reg falls back to
// prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		notifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sortvis_notifications_total",
			Help: "Observer notifications issued by sort algorithms",
		}, []string{"algorithm"}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sortvis_runs_total",
			Help: "Completed sort runs",
		}, []string{"algorithm"}),
		runDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sortvis_run_duration_seconds",
			Help:    "Wall-clock duration of one sort run",
			Buckets: prometheus.ExponentialBuckets(0.00001, 10, 9),
		}, []string{"algorithm"}),
		length: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sortvis_sequence_length",
			Help: "Length of the most recently sorted sequence",
		}, []string{"algorithm"}),
	}
}

// ObserveRun records one completed run of n elements that took ns
// nanoseconds.
func (m *Metrics) ObserveRun(algorithm string, n int, ns int64) {
	m.runs.WithLabelValues(algorithm).Inc()
	m.runDuration.WithLabelValues(algorithm).Observe(float64(ns) / 1e9)
	m.length.WithLabelValues(algorithm).Set(float64(n))
}

// Observer returns an observer counting notifications for algorithm.
func Observer[T seq.Ordered](m *Metrics, algorithm string) seq.Observer[T] {
	c := m.notifications.WithLabelValues(algorithm)
	return seq.ObserverFunc[T](func(seq.Sequence[T], seq.Range) {
		c.Inc()
	})
}
