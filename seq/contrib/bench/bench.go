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

// Package bench times a single invocation of an operation.
//
// The harness runs its operation exactly once: no warm-up, no retries, no
// averaging. It reads the monotonic clock immediately before and after the
// call and returns the difference in nanoseconds. It never logs or prints.
//
// Usage:
//
//	ns := bench.Nanoseconds(func() {
//	    _ = sort.Run(sort.AlgoBubble, data, renderer)
//	})
//	fmt.Printf("%.3fs\n", float64(ns)/1e9)
package bench

import "time"

// Nanoseconds calls fn once and returns how long it took.
//
// A panic in fn propagates immediately; no partial result is produced.
func Nanoseconds(fn func()) int64 {
	start := time.Now()
	fn()
	return time.Since(start).Nanoseconds()
}

// NanosecondsErr calls fn once and returns how long it took. If fn returns
// an error, the elapsed time is discarded and the error is returned as is.
func NanosecondsErr(fn func() error) (int64, error) {
	start := time.Now()
	if err := fn(); err != nil {
		return 0, err
	}
	return time.Since(start).Nanoseconds(), nil
}

// Duration converts a nanosecond count from Nanoseconds to a time.Duration.
func Duration(ns int64) time.Duration {
	return time.Duration(ns)
}
