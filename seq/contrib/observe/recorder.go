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

import "github.com/ajroetker/go-sortvis/seq"

// Snapshot is the state reported by one notification.
type Snapshot[T seq.Ordered] struct {
	Range  seq.Range
	Values []T
}

// Recorder stores a copy of the reported range on every notification.
type Recorder[T seq.Ordered] struct {
	// Limit caps the number of stored snapshots; 0 means no limit.
	// Notifications past the limit are still counted in Total.
	Limit int

	Snapshots []Snapshot[T]
	Total     int
}

// Notify records r and the values of s over r.
func (rec *Recorder[T]) Notify(s seq.Sequence[T], r seq.Range) {
	rec.Total++
	if rec.Limit > 0 && len(rec.Snapshots) >= rec.Limit {
		return
	}
	rec.Snapshots = append(rec.Snapshots, Snapshot[T]{Range: r, Values: seq.Values(s, r)})
}

// Ranges returns the range of every stored snapshot in order.
func (rec *Recorder[T]) Ranges() []seq.Range {
	out := make([]seq.Range, len(rec.Snapshots))
	for i, snap := range rec.Snapshots {
		out[i] = snap.Range
	}
	return out
}

// Replay feeds every stored snapshot to obs, as if the sort were running
// again. Each snapshot is presented as a standalone sequence whose range
// starts at the recorded First.
func (rec *Recorder[T]) Replay(obs seq.Observer[T]) {
	for _, snap := range rec.Snapshots {
		buf := make(seq.Slice[T], snap.Range.Last)
		copy(buf[snap.Range.First:], snap.Values)
		obs.Notify(buf, snap.Range)
	}
}

// Reset drops every snapshot.
func (rec *Recorder[T]) Reset() {
	rec.Snapshots = nil
	rec.Total = 0
}

// Counter counts notifications.
type Counter[T seq.Ordered] struct {
	N int

	// Last is the range of the most recent notification.
	Last seq.Range

	// Distinct is the number of different ranges reported.
	Distinct int
	seen     map[seq.Range]struct{}
}

// Notify counts one notification.
func (c *Counter[T]) Notify(_ seq.Sequence[T], r seq.Range) {
	c.N++
	c.Last = r
	if c.seen == nil {
		c.seen = make(map[seq.Range]struct{})
	}
	if _, ok := c.seen[r]; !ok {
		c.seen[r] = struct{}{}
		c.Distinct++
	}
}
