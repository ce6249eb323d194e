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
	"math"

	"golang.org/x/time/rate"

	"github.com/ajroetker/go-sortvis/seq"
)

// Paced forwards notifications to another observer no faster than a fixed
// rate. Because Notify blocks the sorting goroutine, the limiter paces the
// sort itself.
//
// Once ctx is done Paced stops waiting and forwards immediately, letting an
// interrupted sort run to completion without delay.
type Paced[T seq.Ordered] struct {
	ctx     context.Context
	limiter *rate.Limiter
	next    seq.Observer[T]
	skipped int
}

// NewPaced returns an observer forwarding to next at most perSecond times a
// second. perSecond <= 0 disables pacing.
func NewPaced[T seq.Ordered](ctx context.Context, perSecond float64, next seq.Observer[T]) *Paced[T] {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 || math.IsInf(perSecond, 1) {
		limit = rate.Inf
	}
	return &Paced[T]{
		ctx:     ctx,
		limiter: rate.NewLimiter(limit, 1),
		next:    seq.OrNop(next),
	}
}

// Notify waits for the limiter, then forwards.
func (p *Paced[T]) Notify(s seq.Sequence[T], r seq.Range) {
	if p.ctx.Err() == nil {
		if err := p.limiter.Wait(p.ctx); err != nil {
			p.skipped++
		}
	} else {
		p.skipped++
	}
	p.next.Notify(s, r)
}

// Skipped returns how many notifications were forwarded without waiting
// because the context was done.
func (p *Paced[T]) Skipped() int {
	return p.skipped
}
