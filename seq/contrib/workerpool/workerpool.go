// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs many independent jobs on a fixed set of
// persistent goroutines.
//
// The suite uses it to sort hundreds of separate sequences at once. Each
// job owns its own sequence, so a single sort still runs on one goroutine
// with exclusive access to its data; only whole jobs run in parallel.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Each(ctx, len(seeds), func(i int) error {
//	    return check(seeds[i])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused by every Each call until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool once pending work completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Each calls fn(i) for every i in [0, n), handing indices out to workers
// one at a time so that long jobs do not hold up short ones. It blocks
// until all started jobs finish.
//
// After the first error, or once ctx is done, no new index is handed out.
// Each returns the first error from fn, or ctx.Err().
func (p *Pool) Each(ctx context.Context, n int, fn func(i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	var (
		firstErr error
		errOnce  sync.Once
		stop     atomic.Bool
		next     atomic.Int64
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		stop.Store(true)
	}
	loop := func() {
		for !stop.Load() {
			if err := ctx.Err(); err != nil {
				fail(err)
				return
			}
			idx := int(next.Add(1)) - 1
			if idx >= n {
				return
			}
			if err := fn(idx); err != nil {
				fail(err)
				return
			}
		}
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		loop()
		return firstErr
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{fn: loop, barrier: &wg}
	}
	wg.Wait()
	return firstErr
}
