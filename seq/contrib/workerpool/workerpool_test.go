// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestEach(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	err := pool.Each(context.Background(), n, func(i int) error {
		results[i] = i * 2
		return nil
	})
	if err != nil {
		t.Fatalf("Each: %v", err)
	}
	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestEachReuse(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var total atomic.Int64
	for range 10 {
		_ = pool.Each(context.Background(), 50, func(i int) error {
			total.Add(1)
			return nil
		})
	}
	if total.Load() != 500 {
		t.Errorf("total = %d, want 500", total.Load())
	}
}

func TestEachStopsOnError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	errBad := errors.New("bad job")
	var ran atomic.Int64
	err := pool.Each(context.Background(), 10000, func(i int) error {
		ran.Add(1)
		if i == 3 {
			return errBad
		}
		return nil
	})
	if !errors.Is(err, errBad) {
		t.Fatalf("Each err = %v, want %v", err, errBad)
	}
	if ran.Load() == 10000 {
		t.Errorf("Each kept handing out work after an error")
	}
}

func TestEachCancelled(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var ran atomic.Int64
	err := pool.Each(ctx, 100, func(i int) error {
		ran.Add(1)
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Each err = %v, want context.Canceled", err)
	}
	if ran.Load() != 0 {
		t.Errorf("ran %d jobs after cancel", ran.Load())
	}
}

func TestEachAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	count := 0
	err := pool.Each(context.Background(), 10, func(i int) error {
		count++
		return nil
	})
	if err != nil || count != 10 {
		t.Errorf("Each after Close: count=%d err=%v", count, err)
	}
}

func TestEachEmpty(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	if err := pool.Each(context.Background(), 0, func(int) error {
		t.Error("fn called for n=0")
		return nil
	}); err != nil {
		t.Errorf("Each(0) = %v", err)
	}
}
