// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewPool_Limit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: 4, want: 4},
		{in: 1, want: 1},
		{in: 0, want: 1},
		{in: -3, want: 1},
	}

	for _, tt := range tests {
		if got := NewPool(tt.in).Limit(); got != tt.want {
			t.Errorf("NewPool(%d).Limit() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPool_ForEach_AllIndexesCalled(t *testing.T) {
	p := NewPool(3)
	seen := make([]int32, 50)

	err := p.ForEach(context.Background(), len(seen), func(ctx context.Context, i int) error {
		atomic.AddInt32(&seen[i], 1)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range seen {
		if v != 1 {
			t.Errorf("index %d: expected 1 call, got %d", i, v)
		}
	}
}

func TestPool_ForEach_Empty(t *testing.T) {
	p := NewPool(2)

	err := p.ForEach(context.Background(), 0, func(ctx context.Context, i int) error {
		t.Fatal("fn must not be called for n=0")
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPool_ForEach_RespectsLimit(t *testing.T) {
	const limit = 3
	p := NewPool(limit)

	var current, peak atomic.Int32
	err := p.ForEach(context.Background(), 20, func(ctx context.Context, i int) error {
		n := current.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		current.Add(-1)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if peak.Load() > limit {
		t.Errorf("expected at most %d concurrent calls, got %d", limit, peak.Load())
	}
}

func TestPool_ForEach_LimitOneIsSequential(t *testing.T) {
	p := NewPool(1)

	var mu sync.Mutex
	order := make([]int, 0, 5)
	err := p.ForEach(context.Background(), 5, func(ctx context.Context, i int) error {
		mu.Lock()
		order = append(order, i)
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range order {
		if v != i {
			t.Fatalf("expected order 0..4, got %v", order)
		}
	}
}

func TestPool_ForEach_ErrorStopsRun(t *testing.T) {
	p := NewPool(1)
	boom := errors.New("boom")

	var calls atomic.Int32
	err := p.ForEach(context.Background(), 10, func(ctx context.Context, i int) error {
		calls.Add(1)
		if i == 2 {
			return boom
		}
		return nil
	})

	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if calls.Load() >= 10 {
		t.Errorf("expected remaining calls to be skipped, got %d calls", calls.Load())
	}
}

func TestPool_ForEach_CancelledContext(t *testing.T) {
	p := NewPool(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	err := p.ForEach(ctx, 5, func(ctx context.Context, i int) error {
		calls.Add(1)
		return nil
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("expected no calls on cancelled context, got %d", calls.Load())
	}
}
