// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool is a [Runner] that runs at most limit calls at the same time.
type Pool struct {
	limit int
}

// NewPool returns a pool bounded to limit concurrent calls. A limit below one
// is treated as one.
func NewPool(limit int) *Pool {
	if limit < 1 {
		limit = 1
	}
	return &Pool{limit: limit}
}

// Limit returns the concurrency bound of the pool.
func (p *Pool) Limit() int {
	return p.limit
}

// ForEach implements [Runner]. Indexes are dispatched in increasing order.
// Once ctx is cancelled or a call fails, remaining indexes are not started.
func (p *Pool) ForEach(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
