// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides bounded concurrent execution of independent
// per-item work, used by the import pipeline to re-key and upload bundle
// items in parallel.
package workers

import "context"

// Runner executes fn for every index in [0, n).
//
// Implementations may run calls concurrently; fn must only touch state owned
// by its index or protected by its own synchronization. A non-nil error from
// fn aborts the run: calls not yet started are skipped and the first error is
// returned.
//
// Example usage:
//
//	results := make([]string, len(items))
//	err := runner.ForEach(ctx, len(items), func(ctx context.Context, i int) error {
//	    results[i] = process(items[i])
//	    return nil
//	})
type Runner interface {
	ForEach(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error
}
