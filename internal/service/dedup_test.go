// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claimNow(t *testing.T, d *dedupSet, text string) bool {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	owner, err := d.claim(ctx, text)
	require.NoError(t, err)
	return owner
}

func TestDedupSet_SeedAndSettle(t *testing.T) {
	d := newDedupSet()
	d.seed("a")

	assert.False(t, claimNow(t, d, "a"))
	assert.True(t, claimNow(t, d, "b"))

	d.settle("b", true)
	assert.False(t, claimNow(t, d, "b"))

	assert.True(t, claimNow(t, d, "c"))
	d.settle("c", false)
	assert.True(t, claimNow(t, d, "c"))
}

// дубликат ждёт исход первой загрузки и после неудачи сам становится владельцем
func TestDedupSet_WaiterTakesOverFailedUpload(t *testing.T) {
	d := newDedupSet()
	require.True(t, claimNow(t, d, "x"))

	result := make(chan bool, 1)
	go func() {
		owner, err := d.claim(context.Background(), "x")
		assert.NoError(t, err)
		result <- owner
	}()

	select {
	case <-result:
		t.Fatal("claim returned while the first upload was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	d.settle("x", false)

	select {
	case owner := <-result:
		assert.True(t, owner)
	case <-time.After(time.Second):
		t.Fatal("waiter was not released")
	}
}

func TestDedupSet_WaiterSeesSuccessfulUpload(t *testing.T) {
	d := newDedupSet()
	require.True(t, claimNow(t, d, "x"))

	result := make(chan bool, 1)
	go func() {
		owner, err := d.claim(context.Background(), "x")
		assert.NoError(t, err)
		result <- owner
	}()

	d.settle("x", true)

	select {
	case owner := <-result:
		assert.False(t, owner)
	case <-time.After(time.Second):
		t.Fatal("waiter was not released")
	}
}

func TestDedupSet_ClaimCancelled(t *testing.T) {
	d := newDedupSet()
	require.True(t, claimNow(t, d, "x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	owner, err := d.claim(ctx, "x")
	assert.False(t, owner)
	assert.ErrorIs(t, err, context.Canceled)
}
