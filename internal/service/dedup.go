// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-zk-vault/internal/utils"
)

// dedupSet is the shared set of envelope texts already uploaded (or being
// uploaded) by one import run. Entries are envelope fingerprints.
type dedupSet struct {
	mu   sync.Mutex
	seen map[string]*dedupEntry
}

// dedupEntry is closed once its upload is settled. uploaded is written
// before done is closed and read only after.
type dedupEntry struct {
	done     chan struct{}
	uploaded bool
}

func newDedupSet() *dedupSet {
	return &dedupSet{seen: make(map[string]*dedupEntry)}
}

// seed marks envelopes as present without claiming them for upload.
func (d *dedupSet) seed(texts ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, t := range texts {
		e := &dedupEntry{done: make(chan struct{}), uploaded: true}
		close(e.done)
		d.seen[utils.Fingerprint(t)] = e
	}
}

// claim reports whether the caller owns the upload of text. A caller that
// gets true must call settle exactly once. While another item's upload of
// the same text is in flight, claim waits for it: a successful upload makes
// the caller a duplicate, a failed one lets the caller try to own it.
func (d *dedupSet) claim(ctx context.Context, text string) (bool, error) {
	key := utils.Fingerprint(text)

	for {
		d.mu.Lock()
		e, ok := d.seen[key]
		if !ok {
			d.seen[key] = &dedupEntry{done: make(chan struct{})}
			d.mu.Unlock()
			return true, nil
		}
		d.mu.Unlock()

		select {
		case <-e.done:
			if e.uploaded {
				return false, nil
			}
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}

// settle finishes a claim. A failed upload frees text for the next claimer.
func (d *dedupSet) settle(text string, uploaded bool) {
	key := utils.Fingerprint(text)

	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.seen[key]
	if !ok {
		return
	}
	e.uploaded = uploaded
	if !uploaded {
		delete(d.seen, key)
	}
	close(e.done)
}
