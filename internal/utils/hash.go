// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable SHA-256 hash instances.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Hash computes a SHA-256 digest over data using a hasher pulled from the
// pool.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// Fingerprint returns the hex SHA-256 of an envelope text. Two envelopes
// share a fingerprint iff their texts are equal, so fingerprints stand in
// for the texts in dedup sets and cache change detection without keeping
// whole ciphertexts around.
//
// Example usage:
//
//	seen[utils.Fingerprint(item.EncryptedBlob)] = struct{}{}
func Fingerprint(text string) string {
	return hex.EncodeToString(Hash([]byte(text)))
}
