// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ItemCacheRepository is the local copy of the account's item envelopes.
// It only ever holds ciphertext; records are decrypted in memory by the
// service layer.
type ItemCacheRepository interface {
	// ReplaceAll makes the cache of accountID equal to items.
	ReplaceAll(ctx context.Context, accountID string, items []models.VaultItem) error
	// Upsert inserts or replaces a single item.
	Upsert(ctx context.Context, accountID string, item models.VaultItem) error
	// Get returns a cached item or ErrItemNotCached.
	Get(ctx context.Context, accountID, id string) (models.VaultItem, error)
	// List returns every cached item of accountID ordered by creation time.
	List(ctx context.Context, accountID string) ([]models.VaultItem, error)
	// Delete removes a single item. Deleting a missing item is not an error.
	Delete(ctx context.Context, accountID, id string) error
	// Purge removes every item of accountID.
	Purge(ctx context.Context, accountID string) error
}

// BundleFileStorage persists transfer bundles as JSON files.
type BundleFileStorage interface {
	// Save writes bundle to path and returns the path actually written.
	// An empty path or a directory gets a timestamped file name.
	Save(ctx context.Context, path string, bundle models.TransferBundle) (string, error)
	// Load reads a bundle from path.
	Load(ctx context.Context, path string) (models.TransferBundle, error)
}
