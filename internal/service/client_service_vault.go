// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/session"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/internal/validators"
	"github.com/MKhiriev/go-zk-vault/models"
)

type clientVaultService struct {
	adapter   adapter.ServerAdapter
	keychain  crypto.KeyChainService
	session   *session.Session
	cache     store.ItemCacheRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewClientVaultService(
	serverAdapter adapter.ServerAdapter,
	keychain crypto.KeyChainService,
	sess *session.Session,
	cache store.ItemCacheRepository,
	validator validators.Validator,
	logger *logger.Logger,
) ClientVaultService {
	return &clientVaultService{
		adapter:   serverAdapter,
		keychain:  keychain,
		session:   sess,
		cache:     cache,
		validator: validator,
		logger:    logger,
	}
}

func (v *clientVaultService) Create(ctx context.Context, record models.VaultRecord) (models.DecryptedItem, error) {
	log := logger.FromContext(ctx)

	account, err := v.session.Account()
	if err != nil {
		return models.DecryptedItem{}, err
	}

	blob, err := v.seal(ctx, &record)
	if err != nil {
		return models.DecryptedItem{}, err
	}

	created, err := v.adapter.CreateItem(ctx, blob)
	if err != nil {
		log.Err(err).Str("func", "clientVaultService.Create").Msg("failed to create item on server")
		return models.DecryptedItem{}, mapAdapterError(err)
	}

	v.cacheItem(ctx, account.ID, created)

	log.Debug().Str("func", "clientVaultService.Create").Str("id", created.ID).Msg("item created")
	return decryptedItem(created, record), nil
}

func (v *clientVaultService) List(ctx context.Context, filter models.RecordFilter) ([]models.DecryptedItem, error) {
	log := logger.FromContext(ctx)

	account, err := v.session.Account()
	if err != nil {
		return nil, err
	}

	items, err := v.fetchItems(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	// the VMK is read after the network round trip, not before
	vmk, err := v.session.VMK()
	if err != nil {
		return nil, err
	}
	defer vmk.Zero()

	result := make([]models.DecryptedItem, 0, len(items))
	failed := 0
	for _, item := range items {
		record, decErr := v.keychain.DecryptItem(vmk, item.EncryptedBlob)
		if decErr != nil {
			failed++
			if filter.IsEmpty() {
				result = append(result, models.DecryptedItem{
					ID:        item.ID,
					CreatedAt: item.CreatedAt,
					UpdatedAt: item.UpdatedAt,
					Err:       decErr,
				})
			}
			continue
		}
		if filter.Match(record) {
			result = append(result, decryptedItem(item, record))
		}
	}

	if failed > 0 {
		log.Warn().
			Str("func", "clientVaultService.List").
			Int("failed", failed).
			Int("total", len(items)).
			Msg("some items could not be decrypted")
	}
	return result, nil
}

func (v *clientVaultService) Get(ctx context.Context, id string) (models.DecryptedItem, error) {
	account, err := v.session.Account()
	if err != nil {
		return models.DecryptedItem{}, err
	}

	item, err := v.findItem(ctx, account.ID, id)
	if err != nil {
		return models.DecryptedItem{}, err
	}

	vmk, err := v.session.VMK()
	if err != nil {
		return models.DecryptedItem{}, err
	}
	defer vmk.Zero()

	record, err := v.keychain.DecryptItem(vmk, item.EncryptedBlob)
	if err != nil {
		return models.DecryptedItem{}, fmt.Errorf("decrypt item %s: %w", id, err)
	}
	return decryptedItem(item, record), nil
}

func (v *clientVaultService) Update(ctx context.Context, id string, record models.VaultRecord) (models.DecryptedItem, error) {
	log := logger.FromContext(ctx)

	account, err := v.session.Account()
	if err != nil {
		return models.DecryptedItem{}, err
	}

	blob, err := v.seal(ctx, &record)
	if err != nil {
		return models.DecryptedItem{}, err
	}

	updated, err := v.adapter.UpdateItem(ctx, id, blob)
	if err != nil {
		log.Err(err).Str("func", "clientVaultService.Update").Str("id", id).Msg("failed to update item on server")
		return models.DecryptedItem{}, mapAdapterError(err)
	}

	v.cacheItem(ctx, account.ID, updated)
	return decryptedItem(updated, record), nil
}

func (v *clientVaultService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	account, err := v.session.Account()
	if err != nil {
		return err
	}

	if err = v.adapter.DeleteItem(ctx, id); err != nil {
		log.Err(err).Str("func", "clientVaultService.Delete").Str("id", id).Msg("failed to delete item on server")
		return mapAdapterError(err)
	}

	if err = v.cache.Delete(ctx, account.ID, id); err != nil {
		log.Err(err).Str("func", "clientVaultService.Delete").Str("id", id).Msg("failed to drop cached item")
	}
	return nil
}

// seal normalizes and validates record, then encrypts it under the session
// VMK read right before use.
func (v *clientVaultService) seal(ctx context.Context, record *models.VaultRecord) (string, error) {
	*record = record.Normalize()
	if err := v.validator.Validate(ctx, *record); err != nil {
		return "", err
	}

	vmk, err := v.session.VMK()
	if err != nil {
		return "", err
	}
	defer vmk.Zero()

	blob, err := v.keychain.EncryptItem(vmk, *record)
	if err != nil {
		return "", fmt.Errorf("encrypt item: %w", err)
	}
	return blob, nil
}

// fetchItems lists the server's items and refreshes the cache, or falls back
// to the cache when the server cannot be reached.
func (v *clientVaultService) fetchItems(ctx context.Context, accountID string) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	items, err := v.adapter.ListItems(ctx)
	if err == nil {
		if cacheErr := v.cache.ReplaceAll(ctx, accountID, items); cacheErr != nil {
			log.Err(cacheErr).Str("func", "clientVaultService.fetchItems").Msg("failed to refresh local cache")
		}
		return items, nil
	}

	if !isUnreachable(err) {
		return nil, mapAdapterError(err)
	}

	log.Warn().Err(err).Str("func", "clientVaultService.fetchItems").Msg("server unreachable, using local cache")
	cached, cacheErr := v.cache.List(ctx, accountID)
	if cacheErr != nil {
		return nil, errors.Join(mapAdapterError(err), cacheErr)
	}
	return cached, nil
}

// findItem looks id up in the server listing, the server having no
// single-item endpoint.
func (v *clientVaultService) findItem(ctx context.Context, accountID, id string) (models.VaultItem, error) {
	items, err := v.adapter.ListItems(ctx)
	if err != nil {
		if !isUnreachable(err) {
			return models.VaultItem{}, mapAdapterError(err)
		}
		item, cacheErr := v.cache.Get(ctx, accountID, id)
		if errors.Is(cacheErr, store.ErrItemNotCached) {
			return models.VaultItem{}, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
		}
		if cacheErr != nil {
			return models.VaultItem{}, errors.Join(mapAdapterError(err), cacheErr)
		}
		return item, nil
	}

	for _, item := range items {
		if item.ID == id {
			v.cacheItem(ctx, accountID, item)
			return item, nil
		}
	}
	return models.VaultItem{}, ErrItemNotFound
}

func (v *clientVaultService) cacheItem(ctx context.Context, accountID string, item models.VaultItem) {
	if err := v.cache.Upsert(ctx, accountID, item); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "clientVaultService.cacheItem").
			Str("id", item.ID).
			Msg("failed to cache item")
	}
}

func decryptedItem(item models.VaultItem, record models.VaultRecord) models.DecryptedItem {
	return models.DecryptedItem{
		ID:        item.ID,
		Record:    &record,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
