// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/models"
)

type itemCacheRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewItemCacheRepository returns the SQLite-backed [ItemCacheRepository].
func NewItemCacheRepository(db *DB, logger *logger.Logger) ItemCacheRepository {
	return &itemCacheRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// ReplaceAll upserts items and drops every other cached row of accountID in
// one transaction.
func (r *itemCacheRepository) ReplaceAll(ctx context.Context, accountID string, items []models.VaultItem) error {
	log := logger.FromContext(ctx)

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	purgeQuery, purgeArgs, err := buildPurgeQuery(accountID, ids...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "itemCacheRepository.ReplaceAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, purgeQuery, purgeArgs...); err != nil {
		log.Err(err).
			Str("func", "itemCacheRepository.ReplaceAll").
			Str("account_id", accountID).
			Msg("failed to drop stale items")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(items) > 0 {
		upsertQuery, upsertArgs, err := buildUpsertQuery(accountID, r.now(), items...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
			log.Err(err).
				Str("func", "itemCacheRepository.ReplaceAll").
				Str("account_id", accountID).
				Int("items", len(items)).
				Msg("failed to upsert items")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "itemCacheRepository.ReplaceAll").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "itemCacheRepository.ReplaceAll").
		Str("account_id", accountID).
		Int("items", len(items)).
		Msg("cache replaced")
	return nil
}

func (r *itemCacheRepository) Upsert(ctx context.Context, accountID string, item models.VaultItem) error {
	query, args, err := buildUpsertQuery(accountID, r.now(), item)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "itemCacheRepository.Upsert").
			Str("account_id", accountID).
			Str("id", item.ID).
			Msg("failed to upsert item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *itemCacheRepository) Get(ctx context.Context, accountID, id string) (models.VaultItem, error) {
	query, args, err := buildGetQuery(accountID, id)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanVaultItem(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultItem{}, ErrItemNotCached
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "itemCacheRepository.Get").
			Str("account_id", accountID).
			Str("id", id).
			Msg("failed to scan item row")
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *itemCacheRepository) List(ctx context.Context, accountID string) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery(accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemCacheRepository.List").
			Str("account_id", accountID).
			Msg("failed to execute query for cached items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0)
	for rows.Next() {
		item, scanErr := scanVaultItem(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "itemCacheRepository.List").
				Str("account_id", accountID).
				Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "itemCacheRepository.List").
			Str("account_id", accountID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, rowsErr)
	}

	return items, nil
}

func (r *itemCacheRepository) Delete(ctx context.Context, accountID, id string) error {
	query, args, err := buildDeleteQuery(accountID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "itemCacheRepository.Delete").
			Str("account_id", accountID).
			Str("id", id).
			Msg("failed to delete item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *itemCacheRepository) Purge(ctx context.Context, accountID string) error {
	query, args, err := buildPurgeQuery(accountID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "itemCacheRepository.Purge").
			Str("account_id", accountID).
			Msg("failed to purge cache")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVaultItem(row rowScanner) (models.VaultItem, error) {
	var (
		item      models.VaultItem
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	if err := row.Scan(&item.ID, &item.EncryptedBlob, &createdAt, &updatedAt); err != nil {
		return models.VaultItem{}, err
	}

	if createdAt.Valid {
		t := createdAt.Time
		item.CreatedAt = &t
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		item.UpdatedAt = &t
	}
	return item, nil
}
