// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-zk-vault/internal/utils"
	"github.com/MKhiriev/go-zk-vault/models"
)

const vaultItemsTable = "vault_items"

var vaultItemColumns = []string{"id", "encrypted_blob", "created_at", "updated_at"}

// upsertSuffix replaces an existing row only when the envelope actually
// changed, so re-caching an unchanged listing touches nothing.
const upsertSuffix = `ON CONFLICT(account_id, id) DO UPDATE SET
	encrypted_blob = excluded.encrypted_blob,
	fingerprint    = excluded.fingerprint,
	created_at     = excluded.created_at,
	updated_at     = excluded.updated_at,
	cached_at      = excluded.cached_at
WHERE vault_items.fingerprint <> excluded.fingerprint`

// buildUpsertQuery builds a multi-row INSERT ... ON CONFLICT for items.
func buildUpsertQuery(accountID string, now time.Time, items ...models.VaultItem) (string, []any, error) {
	builder := sq.Insert(vaultItemsTable).
		Columns("account_id", "id", "encrypted_blob", "fingerprint", "created_at", "updated_at", "cached_at")

	for _, item := range items {
		builder = builder.Values(
			accountID,
			item.ID,
			item.EncryptedBlob,
			utils.Fingerprint(item.EncryptedBlob),
			item.CreatedAt,
			item.UpdatedAt,
			now,
		)
	}

	return builder.Suffix(upsertSuffix).ToSql()
}

func buildGetQuery(accountID, id string) (string, []any, error) {
	return sq.Select(vaultItemColumns...).
		From(vaultItemsTable).
		Where(sq.Eq{"account_id": accountID, "id": id}).
		ToSql()
}

func buildListQuery(accountID string) (string, []any, error) {
	return sq.Select(vaultItemColumns...).
		From(vaultItemsTable).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildDeleteQuery(accountID, id string) (string, []any, error) {
	return sq.Delete(vaultItemsTable).
		Where(sq.Eq{"account_id": accountID, "id": id}).
		ToSql()
}

// buildPurgeQuery deletes every row of accountID except the ids in keep.
func buildPurgeQuery(accountID string, keep ...string) (string, []any, error) {
	builder := sq.Delete(vaultItemsTable).
		Where(sq.Eq{"account_id": accountID})
	if len(keep) > 0 {
		builder = builder.Where(sq.NotEq{"id": keep})
	}
	return builder.ToSql()
}
