// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/app"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/mock"
	"github.com/MKhiriev/go-zk-vault/internal/session"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/internal/validators"
	"github.com/MKhiriev/go-zk-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestVaultSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	loggedIn bool,
) (
	*clientVaultService,
	*mock.MockServerAdapter,
	*mock.MockKeyChainService,
	*mock.MockItemCacheRepository,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockKeyChain := mock.NewMockKeyChainService(ctrl)
	mockCache := mock.NewMockItemCacheRepository(ctrl)

	sess := session.New()
	if loggedIn {
		require.NoError(t, sess.SetVMK(session.Account{ID: "acc-1", Email: "alice@example.com"}, testVMK(5)))
	}

	svc := NewClientVaultService(
		mockAdapter,
		mockKeyChain,
		sess,
		mockCache,
		validators.NewVaultValidator(),
		logger.Nop(),
	).(*clientVaultService)

	return svc, mockAdapter, mockKeyChain, mockCache
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestClientVaultService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeyChain, mockCache := newTestVaultSvc(t, ctrl, true)
	ctx := context.Background()

	input := models.VaultRecord{Title: "  Mail  ", URL: "mail.example.com", Tags: []string{"work", "work", " "}}
	normalized := models.VaultRecord{Title: "Mail", URL: "https://mail.example.com", Tags: []string{"work"}}
	created := models.VaultItem{ID: "item-1", EncryptedBlob: "iv:ct"}

	gomock.InOrder(
		mockKeyChain.EXPECT().EncryptItem(testVMK(5), normalized).Return("iv:ct", nil),
		mockAdapter.EXPECT().CreateItem(ctx, "iv:ct").Return(created, nil),
		mockCache.EXPECT().Upsert(ctx, "acc-1", created).Return(nil),
	)

	item, err := svc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "item-1", item.ID)
	require.NotNil(t, item.Record)
	assert.Equal(t, normalized, *item.Record)
	assert.NoError(t, item.Err)
}

func TestClientVaultService_Create_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestVaultSvc(t, ctrl, false)

	_, err := svc.Create(context.Background(), models.VaultRecord{Title: "Mail"})
	assert.True(t, errors.Is(err, session.ErrNotAuthenticated))
}

func TestClientVaultService_Create_InvalidRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestVaultSvc(t, ctrl, true)

	_, err := svc.Create(context.Background(), models.VaultRecord{Title: "   "})
	assert.True(t, errors.Is(err, validators.ErrEmptyTitle))
}

func TestClientVaultService_Create_CacheFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeyChain, mockCache := newTestVaultSvc(t, ctrl, true)
	ctx := context.Background()

	mockKeyChain.EXPECT().EncryptItem(gomock.Any(), gomock.Any()).Return("iv:ct", nil)
	mockAdapter.EXPECT().CreateItem(ctx, "iv:ct").Return(models.VaultItem{ID: "item-1", EncryptedBlob: "iv:ct"}, nil)
	mockCache.EXPECT().Upsert(ctx, "acc-1", gomock.Any()).Return(errors.New("database is locked"))

	_, err := svc.Create(ctx, models.VaultRecord{Title: "Mail"})
	assert.NoError(t, err)
}

func TestClientVaultService_Create_BadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeyChain, _ := newTestVaultSvc(t, ctrl, true)
	ctx := context.Background()

	mockKeyChain.EXPECT().EncryptItem(gomock.Any(), gomock.Any()).Return("iv:ct", nil)
	mockAdapter.EXPECT().CreateItem(ctx, "iv:ct").
		Return(models.VaultItem{}, adapter.NewAPIError(http.StatusBadRequest, app.CodeMissingEncryptedBlob))

	_, err := svc.Create(ctx, models.VaultRecord{Title: "Mail"})
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestClientVaultService_List_DecryptsAndReportsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeyChain, mockCache := newTestVaultSvc(t, ctrl, true)
	ctx := context.Background()

	items := []models.VaultItem{
		{ID: "i1", EncryptedBlob: "b1"},
		{ID: "i2", EncryptedBlob: "b2"},
		{ID: "i3", EncryptedBlob: "b3"},
	}
	mockAdapter.EXPECT().ListItems(ctx).Return(items, nil).Times(2)
	mockCache.EXPECT().ReplaceAll(ctx, "acc-1", items).Return(nil).Times(2)
	mockKeyChain.EXPECT().DecryptItem(gomock.Any(), "b1").Return(models.VaultRecord{Title: "Mail", Tags: []string{"work"}}, nil).Times(2)
	mockKeyChain.EXPECT().DecryptItem(gomock.Any(), "b2").Return(models.VaultRecord{}, crypto.ErrAuthenticationFailed).Times(2)
	mockKeyChain.EXPECT().DecryptItem(gomock.Any(), "b3").Return(models.VaultRecord{Title: "Bank"}, nil).Times(2)

	// без фильтра сломанные записи видны
	all, err := svc.List(ctx, models.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Mail", all[0].Record.Title)
	assert.Nil(t, all[1].Record)
	assert.True(t, errors.Is(all[1].Err, crypto.ErrAuthenticationFailed))
	assert.Equal(t, "Bank", all[2].Record.Title)

	// с фильтром только совпавшие
	tagged, err := svc.List(ctx, models.RecordFilter{Tags: []string{"work"}})
	require.NoError(t, err)
	require.Len(t, tagged, 1)
	assert.Equal(t, "i1", tagged[0].ID)
}

func TestClientVaultService_List_FallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeyChain, mockCache := newTestVaultSvc(t, ctrl, true)
	ctx := context.Background()

	cached := []models.VaultItem{{ID: "i1", EncryptedBlob: "b1"}}
	mockAdapter.EXPECT().ListItems(ctx).Return(nil, errors.New("dial tcp: connection refused"))
	mockCache.EXPECT().List(ctx, "acc-1").Return(cached, nil)
	mockKeyChain.EXPECT().DecryptItem(gomock.Any(), "b1").Return(models.VaultRecord{Title: "Mail"}, nil)

	items, err := svc.List(ctx, models.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Mail", items[0].Record.Title)
}

func TestClientVaultService_List_SessionExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestVaultSvc(t, ctrl, true)
	ctx := context.Background()

	mockAdapter.EXPECT().ListItems(ctx).
		Return(nil, adapter.NewAPIError(http.StatusUnauthorized, app.CodeUnauthenticated))

	_, err := svc.List(ctx, models.RecordFilter{})
	assert.True(t, errors.Is(err, ErrSessionExpired))
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestClientVaultService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeyChain, mockCache := newTestVaultSvc(t, ctrl, true)
	ctx := context.Background()

	items := []models.VaultItem{{ID: "i1", EncryptedBlob: "b1"}, {ID: "i2", EncryptedBlob: "b2"}}
	mockAdapter.EXPECT().ListItems(ctx).Return(items, nil).Times(2)
	mockCache.EXPECT().Upsert(ctx, "acc-1", items[1]).Return(nil)
	mockKeyChain.EXPECT().DecryptItem(gomock.Any(), "b2").Return(models.VaultRecord{Title: "Bank"}, nil)

	item, err := svc.Get(ctx, "i2")
	require.NoError(t, err)
	assert.Equal(t, "Bank", item.Record.Title)

	_, err = svc.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrItemNotFound))
}

func TestClientVaultService_Get_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeyChain, mockCache := newTestVaultSvc(t, ctrl, true)
	ctx := context.Background()

	unreachable := adapter.NewAPIError(http.StatusServiceUnavailable, "")
	mockAdapter.EXPECT().ListItems(ctx).Return(nil, unreachable).Times(2)
	mockCache.EXPECT().Get(ctx, "acc-1", "i1").Return(models.VaultItem{ID: "i1", EncryptedBlob: "b1"}, nil)
	mockCache.EXPECT().Get(ctx, "acc-1", "i9").Return(models.VaultItem{}, store.ErrItemNotCached)
	mockKeyChain.EXPECT().DecryptItem(gomock.Any(), "b1").Return(models.VaultRecord{Title: "Mail"}, nil)

	item, err := svc.Get(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, "Mail", item.Record.Title)

	_, err = svc.Get(ctx, "i9")
	assert.True(t, errors.Is(err, ErrServerUnavailable))
}

// ── Update / Delete ──────────────────────────────────────────────────────────

func TestClientVaultService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeyChain, mockCache := newTestVaultSvc(t, ctrl, true)
	ctx := context.Background()

	updated := models.VaultItem{ID: "i1", EncryptedBlob: "iv:ct2"}
	mockKeyChain.EXPECT().EncryptItem(gomock.Any(), models.VaultRecord{Title: "Mail", Password: "n3w"}).Return("iv:ct2", nil)
	mockAdapter.EXPECT().UpdateItem(ctx, "i1", "iv:ct2").Return(updated, nil)
	mockCache.EXPECT().Upsert(ctx, "acc-1", updated).Return(nil)

	item, err := svc.Update(ctx, "i1", models.VaultRecord{Title: "Mail", Password: "n3w"})
	require.NoError(t, err)
	assert.Equal(t, "n3w", item.Record.Password)
}

func TestClientVaultService_Update_ForeignItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeyChain, _ := newTestVaultSvc(t, ctrl, true)
	ctx := context.Background()

	mockKeyChain.EXPECT().EncryptItem(gomock.Any(), gomock.Any()).Return("iv:ct", nil)
	mockAdapter.EXPECT().UpdateItem(ctx, "i1", "iv:ct").
		Return(models.VaultItem{}, adapter.NewAPIError(http.StatusForbidden, app.CodeForbidden))

	_, err := svc.Update(ctx, "i1", models.VaultRecord{Title: "Mail"})
	assert.True(t, errors.Is(err, ErrItemNotFound))
}

func TestClientVaultService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, mockCache := newTestVaultSvc(t, ctrl, true)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteItem(ctx, "i1").Return(nil)
	mockCache.EXPECT().Delete(ctx, "acc-1", "i1").Return(nil)
	require.NoError(t, svc.Delete(ctx, "i1"))

	mockAdapter.EXPECT().DeleteItem(ctx, "i2").Return(adapter.NewAPIError(http.StatusNotFound, app.CodeNotFound))
	err := svc.Delete(ctx, "i2")
	assert.True(t, errors.Is(err, ErrItemNotFound))
}
