// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client-side business logic of the vault:
// account flows that seat the Vault Master Key in the session, item CRUD
// over encrypted envelopes, and the export/import transfer protocol.
//
// Services talk to the server through [adapter.ServerAdapter], encrypt and
// decrypt through [crypto.KeyChainService], and read the VMK from
// [session.Session] right before every use.
package service

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for account creation and
// authentication.
type ClientAuthService interface {
	// Signup generates a fresh VMK, wraps it under password, creates the
	// account on the server and seats the VMK in the session.
	Signup(ctx context.Context, email, password string) error

	// Login authenticates with the server, unwraps the returned encryptedVMK
	// with password and seats the VMK in the session. Every unwrap failure is
	// reported as [ErrInvalidCredentials].
	Login(ctx context.Context, email, password string) error

	// Logout ends the server session, wipes the VMK and purges the local
	// cache of the account.
	Logout(ctx context.Context) error
}

// ClientVaultService defines the client-side contract for managing vault
// items. Records only exist in plaintext inside this service; everything it
// sends or caches is an item envelope.
type ClientVaultService interface {
	// Create validates and encrypts record and stores it on the server.
	Create(ctx context.Context, record models.VaultRecord) (models.DecryptedItem, error)

	// List returns every item of the account that matches filter. Items that
	// fail to decrypt are returned with Err set. When the server is
	// unreachable the local cache is used.
	List(ctx context.Context, filter models.RecordFilter) ([]models.DecryptedItem, error)

	// Get returns a single item.
	Get(ctx context.Context, id string) (models.DecryptedItem, error)

	// Update replaces the record of item id.
	Update(ctx context.Context, id string, record models.VaultRecord) (models.DecryptedItem, error)

	// Delete removes item id.
	Delete(ctx context.Context, id string) error
}

// ClientTransferService defines the export/import protocol.
type ClientTransferService interface {
	// Export assembles a bundle from the account's current items. With a
	// passphrase the live VMK is wrapped under it and embedded; the
	// server-side encryptedVMK is always embedded as a fallback.
	Export(ctx context.Context, opts models.ExportOptions) (models.TransferBundle, error)

	// ExportToFile runs Export and writes the bundle to path, returning the
	// path written.
	ExportToFile(ctx context.Context, path string, opts models.ExportOptions) (string, error)

	// Import uploads the items of bundle according to opts. Per-item
	// failures are recorded in the summary; the returned error is reserved
	// for conditions that stop the run before or while it executes.
	Import(ctx context.Context, bundle models.TransferBundle, opts models.ImportOptions) (models.ImportSummary, error)

	// ImportFromFile reads a bundle from path and imports it.
	ImportFromFile(ctx context.Context, path string, opts models.ImportOptions) (models.ImportSummary, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}
