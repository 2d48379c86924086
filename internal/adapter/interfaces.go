// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// The server only ever sees opaque envelope text: item envelopes under
// /api/vault and the password-wrapped VMK under /api/auth. Error values
// defined in errors.go are mapped from HTTP status codes by mapHTTPError so
// that callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). The server's
// machine-readable error code is preserved in [APIError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault
// server. Implementations are responsible for serialisation, session
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// Signup creates an account from email, password and the VMK wrapped
	// under that password. The server answers with a session, whose token is
	// returned.
	Signup(ctx context.Context, account models.Account) (models.Token, error)

	// Login authenticates with email and password. On success the result
	// carries the account's encryptedVMK and a session is established. When
	// the account has a second factor, Requires2FA is set and no session
	// exists yet.
	Login(ctx context.Context, account models.Account) (models.LoginResult, error)

	// Me returns the profile of the authenticated account.
	Me(ctx context.Context) (models.AccountInfo, error)

	// Logout ends the server session and forgets the local session cookie.
	Logout(ctx context.Context) error

	// SessionToken returns the current session token, or [ErrNoSession]
	// when there is none.
	SessionToken() (models.Token, error)

	// ListItems returns every item envelope of the account.
	ListItems(ctx context.Context) ([]models.VaultItem, error)

	// CreateItem stores a new item envelope and returns the created item.
	CreateItem(ctx context.Context, encryptedBlob string) (models.VaultItem, error)

	// UpdateItem replaces the envelope of item id.
	UpdateItem(ctx context.Context, id, encryptedBlob string) (models.VaultItem, error)

	// DeleteItem removes item id.
	DeleteItem(ctx context.Context, id string) error
}
