// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vault client: error codes the server puts into {"error": "<code>"}
// response bodies and the human-readable messages shown to the user.
//
// Keeping them in one place ensures consistent wording between the service
// layer and the CLI.
package app

// Server error codes.
const (
	CodeMissingFields        = "missing_fields"
	CodeUserExists           = "user_exists"
	CodeInvalidCredentials   = "invalid_credentials"
	CodeUnauthenticated      = "unauthenticated"
	CodeUserNotFound         = "user_not_found"
	CodeMissingEncryptedBlob = "missing_encryptedBlob"
	CodeNotFound             = "not_found"
	CodeForbidden            = "forbidden"
	CodeServerError          = "server_error"
)

const (
	// MsgInvalidCredentials is shown for every login failure, whether the
	// server rejected the password or the stored VMK envelope did not open.
	MsgInvalidCredentials = "invalid email or password"

	// MsgUserExists is shown when signup hits an existing email.
	MsgUserExists = "an account with this email already exists"

	// MsgMissingFields is shown when the server rejects an incomplete request.
	MsgMissingFields = "required fields are missing"

	// MsgNotLoggedIn is shown when an operation needs the VMK but the
	// session holds none.
	MsgNotLoggedIn = "not logged in"

	// MsgItemNotFound is shown when the item does not exist or belongs to
	// another account.
	MsgItemNotFound = "vault item not found"

	// MsgServerUnavailable is shown when the server cannot be reached.
	MsgServerUnavailable = "server unavailable"

	// MsgWrongPassphrase is shown when a transfer passphrase does not open
	// the bundle. A corrupted bundle produces the same message.
	MsgWrongPassphrase = "wrong passphrase or corrupted bundle"

	// MsgSecondFactorRequired is shown when the account has 2FA enabled.
	MsgSecondFactorRequired = "this account requires a second factor; complete login in the web app"
)
