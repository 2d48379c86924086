// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Account flow errors.
var (
	// ErrInvalidCredentials is the single error for every login failure:
	// rejected password, malformed or unopenable VMK envelope alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSecondFactorRequired is returned when the server asks for a TOTP
	// code before establishing the session.
	ErrSecondFactorRequired = errors.New("second factor required")

	// ErrAccountExists is returned when signup hits an existing email.
	ErrAccountExists = errors.New("account already exists")

	// ErrSessionExpired is returned when the server no longer accepts the
	// session cookie.
	ErrSessionExpired = errors.New("session expired")

	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Vault item errors.
var (
	// ErrItemNotFound is returned for missing items and for items owned by
	// another account.
	ErrItemNotFound = errors.New("vault item not found")

	// ErrServerUnavailable is returned when the server cannot be reached
	// and no cached copy can stand in.
	ErrServerUnavailable = errors.New("server unavailable")
)

// Transfer errors.
var (
	// ErrSourceKeyUnavailable aborts a re-key import before any upload:
	// neither the passphrase envelope nor the fallback encryptedVMK could be
	// opened with the secrets supplied. A wrong passphrase and a corrupted
	// envelope are reported identically.
	ErrSourceKeyUnavailable = errors.New("source key unavailable")

	// ErrInvalidBundle rejects a bundle whose version or protection fields
	// are inconsistent. Nothing is uploaded.
	ErrInvalidBundle = errors.New("invalid bundle")

	// ErrNoSourceSecret is the cause joined into ErrSourceKeyUnavailable when
	// no supplied secret matches any key path of the bundle.
	ErrNoSourceSecret = errors.New("no secret supplied for the bundle's key material")
)
