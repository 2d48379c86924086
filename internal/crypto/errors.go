// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrAuthenticationFailed is returned when AEAD authentication fails:
	// wrong key, wrong passphrase or tampered ciphertext. It never tells
	// which of these happened.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrDeserialization is returned when decryption succeeded but the
	// plaintext is not a valid vault record.
	ErrDeserialization = errors.New("decrypted record is not valid JSON")

	// ErrInvalidKeySize is returned for keys that are not 32 bytes long.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidSaltSize is returned when DeriveKey gets a salt that is not
	// 16 bytes long.
	ErrInvalidSaltSize = errors.New("invalid salt size")
)
