// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-zk-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all client-side cryptography of the zero-knowledge
// scheme. It knows nothing about the network, storage or users; its only job
// is to generate and protect keys and to seal vault records.
//
// Flow:
//
//	VMK      = GenerateVMK()                     (signup, once per account)
//	EncVMK   = WrapVMK(VMK, password)            (stored on the server)
//	VMK      = UnwrapVMK(EncVMK, password)       (login)
//	Envelope = EncryptItem(VMK, record)          (every save)
//	record   = DecryptItem(VMK, Envelope)        (every read)
//	Envelope = SealItem(VMK2, OpenItem(VMK, E))  (re-key import)
type KeyChainService interface {
	// GenerateVMK returns 32 bytes from the OS CSPRNG.
	GenerateVMK() (RawKey, error)

	// DeriveKey runs PBKDF2-HMAC-SHA256 over passphrase and a 16-byte salt.
	// The same inputs always yield the same key. Nothing is cached between
	// calls.
	DeriveKey(passphrase string, salt []byte) (*SymmetricKey, error)

	// WrapVMK seals vmk under a key derived from passphrase with a fresh
	// salt and IV, returning a password envelope. Two calls with the same
	// inputs never return the same envelope.
	WrapVMK(vmk RawKey, passphrase string) (string, error)

	// UnwrapVMK opens a password envelope. A wrong passphrase and a
	// tampered envelope both fail with [ErrAuthenticationFailed].
	UnwrapVMK(envelopeText, passphrase string) (RawKey, error)

	// EncryptItem serializes record to JSON and seals it under key with a
	// fresh random IV, returning an item envelope.
	EncryptItem(key RawKey, record models.VaultRecord) (string, error)

	// DecryptItem opens an item envelope and deserializes the record.
	DecryptItem(key RawKey, envelopeText string) (models.VaultRecord, error)

	// SealItem seals an already serialized record under key with a fresh
	// random IV.
	SealItem(key RawKey, plaintext []byte) (string, error)

	// OpenItem opens an item envelope and returns the record's JSON without
	// decoding it, so keys unknown to [models.VaultRecord] survive a
	// re-encryption. The caller zeroes the result.
	OpenItem(key RawKey, envelopeText string) ([]byte, error)
}
