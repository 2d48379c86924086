// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
)

// KeySize is the size of a VMK and of every derived key (AES-256).
const KeySize = 32

// RawKey is 32 bytes of key material: the VMK or a transfer key.
// It crosses process boundaries only as base64 text (see [RawKey.Base64]).
type RawKey []byte

// ParseRawKey decodes base64 text into a RawKey and checks its size.
func ParseRawKey(s string) (RawKey, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	k := RawKey(b)
	if err := k.Validate(); err != nil {
		Zero(b)
		return nil, err
	}
	return k, nil
}

// Base64 returns the standard base64 text form of the key.
func (k RawKey) Base64() string {
	return base64.StdEncoding.EncodeToString(k)
}

// Validate checks that the key is exactly [KeySize] bytes.
func (k RawKey) Validate() error {
	if len(k) != KeySize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(k), KeySize)
	}
	return nil
}

// Equal compares two keys in constant time.
func (k RawKey) Equal(other RawKey) bool {
	return subtle.ConstantTimeCompare(k, other) == 1
}

// Clone returns an independent copy of the key.
func (k RawKey) Clone() RawKey {
	if k == nil {
		return nil
	}
	return append(RawKey(nil), k...)
}

// Zero wipes the key in place.
func (k RawKey) Zero() {
	Zero(k)
}

// String never prints key material.
func (k RawKey) String() string {
	return "RawKey(redacted)"
}

// SymmetricKey is a key usable only for AES-256-GCM sealing and opening.
// It deliberately has no accessor for its raw bytes.
type SymmetricKey struct {
	aead   cipher.AEAD
	random io.Reader
}

func newSymmetricKey(key []byte, random io.Reader) (*SymmetricKey, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return &SymmetricKey{aead: gcm, random: random}, nil
}

// Seal encrypts plaintext under a fresh random 12-byte IV drawn for this
// call only. The returned ciphertext carries the 16-byte tag at its end.
func (s *SymmetricKey) Seal(plaintext []byte) (iv, ciphertext []byte, err error) {
	iv = make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(s.random, iv); err != nil {
		return nil, nil, fmt.Errorf("generate iv: %w", err)
	}
	return iv, s.aead.Seal(nil, iv, plaintext, nil), nil
}

// Open authenticates and decrypts ciphertext. Any failure is reported as
// [ErrAuthenticationFailed] and no plaintext is returned.
func (s *SymmetricKey) Open(iv, ciphertext []byte) ([]byte, error) {
	if len(iv) != s.aead.NonceSize() {
		return nil, ErrAuthenticationFailed
	}
	plaintext, err := s.aead.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

// Zero overwrites a byte slice in memory with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
