// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-zk-vault/internal/envelope"
	"github.com/MKhiriev/go-zk-vault/models"
)

// MinKDFIterations is the lowest PBKDF2 iteration count accepted.
const MinKDFIterations = 200_000

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// PBKDF2 iteration count. Never below MinKDFIterations.
	iterations int
	random     io.Reader
}

// NewKeyChainService constructs a [KeyChainService] that derives keys with
// PBKDF2-HMAC-SHA256 using the given iteration count. Values below
// [MinKDFIterations] are raised to it.
func NewKeyChainService(iterations int) KeyChainService {
	return newKeyChainService(iterations, rand.Reader)
}

func newKeyChainService(iterations int, random io.Reader) *keyChainService {
	if iterations < MinKDFIterations {
		iterations = MinKDFIterations
	}
	return &keyChainService{
		iterations: iterations,
		random:     random,
	}
}

// GenerateVMK implements [KeyChainService]. It reads 32 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateVMK() (RawKey, error) {
	vmk := make(RawKey, KeySize)
	if _, err := io.ReadFull(k.random, vmk); err != nil {
		return nil, fmt.Errorf("generate vmk: %w", err)
	}
	return vmk, nil
}

// DeriveKey implements [KeyChainService]. The intermediate key bytes are
// wiped as soon as the cipher has been built.
func (k *keyChainService) DeriveKey(passphrase string, salt []byte) (*SymmetricKey, error) {
	if len(salt) != envelope.SaltSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSaltSize, len(salt), envelope.SaltSize)
	}

	key := pbkdf2.Key([]byte(passphrase), salt, k.iterations, KeySize, sha256.New)
	defer Zero(key)

	return newSymmetricKey(key, k.random)
}

// WrapVMK implements [KeyChainService].
func (k *keyChainService) WrapVMK(vmk RawKey, passphrase string) (string, error) {
	if err := vmk.Validate(); err != nil {
		return "", err
	}

	// 1. Fresh salt per wrap
	salt := make([]byte, envelope.SaltSize)
	if _, err := io.ReadFull(k.random, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	// 2. Derive the wrapping key
	kek, err := k.DeriveKey(passphrase, salt)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}

	// 3. Seal the VMK bytes under a fresh IV
	iv, ciphertext, err := kek.Seal(vmk)
	if err != nil {
		return "", err
	}

	// 4. salt:iv:ct||tag
	return envelope.Password{Salt: salt, IV: iv, Ciphertext: ciphertext}.String(), nil
}

// UnwrapVMK implements [KeyChainService]. It returns
// [envelope.ErrMalformedEnvelope] when the text does not parse and
// [ErrAuthenticationFailed] for every other failure, including a plaintext
// that is not a 32-byte key.
func (k *keyChainService) UnwrapVMK(envelopeText, passphrase string) (RawKey, error) {
	env, err := envelope.ParsePassword(envelopeText)
	if err != nil {
		return nil, err
	}

	kek, err := k.DeriveKey(passphrase, env.Salt)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	plaintext, err := kek.Open(env.IV, env.Ciphertext)
	if err != nil {
		return nil, err
	}

	vmk := RawKey(plaintext)
	if vmk.Validate() != nil {
		vmk.Zero()
		return nil, ErrAuthenticationFailed
	}
	return vmk, nil
}

// EncryptItem implements [KeyChainService].
func (k *keyChainService) EncryptItem(key RawKey, record models.VaultRecord) (string, error) {
	plaintext, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	defer Zero(plaintext)

	return k.SealItem(key, plaintext)
}

// SealItem implements [KeyChainService].
func (k *keyChainService) SealItem(key RawKey, plaintext []byte) (string, error) {
	sk, err := k.itemKey(key)
	if err != nil {
		return "", err
	}

	// iv, ct||tag
	iv, ciphertext, err := sk.Seal(plaintext)
	if err != nil {
		return "", err
	}

	return envelope.Item{IV: iv, Ciphertext: ciphertext}.String(), nil
}

// DecryptItem implements [KeyChainService]. Tag mismatch yields
// [ErrAuthenticationFailed]; a plaintext that is not a JSON object yields
// [ErrDeserialization].
func (k *keyChainService) DecryptItem(key RawKey, envelopeText string) (models.VaultRecord, error) {
	plaintext, err := k.OpenItem(key, envelopeText)
	if err != nil {
		return models.VaultRecord{}, err
	}
	defer Zero(plaintext)

	var record models.VaultRecord
	if err := json.Unmarshal(plaintext, &record); err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: %v", ErrDeserialization, err)
	}
	return record, nil
}

// OpenItem implements [KeyChainService]. The returned bytes are exactly what
// was sealed, minus surrounding whitespace.
func (k *keyChainService) OpenItem(key RawKey, envelopeText string) ([]byte, error) {
	env, err := envelope.ParseItem(envelopeText)
	if err != nil {
		return nil, err
	}

	sk, err := k.itemKey(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := sk.Open(env.IV, env.Ciphertext)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(plaintext)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		Zero(plaintext)
		return nil, fmt.Errorf("%w: plaintext is not a JSON object", ErrDeserialization)
	}
	return trimmed, nil
}

func (k *keyChainService) itemKey(key RawKey) (*SymmetricKey, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return newSymmetricKey(key, k.random)
}
