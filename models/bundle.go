// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// BundleVersion is the only transfer bundle format version understood by
// this client.
const BundleVersion = 1

// TransferBundle is the versioned export artifact. It carries the item
// envelopes verbatim (still encrypted under the source VMK) together with
// the key material needed to open them on the destination.
//
// A bundle is never mutated after export; import only reads it.
type TransferBundle struct {
	// Version must equal [BundleVersion].
	Version int `json:"version" validate:"eq=1"`

	// CreatedAt is the export time in UTC (ISO-8601 on the wire).
	CreatedAt time.Time `json:"createdAt"`

	// ProtectedWithPassphrase reports that VMKEnvelope is present and holds
	// the VMK wrapped under a transfer passphrase.
	ProtectedWithPassphrase bool `json:"protectedWithPassphrase"`

	// VMKEnvelope is the password envelope of the VMK under the transfer
	// passphrase. Present iff ProtectedWithPassphrase is true.
	VMKEnvelope *VMKEnvelope `json:"vmkEnvelope,omitempty"`

	// EncryptedVMK is the server-form wrapped VMK (account password
	// envelope) used as the fallback source key.
	EncryptedVMK string `json:"encryptedVMK,omitempty"`

	// Blobs lists the exported item envelopes in export order.
	Blobs []BundleBlob `json:"blobs"`
}

// BundleBlob is one exported item.
type BundleBlob struct {
	ID            string     `json:"id"`
	EncryptedBlob string     `json:"encryptedBlob"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// HasPassphraseEnvelope reports whether the bundle carries a non-empty
// passphrase envelope.
func (b TransferBundle) HasPassphraseEnvelope() bool {
	return b.VMKEnvelope != nil && b.VMKEnvelope.Text() != ""
}

// VMKEnvelope holds a password envelope inside a bundle.
//
// On the wire it is written as the envelope text. Older exports wrote it as
// an object {"salt": "...", "iv": "...", "ct": "..."} with each field base64
// encoded; both shapes are accepted on decode.
type VMKEnvelope struct {
	text string
}

// NewVMKEnvelope wraps envelope text for embedding in a bundle.
func NewVMKEnvelope(text string) *VMKEnvelope {
	return &VMKEnvelope{text: text}
}

// Text returns the envelope in its colon-joined text form.
func (e *VMKEnvelope) Text() string {
	if e == nil {
		return ""
	}
	return e.text
}

// MarshalJSON writes the envelope as a JSON string.
func (e VMKEnvelope) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.text)
}

// UnmarshalJSON accepts either a JSON string or a {salt, iv, ct} object.
func (e *VMKEnvelope) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		e.text = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &e.text)
	}

	var parts struct {
		Salt string `json:"salt"`
		IV   string `json:"iv"`
		CT   string `json:"ct"`
	}
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("vmk envelope: %w", err)
	}
	if parts.Salt == "" || parts.IV == "" || parts.CT == "" {
		return errors.New("vmk envelope: salt, iv and ct are required")
	}
	e.text = strings.Join([]string{parts.Salt, parts.IV, parts.CT}, ":")
	return nil
}
