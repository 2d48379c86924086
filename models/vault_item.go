// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultItem is a single vault entry as the server sees it: an identifier,
// an item envelope and timestamps. The envelope is opaque to everything
// except the item cipher.
type VaultItem struct {
	// ID is the server-assigned identifier of the item.
	ID string `json:"id"`

	// EncryptedBlob is the item envelope text (base64(iv):base64(ct||tag)).
	EncryptedBlob string `json:"encryptedBlob"`

	// CreatedAt is the timestamp when the item was created on the server.
	CreatedAt *time.Time `json:"createdAt,omitempty"`

	// UpdatedAt is the timestamp of the last modification on the server.
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
