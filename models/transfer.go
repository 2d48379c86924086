// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ImportMode selects how bundle items reach the destination vault.
type ImportMode string

const (
	// ImportModeQuick re-uploads envelopes unmodified. Valid only when the
	// destination VMK is the source VMK.
	ImportModeQuick ImportMode = "quick"

	// ImportModeRekey decrypts every item under the source key and
	// re-encrypts it under the destination session VMK.
	ImportModeRekey ImportMode = "rekey"
)

// ExportOptions controls how a bundle is protected.
type ExportOptions struct {
	// Passphrase, when non-empty, switches export to passphrase mode: the
	// live VMK is wrapped under it and embedded in the bundle.
	Passphrase string
}

// ImportOptions configures a single import run.
type ImportOptions struct {
	Mode ImportMode

	// Passphrase opens the bundle's passphrase envelope (re-key mode).
	Passphrase string

	// AccountPassword opens the bundle's fallback encryptedVMK (re-key mode).
	AccountPassword string

	// SkipExisting seeds the dedup set with the destination's current
	// envelopes so that identical envelopes already stored are skipped.
	SkipExisting bool
}

// ItemState is the terminal state of one bundle item in an import run.
type ItemState string

const (
	ItemPending          ItemState = "pending"
	ItemUploaded         ItemState = "uploaded"
	ItemSkippedDuplicate ItemState = "skipped_duplicate"
	ItemFailed           ItemState = "failed"
)

// FailureReason distinguishes why an item failed.
type FailureReason string

const (
	ReasonDecryptFailed     FailureReason = "decrypt_failed"
	ReasonEncryptFailed     FailureReason = "encrypt_failed"
	ReasonUploadFailed      FailureReason = "upload_failed"
	ReasonMalformedEnvelope FailureReason = "malformed_envelope"
)

// ItemError is a failure scoped to a single bundle item.
type ItemError struct {
	// Index is the zero-based position of the item in the bundle.
	Index  int
	ID     string
	Reason FailureReason
	Err    error
}

// Error renders the failure as "<reason>:<id>".
func (e *ItemError) Error() string {
	id := e.ID
	if id == "" {
		id = fmt.Sprintf("#%d", e.Index)
	}
	if e.Err == nil {
		return fmt.Sprintf("%s:%s", e.Reason, id)
	}
	return fmt.Sprintf("%s:%s: %v", e.Reason, id, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// ItemOutcome is the terminal state of one bundle item.
type ItemOutcome struct {
	Index int
	ID    string
	State ItemState
	// NewID is the identifier assigned by the destination on upload.
	NewID string
	Err   *ItemError
}

// ImportSummary reports every item's terminal state.
// imported + skipped + len(Errors) always equals the number of bundle items.
type ImportSummary struct {
	Imported int
	Skipped  int
	Errors   []*ItemError
	Outcomes []ItemOutcome
}

// Total returns the number of items accounted for by the summary.
func (s ImportSummary) Total() int {
	return s.Imported + s.Skipped + len(s.Errors)
}
