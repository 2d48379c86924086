// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account represents the credentials and key material exchanged with the
// server during signup and login.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// Email is the unique account login.
	Email string `json:"email"`

	// Password is the account password. It is sent to the server for
	// authentication only and is cleared from the value as soon as the
	// request has been made.
	Password string `json:"password,omitempty"`

	// EncryptedVMK is the Vault Master Key wrapped under the account
	// password (password envelope text). The server stores it but can never
	// unwrap it.
	EncryptedVMK string `json:"encryptedVMK,omitempty"`
}

// LoginResult is the server answer to a login request.
type LoginResult struct {
	// EncryptedVMK is the password envelope stored for the account.
	// Empty when a second factor is required.
	EncryptedVMK string `json:"encryptedVMK,omitempty"`

	// Requires2FA reports that the server expects a TOTP challenge before
	// the session is established.
	Requires2FA bool `json:"requires2FA,omitempty"`

	// LoginToken is the short-lived token for the second-factor step.
	LoginToken string `json:"loginToken,omitempty"`
}

// AccountInfo is the minimal authenticated profile returned by the server.
type AccountInfo struct {
	// EncryptedVMK is the account-password envelope of the VMK.
	EncryptedVMK string `json:"encryptedVMK"`
}
