// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token wraps the session token issued by the server together with the
// account identifier taken from its "sub" claim.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Subject is the account identifier extracted from the "sub" claim.
	Subject string `json:"-"`

	// ExpiresAt is the "exp" claim, nil when the token has none.
	ExpiresAt *time.Time `json:"-"`
}

// Expired reports whether the token carries an expiry that is before now.
func (t Token) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
