// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSessionToken is returned when a session cookie value is not a
// well-formed JWT or carries no subject.
var ErrInvalidSessionToken = errors.New("invalid session token")

// ParseSessionToken extracts the account identifier and expiry from the
// session token set by the server.
//
// The signature is NOT verified: the signing key belongs to the server and
// the client only reads the claims to learn which account it is logged in
// as. Authorization decisions stay on the server.
//
// Example usage:
//
//	token, err := utils.ParseSessionToken(cookie.Value)
//	if err != nil {
//	    // server sent something that is not a JWT
//	}
func ParseSessionToken(tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrInvalidSessionToken
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}
	if sub == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrInvalidSessionToken)
	}

	result := models.Token{SignedString: tokenString, Subject: sub}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}
	if exp != nil {
		expiresAt := exp.Time
		result.ExpiresAt = &expiresAt
	}

	return result, nil
}
