// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
	ErrNoSession           = errors.New("no session cookie")
)

// APIError describes a non-2xx response. Code is the value of the "error"
// field of the JSON body when the server sent one.
type APIError struct {
	StatusCode int
	Code       string
	err        error
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%v (http %d)", e.err, e.StatusCode)
	}
	return fmt.Sprintf("%v (http %d): %s", e.err, e.StatusCode, e.Code)
}

// Unwrap returns the status sentinel, so errors.Is works on it.
func (e *APIError) Unwrap() error {
	return e.err
}
