// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain, so callers can
// still reach the [adapter.APIError].
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		if isContextError(err) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch apiErr.Code {
		case app.CodeMissingFields, app.CodeMissingEncryptedBlob:
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch apiErr.Code {
		case app.CodeInvalidCredentials:
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		default:
			return fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}

	case errors.Is(err, adapter.ErrForbidden), errors.Is(err, adapter.ErrNotFound):
		if apiErr.Code == app.CodeUserNotFound {
			return fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}
		return fmt.Errorf("%w: %w", ErrItemNotFound, err)

	case errors.Is(err, adapter.ErrConflict):
		if apiErr.Code == app.CodeUserExists {
			return fmt.Errorf("%w: %w", ErrAccountExists, err)
		}

	case errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// isUnreachable reports whether err means the server could not be asked at
// all, as opposed to having answered with an error.
func isUnreachable(err error) bool {
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	return err != nil && !isContextError(err)
}

// isContextError reports a cancellation by the caller. Timeouts are not
// included: a request that timed out counts as an unreachable server.
func isContextError(err error) bool {
	return errors.Is(err, context.Canceled)
}
