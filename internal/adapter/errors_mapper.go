// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	return NewAPIError(resp.StatusCode(), errorCode(resp.Body()))
}

// NewAPIError builds the error for a response with the given status and
// server error code, attaching the matching status sentinel.
func NewAPIError(status int, code string) *APIError {
	apiErr := &APIError{StatusCode: status, Code: code}

	switch status {
	case http.StatusBadRequest:
		apiErr.err = ErrBadRequest
	case http.StatusUnauthorized:
		apiErr.err = ErrUnauthorized
	case http.StatusForbidden:
		apiErr.err = ErrForbidden
	case http.StatusNotFound:
		apiErr.err = ErrNotFound
	case http.StatusConflict:
		apiErr.err = ErrConflict
	case http.StatusBadGateway:
		apiErr.err = ErrBadGateway
	case http.StatusInternalServerError:
		apiErr.err = ErrInternalServerError
	default:
		apiErr.err = ErrUnexpectedStatus
	}
	return apiErr
}

// errorCode extracts {"error": "..."} from body, falling back to the raw
// text for non-JSON answers.
func errorCode(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}
