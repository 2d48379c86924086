// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidURL      = errors.New("url is not a valid URL")
	ErrFieldTooLong    = errors.New("field is too long")
	ErrInvalidTag      = errors.New("invalid tag")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters")
	ErrEmptyEnvelope   = errors.New("encrypted VMK is required")

	ErrUnsupportedBundleVersion = errors.New("unsupported bundle version")
	ErrBundleProtectionMismatch = errors.New("protectedWithPassphrase does not match vmkEnvelope presence")
	ErrInvalidImportMode        = errors.New("invalid import mode")
	ErrMissingSourceSecret      = errors.New("re-key import needs a passphrase or an account password")
	ErrInvalidRecord            = errors.New("invalid record")
)
