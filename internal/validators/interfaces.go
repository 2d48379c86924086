// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client-side input before anything is encrypted
// or sent: vault records, transfer bundles, account credentials and import
// options.
//
// Services depend on the [Validator] interface; [NewVaultValidator] returns
// the go-playground/validator backed implementation. Failures are reported
// as the sentinel errors in errors.go so callers can match them with
// [errors.Is].
package validators

import "context"

// Validator validates a value. The optional field names narrow the check to
// specific fields where the value type supports it.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
