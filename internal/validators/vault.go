// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-zk-vault/models"
)

// Field name constants used to scope validation of models.Account.
const (
	// FieldEmail targets the account email.
	FieldEmail = "email"

	// FieldPassword requires a non-empty account password (login).
	FieldPassword = "password"

	// FieldPasswordStrength additionally enforces the minimum length (signup).
	FieldPasswordStrength = "password_strength"

	// FieldEncryptedVMK targets the wrapped VMK sent at signup.
	FieldEncryptedVMK = "encrypted_vmk"
)

const minPasswordLength = 8

// VaultValidator implements [Validator] for the client-side models:
// VaultRecord, TransferBundle, Account and ImportOptions. Struct-level rules
// come from `validate` tags and are checked with go-playground/validator;
// rules that span fields are checked by hand.
type VaultValidator struct {
	v *validator.Validate
}

// NewVaultValidator constructs a new VaultValidator and returns it as the
// Validator interface.
func NewVaultValidator() Validator {
	return &VaultValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Field names scope validation for models.Account only.
func (vv *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultRecord:
		return vv.validateRecord(ctx, value)
	case *models.VaultRecord:
		return vv.validateRecord(ctx, *value)

	case models.TransferBundle:
		return vv.validateBundle(ctx, value)
	case *models.TransferBundle:
		return vv.validateBundle(ctx, *value)

	case models.Account:
		return vv.validateAccount(ctx, value, fields...)
	case *models.Account:
		return vv.validateAccount(ctx, *value, fields...)

	case models.ImportOptions:
		return vv.validateImportOptions(value)
	case *models.ImportOptions:
		return vv.validateImportOptions(*value)

	default:
		return ErrUnsupportedType
	}
}

func (vv *VaultValidator) validateRecord(ctx context.Context, record models.VaultRecord) error {
	if err := vv.v.StructCtx(ctx, record); err != nil {
		return translate(err)
	}
	return nil
}

// validateBundle checks the version tag and that the protection flag agrees
// with the presence of the passphrase envelope. Blobs are judged one by one
// during the import itself.
func (vv *VaultValidator) validateBundle(ctx context.Context, bundle models.TransferBundle) error {
	if err := vv.v.StructCtx(ctx, bundle); err != nil {
		return translate(err)
	}
	if bundle.ProtectedWithPassphrase != bundle.HasPassphraseEnvelope() {
		return ErrBundleProtectionMismatch
	}
	return nil
}

func (vv *VaultValidator) validateAccount(ctx context.Context, account models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := vv.v.VarCtx(ctx, account.Email, "required,email"); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if account.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPasswordStrength:
			if err := vv.v.VarCtx(ctx, account.Password, fmt.Sprintf("min=%d", minPasswordLength)); err != nil {
				return ErrPasswordTooWeak
			}
		case FieldEncryptedVMK:
			if account.EncryptedVMK == "" {
				return ErrEmptyEnvelope
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (vv *VaultValidator) validateImportOptions(opts models.ImportOptions) error {
	switch opts.Mode {
	case models.ImportModeQuick:
		return nil
	case models.ImportModeRekey:
		if opts.Passphrase == "" && opts.AccountPassword == "" {
			return ErrMissingSourceSecret
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidImportMode, opts.Mode)
	}
}

// translate maps the first go-playground field error to a package sentinel.
func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	fe := fieldErrs[0]
	switch {
	case fe.Field() == "Title" && fe.Tag() == "required":
		return ErrEmptyTitle
	case fe.Field() == "Version":
		return fmt.Errorf("%w: %v", ErrUnsupportedBundleVersion, fe.Value())
	case fe.Tag() == "url":
		return ErrInvalidURL
	case fe.Tag() == "max":
		return fmt.Errorf("%w: %s", ErrFieldTooLong, fe.Namespace())
	case fe.Tag() == "required":
		// only dive elements of Tags reach here
		return fmt.Errorf("%w: %s", ErrInvalidTag, fe.Namespace())
	default:
		return fmt.Errorf("%w: %s failed %s", ErrInvalidRecord, fe.Namespace(), fe.Tag())
	}
}
