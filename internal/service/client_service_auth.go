// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/session"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/internal/validators"
	"github.com/MKhiriev/go-zk-vault/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	keychain  crypto.KeyChainService
	session   *session.Session
	cache     store.ItemCacheRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewClientAuthService(
	serverAdapter adapter.ServerAdapter,
	keychain crypto.KeyChainService,
	sess *session.Session,
	cache store.ItemCacheRepository,
	validator validators.Validator,
	logger *logger.Logger,
) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		keychain:  keychain,
		session:   sess,
		cache:     cache,
		validator: validator,
		logger:    logger,
	}
}

func (a *clientAuthService) Signup(ctx context.Context, email, password string) error {
	log := logger.FromContext(ctx)

	account := models.Account{Email: email, Password: password}
	if err := a.validator.Validate(ctx, account, validators.FieldEmail, validators.FieldPasswordStrength); err != nil {
		return err
	}

	// S1: fresh VMK, never leaves this process in the clear
	vmk, err := a.keychain.GenerateVMK()
	if err != nil {
		return fmt.Errorf("generate VMK: %w", err)
	}
	defer vmk.Zero()

	// S2: wrap it under the account password, the server stores only this
	account.EncryptedVMK, err = a.keychain.WrapVMK(vmk, password)
	if err != nil {
		return fmt.Errorf("wrap VMK: %w", err)
	}

	// S3: create the account, the answer carries the session
	token, err := a.adapter.Signup(ctx, account)
	account.Password = ""
	if err != nil {
		log.Err(err).Str("func", "clientAuthService.Signup").Msg("signup request failed")
		return mapAdapterError(err)
	}

	// S4: seat the VMK
	if err = a.session.SetVMK(session.Account{ID: token.Subject, Email: email}, vmk); err != nil {
		return fmt.Errorf("seat VMK: %w", err)
	}
	a.session.SetToken(token.SignedString)

	log.Info().
		Str("func", "clientAuthService.Signup").
		Str("account_id", token.Subject).
		Msg("account created")
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) error {
	log := logger.FromContext(ctx)

	account := models.Account{Email: email, Password: password}
	if err := a.validator.Validate(ctx, account, validators.FieldEmail, validators.FieldPassword); err != nil {
		return err
	}

	// L1: authenticate, receive the wrapped VMK
	result, err := a.adapter.Login(ctx, account)
	account.Password = ""
	if err != nil {
		log.Err(err).Str("func", "clientAuthService.Login").Msg("login request failed")
		return mapAdapterError(err)
	}
	if result.Requires2FA {
		return ErrSecondFactorRequired
	}

	// L2: unwrap. Whatever went wrong, the caller only learns that the
	// credentials were not accepted.
	vmk, err := a.keychain.UnwrapVMK(result.EncryptedVMK, password)
	if err != nil {
		log.Warn().Str("func", "clientAuthService.Login").Msg("stored VMK envelope did not open")
		a.dropServerSession(ctx)
		return ErrInvalidCredentials
	}
	defer vmk.Zero()

	// L3: identify the account from the session token
	token, err := a.adapter.SessionToken()
	if err != nil {
		log.Err(err).Str("func", "clientAuthService.Login").Msg("no usable session after login")
		return fmt.Errorf("login session: %w", err)
	}

	// L4: seat the VMK
	if err = a.session.SetVMK(session.Account{ID: token.Subject, Email: email}, vmk); err != nil {
		return fmt.Errorf("seat VMK: %w", err)
	}
	a.session.SetToken(token.SignedString)

	log.Info().
		Str("func", "clientAuthService.Login").
		Str("account_id", token.Subject).
		Msg("logged in")
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	account, accErr := a.session.Account()

	err := a.adapter.Logout(ctx)
	a.session.Clear()

	if accErr == nil {
		if purgeErr := a.cache.Purge(ctx, account.ID); purgeErr != nil {
			log.Err(purgeErr).
				Str("func", "clientAuthService.Logout").
				Str("account_id", account.ID).
				Msg("failed to purge local cache")
		}
	}

	// an already expired server session is as good as a logout
	if err != nil && !errors.Is(err, adapter.ErrUnauthorized) {
		log.Err(err).Str("func", "clientAuthService.Logout").Msg("logout request failed")
		return mapAdapterError(err)
	}
	return nil
}

// dropServerSession ends a server session that must not be used because the
// VMK could not be recovered.
func (a *clientAuthService) dropServerSession(ctx context.Context) {
	if err := a.adapter.Logout(ctx); err != nil {
		logger.FromContext(ctx).Debug().
			Err(err).
			Str("func", "clientAuthService.dropServerSession").
			Msg("logout after failed unwrap")
	}
}
