// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the transient, in-memory state of an authenticated
// client: the account identity and the unwrapped Vault Master Key.
//
// The VMK slot is written only at signup, login and logout. Readers must
// call [Session.VMK] right before every use and handle
// [ErrNotAuthenticated]; the slot may be cleared at any time.
package session

import (
	"errors"
	"sync"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
)

// ErrNotAuthenticated is returned when the VMK slot is empty.
var ErrNotAuthenticated = errors.New("not authenticated")

// Account identifies the logged-in user.
type Account struct {
	ID    string
	Email string
}

// Session is safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	vmk     crypto.RawKey
	account Account
	token   string
}

// New returns an empty (logged-out) session.
func New() *Session {
	return &Session{}
}

// SetVMK seats a copy of vmk together with the account it belongs to.
// A previously held key is wiped.
func (s *Session) SetVMK(account Account, vmk crypto.RawKey) error {
	if err := vmk.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.vmk.Zero()
	s.vmk = vmk.Clone()
	s.account = account
	return nil
}

// VMK returns a copy of the held key or [ErrNotAuthenticated].
// Callers own the copy and should wipe it when done.
func (s *Session) VMK() (crypto.RawKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.vmk == nil {
		return nil, ErrNotAuthenticated
	}
	return s.vmk.Clone(), nil
}

// Account returns the logged-in account, or [ErrNotAuthenticated].
func (s *Session) Account() (Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.vmk == nil {
		return Account{}, ErrNotAuthenticated
	}
	return s.account, nil
}

// SetToken stores the server session token.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token returns the server session token, empty when none is held.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a VMK is seated.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vmk != nil
}

// Clear wipes the VMK and forgets the account and token.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vmk.Zero()
	s.vmk = nil
	s.account = Account{}
	s.token = ""
}
