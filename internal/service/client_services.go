// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/session"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/internal/validators"
	"github.com/MKhiriev/go-zk-vault/internal/workers"
	"github.com/MKhiriev/go-zk-vault/models"
)

// ClientServices groups every client-side service over one shared session.
type ClientServices struct {
	AuthService     ClientAuthService
	VaultService    ClientVaultService
	TransferService ClientTransferService
	AppInfoService  AppInfoService

	Session *session.Session
}

// ClientServicesDeps lists what NewClientServices wires together.
type ClientServicesDeps struct {
	Adapter   adapter.ServerAdapter
	KeyChain  crypto.KeyChainService
	Storages  *store.ClientStorages
	Validator validators.Validator
	Workers   int
	BuildInfo models.AppBuildInfo
	Logger    *logger.Logger
}

func NewClientServices(deps ClientServicesDeps) (*ClientServices, error) {
	appInfo, err := NewAppInfoService(deps.BuildInfo, deps.Logger)
	if err != nil {
		return nil, err
	}

	sess := session.New()
	runner := workers.NewPool(deps.Workers)
	deps.Logger.Debug().Int("import_workers", runner.Limit()).Msg("client services wired")

	return &ClientServices{
		AuthService:     NewClientAuthService(deps.Adapter, deps.KeyChain, sess, deps.Storages.ItemCache, deps.Validator, deps.Logger),
		VaultService:    NewClientVaultService(deps.Adapter, deps.KeyChain, sess, deps.Storages.ItemCache, deps.Validator, deps.Logger),
		TransferService: NewClientTransferService(deps.Adapter, deps.KeyChain, sess, deps.Storages.Bundles, deps.Validator, runner, deps.Logger),
		AppInfoService:  appInfo,
		Session:         sess,
	}, nil
}
