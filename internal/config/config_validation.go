// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

const (
	minKDFIterations     = 200_000
	maxImportConcurrency = 64
)

// validate checks the merged [StructuredConfig]. Only values that were set
// are checked here; missing values are the job of [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.App.KDFIterations != 0 && cfg.App.KDFIterations < minKDFIterations {
		return ErrInvalidAppConfigs
	}
	if cfg.Workers.ImportConcurrency < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.KDFIterations < minKDFIterations || cfg.App.MaxBundleSize <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.SessionCookie == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ImportConcurrency < 1 || cfg.Workers.ImportConcurrency > maxImportConcurrency {
		return ErrInvalidWorkerConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}
