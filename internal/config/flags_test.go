// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags_AllFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	err := fs.Parse([]string{
		"-a", "https://vault.example.com",
		"--timeout", "20s",
		"-d", "/tmp/flags.db",
		"-c", "/etc/vault.json",
		"--kdf-iterations", "250000",
		"--export-dir", "/backups",
		"--workers", "2",
		"--log-file", "/tmp/vault.log",
		"--log-level", "warn",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://vault.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/vault.json", cfg.JSONFilePath)
	assert.Equal(t, 250000, cfg.App.KDFIterations)
	assert.Equal(t, "/backups", cfg.App.ExportDir)
	assert.Equal(t, 2, cfg.Workers.ImportConcurrency)
	assert.Equal(t, "/tmp/vault.log", cfg.Log.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestBindFlags_NoFlagsLeavesZeroConfig(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBindFlags_LongConfigAlias(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	require.NoError(t, fs.Parse([]string{"--config=/x.json", "--address=localhost:4000"}))
	assert.Equal(t, "/x.json", cfg.JSONFilePath)
	assert.Equal(t, "localhost:4000", cfg.Adapter.HTTPAddress)
}

func TestBindFlags_InvalidDuration(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	assert.Error(t, fs.Parse([]string{"--timeout", "later"}))
}
