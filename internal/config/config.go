// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the vault
// client. It aggregates all sub-configurations and is populated by merging
// values from command-line flags, environment variables (optionally seeded
// from a .env file), an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds key-derivation and export settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local ciphertext cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote vault server connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the import worker pool settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the log sink settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// KDFIterations is the PBKDF2-HMAC-SHA256 iteration count used for
	// every passphrase-derived key. Never below 200000.
	// Env: APP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// ExportDir is the directory where export bundles are written when no
	// explicit output file is given.
	// Env: APP_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR"`

	// MaxBundleSize caps the size in bytes of a bundle file read at import.
	// Env: APP_MAX_BUNDLE_SIZE
	MaxBundleSize int64 `env:"MAX_BUNDLE_SIZE"`
}

// Storage groups the configuration for local storage.
type Storage struct {
	// DB holds the local SQLite cache settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite ciphertext cache.
type DB struct {
	// DSN is the SQLite data source name (file path or file: URI).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the outbound transport to the vault server.
type Adapter struct {
	// HTTPAddress is the base URL of the vault API
	// (e.g. "http://localhost:4000"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of one outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SessionCookie is the name of the cookie carrying the session JWT.
	// Env: ADAPTER_SESSION_COOKIE
	SessionCookie string `env:"SESSION_COOKIE"`
}

// Workers holds configuration for the import worker pool.
type Workers struct {
	// ImportConcurrency bounds how many bundle items are re-keyed and
	// uploaded at the same time.
	// Env: WORKERS_IMPORT_CONCURRENCY
	ImportConcurrency int `env:"IMPORT_CONCURRENCY"`
}

// Log holds the log sink configuration.
type Log struct {
	// Path is the log file. Empty means stderr.
	// Env: LOG_PATH
	Path string `env:"PATH"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults applied for every field no other source sets.
const (
	DefaultKDFIterations     = 200_000
	DefaultExportDir         = "."
	DefaultMaxBundleSize     = 64 << 20
	DefaultHTTPAddress       = "http://localhost:4000"
	DefaultRequestTimeout    = 15 * time.Second
	DefaultSessionCookie     = "pv_session"
	DefaultDSN               = "vault-cache.db"
	DefaultImportConcurrency = 4
	DefaultLogLevel          = "info"
)

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. Sources are listed by precedence; a field set by an
// earlier source is never overwritten by a later one:
//  1. Command-line flags (flags may be nil)
//  2. Environment variables, after loading an optional .env file
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withDotEnv(".env").
		withEnv().
		withJSON().
		withDefaults().
		build()
}
