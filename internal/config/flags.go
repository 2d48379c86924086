// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the config
// they write into. The returned value is only meaningful after fs has been
// parsed (cobra does this before running a command).
//
// Flags:
//
//	-a, --address        vault API base URL
//	    --timeout        request timeout (e.g. "15s")
//	-d, --dsn            local cache DSN
//	-c, --config         JSON config file path
//	    --kdf-iterations PBKDF2 iteration count
//	    --export-dir     default export directory
//	    --workers        import concurrency
//	    --log-file       log file path
//	    --log-level      log level
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Adapter.HTTPAddress, "address", "a", "", "Vault API base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "Local cache database DSN")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.IntVar(&cfg.App.KDFIterations, "kdf-iterations", 0, "PBKDF2 iteration count (min 200000)")
	fs.StringVar(&cfg.App.ExportDir, "export-dir", "", "Default directory for export bundles")
	fs.IntVar(&cfg.Workers.ImportConcurrency, "workers", 0, "Parallel items during import")
	fs.StringVar(&cfg.Log.Path, "log-file", "", "Log file path (default stderr)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")

	return cfg
}
