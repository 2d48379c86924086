// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/models"
)

// bundleFileLayout is the time layout of default export file names.
const bundleFileLayout = "2006-01-02-15-04-05"

// bundleFileStorage is the default implementation of [BundleFileStorage].
// Files are written atomically (temp file and rename) with owner-only
// permissions, since a bundle without a passphrase is protected only by the
// account password.
type bundleFileStorage struct {
	exportDir string
	maxSize   int64

	logger *logger.Logger
	now    func() time.Time
}

// NewBundleFileStorage constructs a [BundleFileStorage] writing into
// cfg.ExportDir and refusing to read files larger than cfg.MaxBundleSize.
func NewBundleFileStorage(cfg config.ClientApp, logger *logger.Logger) BundleFileStorage {
	return &bundleFileStorage{
		exportDir: cfg.ExportDir,
		maxSize:   cfg.MaxBundleSize,
		logger:    logger,
		now:       time.Now,
	}
}

// DefaultBundleFileName returns vault-export-YYYY-MM-DD-HH-MM-SS.json for t.
func DefaultBundleFileName(t time.Time) string {
	return fmt.Sprintf("vault-export-%s.json", t.Format(bundleFileLayout))
}

func (s *bundleFileStorage) Save(ctx context.Context, path string, bundle models.TransferBundle) (string, error) {
	log := logger.FromContext(ctx)

	target, err := s.resolvePath(path)
	if err != nil {
		return "", err
	}

	payload, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode bundle: %w", err)
	}

	dir := filepath.Dir(target)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	// os.CreateTemp creates the file with mode 0600
	tmp, err := os.CreateTemp(dir, ".vault-export-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp bundle file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write bundle file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close bundle file: %w", err)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("move bundle file: %w", err)
	}

	log.Info().
		Str("func", "bundleFileStorage.Save").
		Str("path", target).
		Int("blobs", len(bundle.Blobs)).
		Msg("bundle written")
	return target, nil
}

func (s *bundleFileStorage) Load(ctx context.Context, path string) (models.TransferBundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.TransferBundle{}, fmt.Errorf("open bundle file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return models.TransferBundle{}, fmt.Errorf("stat bundle file: %w", err)
	}
	if s.maxSize > 0 && info.Size() > s.maxSize {
		return models.TransferBundle{}, fmt.Errorf("%w: %d bytes", ErrBundleTooLarge, info.Size())
	}

	var r io.Reader = f
	if s.maxSize > 0 {
		r = io.LimitReader(f, s.maxSize)
	}

	var bundle models.TransferBundle
	if err = json.NewDecoder(r).Decode(&bundle); err != nil {
		return models.TransferBundle{}, fmt.Errorf("%w: %w", ErrBundleDecode, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "bundleFileStorage.Load").
		Str("path", path).
		Int("blobs", len(bundle.Blobs)).
		Msg("bundle read")
	return bundle, nil
}

// resolvePath maps an empty path or an existing directory to a timestamped
// file inside it.
func (s *bundleFileStorage) resolvePath(path string) (string, error) {
	if path == "" {
		dir := s.exportDir
		if dir == "" {
			dir = "."
		}
		return filepath.Join(dir, DefaultBundleFileName(s.now())), nil
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return filepath.Join(path, DefaultBundleFileName(s.now())), nil
	case err == nil || os.IsNotExist(err):
		return path, nil
	default:
		return "", fmt.Errorf("stat export path: %w", err)
	}
}
