// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/envelope"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/session"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/internal/utils"
	"github.com/MKhiriev/go-zk-vault/internal/validators"
	"github.com/MKhiriev/go-zk-vault/internal/workers"
	"github.com/MKhiriev/go-zk-vault/models"
)

type clientTransferService struct {
	adapter   adapter.ServerAdapter
	keychain  crypto.KeyChainService
	session   *session.Session
	bundles   store.BundleFileStorage
	validator validators.Validator
	runner    workers.Runner
	runIDs    *utils.UUIDGenerator

	logger *logger.Logger
	now    func() time.Time
}

func NewClientTransferService(
	serverAdapter adapter.ServerAdapter,
	keychain crypto.KeyChainService,
	sess *session.Session,
	bundles store.BundleFileStorage,
	validator validators.Validator,
	runner workers.Runner,
	logger *logger.Logger,
) ClientTransferService {
	return &clientTransferService{
		adapter:   serverAdapter,
		keychain:  keychain,
		session:   sess,
		bundles:   bundles,
		validator: validator,
		runner:    runner,
		runIDs:    utils.NewUUIDGenerator(),
		logger:    logger,
		now:       time.Now,
	}
}

func (t *clientTransferService) Export(ctx context.Context, opts models.ExportOptions) (models.TransferBundle, error) {
	log := logger.FromContext(ctx)

	if _, err := t.session.Account(); err != nil {
		return models.TransferBundle{}, err
	}

	// E1: item envelopes, verbatim
	items, err := t.adapter.ListItems(ctx)
	if err != nil {
		log.Err(err).Str("func", "clientTransferService.Export").Msg("failed to list items")
		return models.TransferBundle{}, mapAdapterError(err)
	}

	// E2: the server-side wrapped VMK, always carried as a fallback
	info, err := t.adapter.Me(ctx)
	if err != nil {
		log.Err(err).Str("func", "clientTransferService.Export").Msg("failed to fetch account envelope")
		return models.TransferBundle{}, mapAdapterError(err)
	}

	bundle := models.TransferBundle{
		Version:      models.BundleVersion,
		CreatedAt:    t.now().UTC(),
		EncryptedVMK: info.EncryptedVMK,
		Blobs:        make([]models.BundleBlob, 0, len(items)),
	}
	for _, item := range items {
		bundle.Blobs = append(bundle.Blobs, models.BundleBlob{
			ID:            item.ID,
			EncryptedBlob: item.EncryptedBlob,
			CreatedAt:     item.CreatedAt,
			UpdatedAt:     item.UpdatedAt,
		})
	}

	// E3: passphrase mode wraps the live VMK, read only now
	if opts.Passphrase != "" {
		vmk, err := t.session.VMK()
		if err != nil {
			return models.TransferBundle{}, err
		}
		envelopeText, err := t.keychain.WrapVMK(vmk, opts.Passphrase)
		vmk.Zero()
		if err != nil {
			return models.TransferBundle{}, fmt.Errorf("wrap VMK for export: %w", err)
		}
		bundle.ProtectedWithPassphrase = true
		bundle.VMKEnvelope = models.NewVMKEnvelope(envelopeText)
	}

	log.Info().
		Str("func", "clientTransferService.Export").
		Int("blobs", len(bundle.Blobs)).
		Bool("passphrase", bundle.ProtectedWithPassphrase).
		Msg("bundle assembled")
	return bundle, nil
}

func (t *clientTransferService) ExportToFile(ctx context.Context, path string, opts models.ExportOptions) (string, error) {
	bundle, err := t.Export(ctx, opts)
	if err != nil {
		return "", err
	}
	return t.bundles.Save(ctx, path, bundle)
}

func (t *clientTransferService) ImportFromFile(ctx context.Context, path string, opts models.ImportOptions) (models.ImportSummary, error) {
	bundle, err := t.bundles.Load(ctx, path)
	if err != nil {
		if errors.Is(err, store.ErrBundleDecode) {
			return models.ImportSummary{}, fmt.Errorf("%w: %w", ErrInvalidBundle, err)
		}
		return models.ImportSummary{}, err
	}
	return t.Import(ctx, bundle, opts)
}

func (t *clientTransferService) Import(ctx context.Context, bundle models.TransferBundle, opts models.ImportOptions) (models.ImportSummary, error) {
	runID := t.runIDs.Generate()
	runLog := logger.FromContext(ctx).With().
		Str("run_id", runID).
		Str("mode", string(opts.Mode)).
		Logger()
	ctx = runLog.WithContext(utils.WithRunID(ctx, runID))
	log := logger.FromContext(ctx)

	// I1: reject before anything is uploaded
	if err := t.validator.Validate(ctx, opts); err != nil {
		if errors.Is(err, validators.ErrMissingSourceSecret) {
			return models.ImportSummary{}, fmt.Errorf("%w: %w", ErrSourceKeyUnavailable, err)
		}
		return models.ImportSummary{}, err
	}
	if err := t.validator.Validate(ctx, bundle); err != nil {
		return models.ImportSummary{}, fmt.Errorf("%w: %w", ErrInvalidBundle, err)
	}
	if _, err := t.session.Account(); err != nil {
		return models.ImportSummary{}, err
	}

	// I2: re-key mode resolves the source key once for the whole bundle
	var sourceKey crypto.RawKey
	if opts.Mode == models.ImportModeRekey {
		key, err := t.resolveSourceKey(bundle, opts)
		if err != nil {
			log.Warn().Str("func", "clientTransferService.Import").Msg("source key unavailable")
			return models.ImportSummary{}, err
		}
		sourceKey = key
		defer sourceKey.Zero()
	}

	// I3: dedup set, optionally seeded with what the destination already has
	dedup := newDedupSet()
	if opts.SkipExisting {
		existing, err := t.adapter.ListItems(ctx)
		if err != nil {
			log.Err(err).Str("func", "clientTransferService.Import").Msg("failed to list destination items")
			return models.ImportSummary{}, mapAdapterError(err)
		}
		for _, item := range existing {
			dedup.seed(item.EncryptedBlob)
		}
	}

	// I4: per-item state machine, one slot per bundle index
	outcomes := make([]models.ItemOutcome, len(bundle.Blobs))
	for i, blob := range bundle.Blobs {
		outcomes[i] = models.ItemOutcome{Index: i, ID: blob.ID, State: models.ItemPending}
	}

	runErr := t.runner.ForEach(ctx, len(bundle.Blobs), func(ctx context.Context, i int) error {
		outcomes[i] = t.importItem(ctx, i, bundle.Blobs[i], opts.Mode, sourceKey, dedup)
		return nil
	})

	summary := summarize(outcomes)
	event := log.Info()
	if runErr != nil {
		event = log.Warn().Err(runErr)
	}
	event.
		Str("func", "clientTransferService.Import").
		Int("total", len(bundle.Blobs)).
		Int("imported", summary.Imported).
		Int("skipped", summary.Skipped).
		Int("failed", len(summary.Errors)).
		Msg("import finished")

	return summary, runErr
}

// importItem drives one bundle item from Pending to a terminal state.
func (t *clientTransferService) importItem(
	ctx context.Context,
	index int,
	blob models.BundleBlob,
	mode models.ImportMode,
	sourceKey crypto.RawKey,
	dedup *dedupSet,
) models.ItemOutcome {
	outcome := models.ItemOutcome{Index: index, ID: blob.ID, State: models.ItemPending}
	fail := func(reason models.FailureReason, err error) models.ItemOutcome {
		outcome.State = models.ItemFailed
		outcome.Err = &models.ItemError{Index: index, ID: blob.ID, Reason: reason, Err: err}
		return outcome
	}

	envelopeText := blob.EncryptedBlob

	switch mode {
	case models.ImportModeRekey:
		plaintext, err := t.keychain.OpenItem(sourceKey, blob.EncryptedBlob)
		if err != nil {
			return fail(models.ReasonDecryptFailed, err)
		}

		// the destination VMK may have been cleared since the run started
		vmk, err := t.session.VMK()
		if err != nil {
			crypto.Zero(plaintext)
			return fail(models.ReasonEncryptFailed, err)
		}
		envelopeText, err = t.keychain.SealItem(vmk, plaintext)
		vmk.Zero()
		crypto.Zero(plaintext)
		if err != nil {
			return fail(models.ReasonEncryptFailed, err)
		}
	default:
		if _, err := envelope.ParseItem(envelopeText); err != nil {
			return fail(models.ReasonMalformedEnvelope, err)
		}
	}

	owner, err := dedup.claim(ctx, envelopeText)
	if err != nil {
		// cancelled while a duplicate was uploading; stays pending
		return outcome
	}
	if !owner {
		outcome.State = models.ItemSkippedDuplicate
		return outcome
	}

	created, err := t.adapter.CreateItem(ctx, envelopeText)
	dedup.settle(envelopeText, err == nil)
	if err != nil {
		logger.FromContext(ctx).Debug().
			Err(err).
			Str("func", "clientTransferService.importItem").
			Int("index", index).
			Msg("upload failed")
		return fail(models.ReasonUploadFailed, mapAdapterError(err))
	}

	outcome.State = models.ItemUploaded
	outcome.NewID = created.ID
	return outcome
}

// resolveSourceKey opens the passphrase envelope first and falls back to the
// account-password envelope. Both failing, or no secret matching the bundle,
// yields ErrSourceKeyUnavailable with the causes joined.
func (t *clientTransferService) resolveSourceKey(bundle models.TransferBundle, opts models.ImportOptions) (crypto.RawKey, error) {
	var causes []error

	if bundle.HasPassphraseEnvelope() && opts.Passphrase != "" {
		key, err := t.keychain.UnwrapVMK(bundle.VMKEnvelope.Text(), opts.Passphrase)
		if err == nil {
			return key, nil
		}
		causes = append(causes, fmt.Errorf("passphrase envelope: %w", err))
	}

	if bundle.EncryptedVMK != "" && opts.AccountPassword != "" {
		key, err := t.keychain.UnwrapVMK(bundle.EncryptedVMK, opts.AccountPassword)
		if err == nil {
			return key, nil
		}
		causes = append(causes, fmt.Errorf("account envelope: %w", err))
	}

	if len(causes) == 0 {
		causes = append(causes, ErrNoSourceSecret)
	}
	return nil, fmt.Errorf("%w: %w", ErrSourceKeyUnavailable, errors.Join(causes...))
}

// summarize folds outcomes into a summary. Items still pending (run
// interrupted) appear only in Outcomes.
func summarize(outcomes []models.ItemOutcome) models.ImportSummary {
	summary := models.ImportSummary{
		Errors:   make([]*models.ItemError, 0),
		Outcomes: outcomes,
	}
	for _, o := range outcomes {
		switch o.State {
		case models.ItemUploaded:
			summary.Imported++
		case models.ItemSkippedDuplicate:
			summary.Skipped++
		case models.ItemFailed:
			summary.Errors = append(summary.Errors, o.Err)
		}
	}
	return summary
}
