// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-zk-vault/models"
)

// errImportIncomplete makes the process exit non-zero when some items did
// not make it.
var errImportIncomplete = errors.New("import incomplete")

func (a *App) newExportCommand() *cobra.Command {
	var (
		output     string
		passphrase bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all items to an encrypted bundle file",
		Long: "Write every item envelope of the account to a bundle file. The items stay encrypted. " +
			"With --passphrase the master key is additionally wrapped under a transfer passphrase " +
			"so the bundle can be imported into a different account.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSession(cmd.Context(), func(ctx context.Context) error {
				var opts models.ExportOptions
				if passphrase {
					secret, err := a.askNewSecret("Transfer passphrase: ", "Repeat transfer passphrase: ")
					if err != nil {
						return err
					}
					opts.Passphrase = secret
				}

				path, err := a.services.TransferService.ExportToFile(ctx, output, opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, okStyle.Render("Exported to "+path))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Bundle file or directory (default: export dir)")
	cmd.Flags().BoolVarP(&passphrase, "passphrase", "p", false, "Protect the bundle with a transfer passphrase")
	return cmd
}

func (a *App) newImportCommand() *cobra.Command {
	var (
		quick        bool
		skipExisting bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import items from a bundle file",
		Long: "Import items from a bundle file. By default every item is re-encrypted under this " +
			"account's master key, using the bundle's transfer passphrase or the source account " +
			"password. --quick uploads the envelopes as they are and is only valid when the bundle " +
			"was exported from this same account.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(ctx context.Context) error {
				opts := models.ImportOptions{Mode: models.ImportModeRekey, SkipExisting: skipExisting}
				if quick {
					opts.Mode = models.ImportModeQuick
				} else {
					var err error
					if opts.Passphrase, err = a.prompter.Secret("Transfer passphrase (empty if none): "); err != nil {
						return err
					}
					if opts.AccountPassword, err = a.prompter.Secret("Source account password (empty to skip): "); err != nil {
						return err
					}
				}

				summary, err := a.services.TransferService.ImportFromFile(ctx, args[0], opts)
				if len(summary.Outcomes) > 0 {
					fmt.Fprint(a.out, renderSummary(summary))
				}
				if err != nil {
					return err
				}
				if len(summary.Errors) > 0 {
					return fmt.Errorf("%w: %d of %d items failed", errImportIncomplete, len(summary.Errors), len(summary.Outcomes))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&quick, "quick", "q", false, "Upload envelopes unchanged (same account only)")
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "Skip items whose envelope already exists in the vault")
	return cmd
}
