// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-zk-vault/internal/generator"
)

func (a *App) newGenerateCommand() *cobra.Command {
	var (
		length     int
		noLower    bool
		noUpper    bool
		noDigits   bool
		noSymbols  bool
		noSimilar  bool
		copyPwd    bool
		clearAfter time.Duration
	)

	cmd := &cobra.Command{
		Use:         "generate",
		Aliases:     []string{"gen"},
		Short:       "Generate a random password",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationOffline: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			pwd, err := generator.Generate(generator.Options{
				Length:            length,
				Lower:             !noLower,
				Upper:             !noUpper,
				Digits:            !noDigits,
				Symbols:           !noSymbols,
				ExcludeLookAlikes: noSimilar,
			})
			if err != nil {
				return err
			}

			if !copyPwd {
				fmt.Fprintln(a.out, pwd)
				return nil
			}
			if clearAfter > 0 {
				fmt.Fprintln(a.out, faintStyle.Render(fmt.Sprintf("Password copied, clearing in %s", clearAfter)))
			}
			return copyWithClear(cmd.Context(), a.clipboard, pwd, clearAfter)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&length, "length", "l", generator.DefaultLength, fmt.Sprintf("Password length (%d..%d)", generator.MinLength, generator.MaxLength))
	fs.BoolVar(&noLower, "no-lower", false, "Exclude lowercase letters")
	fs.BoolVar(&noUpper, "no-upper", false, "Exclude uppercase letters")
	fs.BoolVar(&noDigits, "no-digits", false, "Exclude digits")
	fs.BoolVar(&noSymbols, "no-symbols", false, "Exclude symbols")
	fs.BoolVar(&noSimilar, "exclude-look-alikes", false, "Exclude look-alike characters (0 O o 1 l I)")
	fs.BoolVar(&copyPwd, "copy", false, "Copy to the clipboard instead of printing")
	fs.DurationVar(&clearAfter, "clear-after", 30*time.Second, "Clear the clipboard after this long (0 keeps it)")
	return cmd
}
