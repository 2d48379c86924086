// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newSignupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Long:  "Create an account. A new Vault Master Key is generated locally and only its password-wrapped form is sent to the server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			email, err := a.askEmail()
			if err != nil {
				return err
			}
			password, err := a.askNewSecret("Master password: ", "Repeat master password: ")
			if err != nil {
				return err
			}

			if err = a.services.AuthService.Signup(ctx, email, password); err != nil {
				return err
			}
			a.logout(ctx)

			fmt.Fprintln(a.out, okStyle.Render("Account created for "+email))
			return nil
		},
	}
}
