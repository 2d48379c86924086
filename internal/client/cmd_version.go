// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-zk-vault/internal/service"
)

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationOffline: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			appInfo, err := service.NewAppInfoService(a.buildInfo, a.logger)
			if err != nil {
				return err
			}

			info := appInfo.GetAppVersion(cmd.Context())
			fmt.Fprintf(a.out, "%s %s\n", titleStyle.Render("Build version:"), info.BuildVersion())
			fmt.Fprintf(a.out, "%s %s\n", titleStyle.Render("Build date:"), info.BuildDate())
			fmt.Fprintf(a.out, "%s %s\n", titleStyle.Render("Build commit:"), info.BuildCommit())
			return nil
		},
	}
}
