// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-zk-vault/internal/client"
	"github.com/MKhiriev/go-zk-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit)))
	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, client.RenderError(err))
		return 1
	}
	return 0
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
