// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the client and blocks until it exits.
	Run(ctx context.Context) error
}

// Prompter asks the user for input.
type Prompter interface {
	// Secret reads a value without echoing it.
	Secret(prompt string) (string, error)

	// Line reads one visible line.
	Line(prompt string) (string, error)
}

// Clipboard is the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}
