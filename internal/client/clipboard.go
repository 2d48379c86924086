// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
)

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

func (systemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// copyWithClear puts value on the clipboard. With after > 0 it waits that
// long (or until ctx ends) and then clears the clipboard, unless something
// else has been copied meanwhile.
func copyWithClear(ctx context.Context, cb Clipboard, value string, after time.Duration) error {
	if err := cb.WriteAll(value); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	if after <= 0 {
		return nil
	}

	timer := time.NewTimer(after)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}

	current, err := cb.ReadAll()
	if err != nil || current != value {
		return nil
	}
	return cb.WriteAll("")
}
