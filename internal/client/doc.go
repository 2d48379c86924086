// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the `vault` command-line application.
//
// It wires configuration, the server adapter, the local ciphertext cache and
// the client services into a cobra command tree. Every command that needs
// the Vault Master Key logs in first (email flag plus a hidden password
// prompt), runs, and logs out again, so the key only lives in process memory
// for the duration of one command.
package client
