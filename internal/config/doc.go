// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the vault client.
//
// Configuration is assembled from multiple sources in the following
// precedence order (a field set by an earlier source is kept):
//  1. Command-line flags (see [BindFlags])
//  2. Environment variables, seeded from an optional .env file
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
