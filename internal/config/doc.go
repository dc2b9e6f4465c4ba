// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// polysq.
//
// The configuration covers four concerns:
//   - Default key material per cipher (keys.*)
//   - The randomness seed for the randomized ciphers (random.seed)
//   - Terminal output behavior (output.color)
//   - The transform history store (history.*)
//
// Files are TOML by preference with a JSON fallback, stored under
// ~/.polysq/. POLYSQ_* environment variables override file values.
package config
