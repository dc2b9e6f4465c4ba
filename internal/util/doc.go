// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for the polysq toolkit.
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// String Utilities:
//   - TruncateWidth: display-width-aware truncation with ellipsis
//   - PadWidth: display-width-aware right padding for table columns
package util
