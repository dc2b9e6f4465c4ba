// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the polysq command-line interface: argument
// parsing, command handlers, terminal styling, and structured error
// reporting.
//
// Commands are dispatched from main through Parse, which returns a
// Command constant and the parsed Args. Every handler returns an error
// rather than exiting; main maps errors to exit codes via ReportError.
package cli
