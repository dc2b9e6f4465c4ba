// polysq - classical Polybius-square cipher toolkit.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	"github.com/dnafinder/crypto-sub001/internal/cli"
	"github.com/dnafinder/crypto-sub001/internal/config"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	// Load configuration before any handler runs; a broken config file
	// degrades to defaults with a warning rather than blocking the tool.
	cfg, loadErr := config.Load()
	if loadErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default configuration: %v\n", loadErr)
		cfg = config.Default()
		cfg.ApplyEnvOverrides()
	}
	config.SetGlobal(cfg)

	var err error
	command := "polysq"

	switch cmd {
	case cli.CmdEncipher:
		command = "encipher"
		err = cli.HandleEncipher(args)

	case cli.CmdDecipher:
		command = "decipher"
		err = cli.HandleDecipher(args)

	case cli.CmdSquare:
		command = "square"
		err = cli.HandleSquare(args)

	case cli.CmdHistory:
		command = "history"
		err = cli.HandleHistory(args)

	case cli.CmdExplain:
		command = "explain"
		err = cli.HandleExplain(args)

	case cli.CmdInteractive:
		command = "interactive"
		err = cli.HandleInteractive(args)

	case cli.CmdConfig:
		command = "config"
		err = cli.HandleConfig(args)

	case cli.CmdVersion:
		cli.PrintVersion(args.JSON)

	case cli.CmdHelp:
		if args.Subcommand != "" {
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args.Subcommand)
			cli.PrintUsage()
			os.Exit(cli.ExitUsageError)
		}
		cli.PrintUsage()
	}

	if err != nil {
		os.Exit(cli.ReportError(command, err, args.JSON))
	}
}
