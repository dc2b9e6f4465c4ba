// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// interactive.go - Line-by-line cipher REPL for polysq.
//
// Command: interactive <cipher> [key flags]
// Aliases: repl, i
//
// Examples:
//   polysq interactive twosquare --key1 leprachaun --key2 "ghosts and goblins"
//   polysq interactive checkerboard --key fortune --rows ABCDE,FGHIK --cols LMNOP,QRSTU
//
// Each entered line is transformed with the cipher built from the key
// flags. REPL commands switch direction or exit:
//
//   :encrypt   switch to enciphering (default)
//   :decrypt   switch to deciphering
//   :quit      exit the session
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/dnafinder/crypto-sub001/internal/cipher"
	"github.com/dnafinder/crypto-sub001/internal/config"
)

// replHistoryFile is the liner history filename under the config dir.
const replHistoryFile = "repl_history"

// HandleInteractive handles the "polysq interactive" CLI command.
func HandleInteractive(args Args) error {
	cfg := config.Global()

	proto, err := BuildProtocol(args, cfg)
	if err != nil {
		return err
	}

	if !IsTTY() {
		return &CommandError{
			Command: "interactive",
			Action:  "start",
			Reason:  "interactive mode requires a terminal",
		}
	}

	rng := cipher.NewRand(seedFrom(args, cfg))

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := loadReplHistory(line)
	defer saveReplHistory(line, histPath)

	fmt.Println(TitleStyle.Render("polysq interactive - " + proto.Name()))
	fmt.Println(DimStyle.Render("Type text to transform, :encrypt / :decrypt to switch, :quit to exit."))

	dir := cipher.Encrypt
	for {
		input, err := line.Prompt(string(dir) + "> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return &CommandError{Command: "interactive", Action: "read", Reason: "prompt failed", Err: err}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch input {
		case ":quit", ":q", ":exit":
			return nil
		case ":encrypt", ":enc":
			dir = cipher.Encrypt
			continue
		case ":decrypt", ":dec":
			dir = cipher.Decrypt
			continue
		}

		res, err := proto.Transform(input, dir, rng)
		if err != nil {
			fmt.Println(ErrorStyle.Render("Error: ") + err.Error())
			continue
		}
		output := res.Encrypted
		if dir == cipher.Decrypt {
			output = res.Plain
		}
		fmt.Println(CipherTextStyle.Render(output))
	}
}

// loadReplHistory reads prior REPL input into the liner, returning the
// history file path ("" when the config dir is unavailable).
func loadReplHistory(line *liner.State) string {
	dir, err := config.ConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, replHistoryFile)
	if f, err := os.Open(path); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	return path
}

// saveReplHistory persists the liner history. Failures are silent: the
// session already succeeded and history is a convenience.
func saveReplHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}
	if f, err := os.Create(path); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}
