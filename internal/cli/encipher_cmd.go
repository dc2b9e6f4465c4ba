// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// encipher_cmd.go - Encipher/decipher CLI commands for polysq.
//
// CLI: Comprehensive help and examples for all commands
//
// Command: encipher <cipher> <text> [key flags]
// Command: decipher <cipher> <text> [key flags]
// Aliases: enc/e, dec/d
//
// Examples:
//   polysq encipher twosquare "Hide the gold" --key1 leprachaun --key2 "ghosts and goblins"
//   polysq decipher twosquare AFEDPAGEUHID --key1 leprachaun --key2 "ghosts and goblins"
//   polysq encipher checkerboard SECRET --key fortune --rows ABCDE,FGHIK --cols LMNOP,QRSTU
//   polysq encipher threesquare "attack" --key1 one --key2 two --key3 three --seed 42
//
// Key material falls back to the [keys] config section when flags are
// absent. Text may also arrive on stdin when piped.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dnafinder/crypto-sub001/internal/cipher"
	"github.com/dnafinder/crypto-sub001/internal/config"
	"github.com/dnafinder/crypto-sub001/internal/history"
)

// HandleEncipher handles the "polysq encipher" CLI command.
func HandleEncipher(args Args) error {
	return handleTransform(args, cipher.Encrypt)
}

// HandleDecipher handles the "polysq decipher" CLI command.
func HandleDecipher(args Args) error {
	return handleTransform(args, cipher.Decrypt)
}

func handleTransform(args Args, dir cipher.Direction) error {
	cfg := config.Global()

	proto, err := BuildProtocol(args, cfg)
	if err != nil {
		return err
	}

	text := args.Text
	if text == "" && !IsTTY() {
		// Piped input: read the text from stdin.
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return &CommandError{Command: string(dir), Action: "read stdin", Reason: "could not read piped text", Err: err}
		}
		text = string(data)
	}

	res, err := proto.Transform(text, dir, cipher.NewRand(seedFrom(args, cfg)))
	if err != nil {
		return err
	}

	recordID := saveHistory(args, cfg, res)
	printResult(args, res, recordID)
	return nil
}

// BuildProtocol constructs the requested cipher from CLI key flags,
// falling back to configured defaults. All key validation happens here,
// before any transform.
func BuildProtocol(args Args, cfg *config.Config) (cipher.Protocol, error) {
	switch args.Cipher {
	case "checkerboard", "cb":
		key := fallback(args.Key1, cfg.Keys.CheckerboardKey)
		rows := fallback(args.Rows, cfg.Keys.CheckerboardRows)
		cols := fallback(args.Cols, cfg.Keys.CheckerboardCols)
		if rows == "" || cols == "" {
			return nil, &ValidationError{
				Field:   "key tables",
				Reason:  "checkerboard needs --rows and --cols (or configured defaults)",
				Example: "--rows ABCDE,FGHIK --cols LMNOP,QRSTU",
			}
		}
		return cipher.NewCheckerboard(key, rows, cols)

	case "twosquare", "two-square", "2square":
		return cipher.NewTwoSquare(
			fallback(args.Key1, cfg.Keys.TwoSquareKey1),
			fallback(args.Key2, cfg.Keys.TwoSquareKey2),
		), nil

	case "threesquare", "three-square", "3square":
		return cipher.NewThreeSquare(
			fallback(args.Key1, cfg.Keys.ThreeSquareKey1),
			fallback(args.Key2, cfg.Keys.ThreeSquareKey2),
			fallback(args.Key3, cfg.Keys.ThreeSquareKey3),
		), nil

	case "":
		return nil, &ValidationError{
			Field:   "cipher",
			Reason:  "cipher name required",
			Example: "polysq encipher twosquare \"text\" --key1 a --key2 b",
		}

	default:
		return nil, &NotFoundError{Resource: "cipher", ID: args.Cipher}
	}
}

// seedFrom picks the randomness seed: the --seed flag wins, then the
// configured seed, else 0 (OS-seeded).
func seedFrom(args Args, cfg *config.Config) int64 {
	if args.HasSeed {
		return args.Seed
	}
	return cfg.Random.Seed
}

// fallback returns the flag value, or the config default when empty.
func fallback(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}

// saveHistory records the transform, returning the record id, or ""
// when history is off. A broken history store must never fail the
// transform, so errors degrade to a warning.
func saveHistory(args Args, cfg *config.Config, res *cipher.Result) string {
	if !cfg.History.Enabled || args.NoSave {
		return ""
	}
	store, err := history.OpenDefault(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history unavailable: %v\n", err)
		return ""
	}
	defer store.Close()

	rec, err := store.Add(res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record transform: %v\n", err)
		return ""
	}
	return rec.ID
}

// printResult renders a transform result in the selected output mode.
func printResult(args Args, res *cipher.Result, recordID string) {
	output := res.Encrypted
	if res.Direction == cipher.Decrypt {
		output = res.Plain
	}

	if args.JSON {
		data := map[string]interface{}{
			"cipher":    res.Cipher,
			"direction": res.Direction,
			"plain":     res.Plain,
			"encrypted": res.Encrypted,
			"keys":      res.Keys,
		}
		if recordID != "" {
			data["record_id"] = recordID
		}
		NewJSONResponse(string(res.Direction), data).Print()
		return
	}

	if args.Quiet {
		fmt.Println(output)
		return
	}

	fmt.Println(TitleStyle.Render(fmt.Sprintf("%s %s", res.Cipher, res.Direction)))
	fmt.Println(LabelStyle.Render("Plain:") + " " + ValueStyle.Render(res.Plain))
	fmt.Println(LabelStyle.Render("Encrypted:") + " " + CipherTextStyle.Render(res.Encrypted))
	for _, k := range res.Keys {
		line := fmt.Sprintf("%s = %q", k.Name, k.Raw)
		if k.Normalized != "" && k.Normalized != k.Raw {
			line += DimStyle.Render(" -> "+k.Normalized)
		}
		fmt.Println(LabelStyle.Render("Key:") + " " + ValueStyle.Render(line))
	}
	if recordID != "" {
		fmt.Println(DimStyle.Render("Saved as " + shortID(recordID)))
	}
}

// shortID returns the first uuid segment, enough to paste back into
// "history show".
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
