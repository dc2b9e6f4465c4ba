// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for polysq.
//
// CLI: Comprehensive help and examples for all commands
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdEncipher Command = iota
	CmdDecipher
	CmdSquare
	CmdHistory
	CmdExplain
	CmdInteractive
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet  bool
	JSON   bool // Output in JSON format
	NoSave bool // Skip history recording
	Seed   int64
	HasSeed bool // Seed flag was given (0 is a valid explicit seed)

	// Cipher selection and text
	Cipher string
	Text   string

	// Key material
	Key1 string
	Key2 string
	Key3 string
	Rows string // checkerboard row table, "ROW1,ROW2"
	Cols string // checkerboard column table, "ROW1,ROW2"

	// Command-specific
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `polysq - classical Polybius-square cipher toolkit

Polysq reproduces the keyed-Polybius-square cipher family used in
ACA-style cryptanalysis exercises: the checkerboard (two-key
coordinate) cipher and the two-square and three-square (double/triple
Playfair) ciphers.

These are historical pen-and-paper algorithms. They provide NO real
security; the design target is exact, reproducible behavior.

Usage:
  polysq encipher <cipher> <text> [key flags]   Encrypt text
  polysq decipher <cipher> <text> [key flags]   Decrypt text
  polysq square <keyword>                       Show the keyed 5x5 grid
  polysq history [list|show|clear]              Transform history
  polysq explain [cipher]                       Cipher reference cards
  polysq interactive [cipher] [key flags]       Encipher line by line
  polysq config [show|set|path]                 Configuration
  polysq version                                Version information

Ciphers:
  checkerboard    One keyed square + two 2x5 letter tables. Each letter
                  becomes two letters; encryption is randomized, four
                  ciphertexts per letter, all decrypt identically.
  twosquare       Two keyed squares, digraph substitution with the
                  rectangle rule; equal rows swap the pair.
  threesquare     Three keyed squares, each digraph becomes a trigram
                  with randomized outer letters.

Key Flags:
  --key WORD      Keyword (checkerboard square)
  --key1 WORD     First keyword (twosquare, threesquare)
  --key2 WORD     Second keyword (twosquare, threesquare)
  --key3 WORD     Third keyword (threesquare)
  --rows R1,R2    Checkerboard row table, two rows of five letters
  --cols R1,R2    Checkerboard column table, two rows of five letters

  Missing key flags fall back to the [keys] section of the config file.

Global Flags:
  --seed N        Seed the randomness source (reproducible ciphertexts)
  --json          Output in JSON format
  --no-save       Do not record this transform in history
  -q, --quiet     Print only the transformed text

Examples:
  polysq encipher twosquare "Hide the gold" --key1 leprachaun --key2 "ghosts and goblins"
  polysq decipher twosquare AFEDPAGEUH --key1 leprachaun --key2 "ghosts and goblins"
  polysq encipher checkerboard SECRET --key fortune --rows ABCDE,FGHIK --cols LMNOP,QRSTU
  polysq encipher threesquare "attack at dawn" --key1 one --key2 two --key3 three --seed 42
  polysq square leprachaun                 Show the keyed grid
  polysq history list                      Recent transforms
  polysq history show 4f1c                 One transform by id prefix
  polysq explain twosquare                 How the cipher works
  polysq interactive twosquare --key1 a --key2 b

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion(jsonMode bool) {
	if jsonMode {
		resp := NewJSONResponse("version", map[string]string{
			"version":    Version,
			"git_commit": GitCommit,
			"build_date": BuildDate,
		})
		resp.Print()
		return
	}
	fmt.Printf("polysq version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given argument list. Split out from Parse so
// tests can drive it directly.
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsed := parseFlags(argv)

	if len(remaining) == 0 {
		return CmdHelp, parsed
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "encipher", "encrypt", "enc", "e":
		parseCipherArgs(&parsed, remaining)
		return CmdEncipher, parsed

	case "decipher", "decrypt", "dec", "d":
		parseCipherArgs(&parsed, remaining)
		return CmdDecipher, parsed

	case "square", "grid":
		if len(remaining) > 0 {
			parsed.Key1 = remaining[0]
		}
		return CmdSquare, parsed

	case "history", "hist":
		if len(remaining) > 0 {
			parsed.Subcommand = remaining[0]
			parsed.Raw = remaining[1:]
		}
		return CmdHistory, parsed

	case "explain", "reference", "ref":
		if len(remaining) > 0 {
			parsed.Cipher = strings.ToLower(remaining[0])
		}
		return CmdExplain, parsed

	case "interactive", "repl", "i":
		parseCipherArgs(&parsed, remaining)
		return CmdInteractive, parsed

	case "config":
		parseConfigArgs(&parsed, remaining)
		return CmdConfig, parsed

	case "version", "-V", "--version":
		return CmdVersion, parsed

	case "help", "-h", "--help":
		return CmdHelp, parsed

	default:
		// Unknown command: show help rather than guessing.
		parsed.Subcommand = cmd
		return CmdHelp, parsed
	}
}

// parseFlags extracts flags that may appear anywhere in the argument
// list, returning the positional arguments.
func parseFlags(argv []string) ([]string, Args) {
	var parsed Args
	var positional []string

	takeValue := func(i *int, name string) string {
		if *i+1 >= len(argv) {
			fmt.Fprintf(os.Stderr, "Warning: %s requires a value\n", name)
			return ""
		}
		*i++
		return argv[*i]
	}

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch arg {
		case "--json":
			parsed.JSON = true
		case "--no-save":
			parsed.NoSave = true
		case "-q", "--quiet":
			parsed.Quiet = true
		case "--seed":
			v := takeValue(&i, "--seed")
			var seed int64
			if _, err := fmt.Sscanf(v, "%d", &seed); err == nil {
				parsed.Seed = seed
				parsed.HasSeed = true
			} else {
				fmt.Fprintf(os.Stderr, "Warning: ignoring non-numeric --seed %q\n", v)
			}
		case "--key":
			parsed.Key1 = takeValue(&i, "--key")
		case "--key1":
			parsed.Key1 = takeValue(&i, "--key1")
		case "--key2":
			parsed.Key2 = takeValue(&i, "--key2")
		case "--key3":
			parsed.Key3 = takeValue(&i, "--key3")
		case "--rows":
			parsed.Rows = takeValue(&i, "--rows")
		case "--cols":
			parsed.Cols = takeValue(&i, "--cols")
		default:
			positional = append(positional, arg)
		}
	}
	return positional, parsed
}

// parseCipherArgs fills cipher name and text from positionals:
// "<cipher> <text...>". Multiple text words are joined with spaces so
// quoting is optional.
func parseCipherArgs(parsed *Args, remaining []string) {
	if len(remaining) > 0 {
		parsed.Cipher = strings.ToLower(remaining[0])
	}
	if len(remaining) > 1 {
		parsed.Text = strings.Join(remaining[1:], " ")
	}
}

// parseConfigArgs fills subcommand, key and value for "config".
func parseConfigArgs(parsed *Args, remaining []string) {
	if len(remaining) > 0 {
		parsed.Subcommand = remaining[0]
	}
	if len(remaining) > 1 {
		parsed.ConfigKey = remaining[1]
	}
	if len(remaining) > 2 {
		parsed.ConfigVal = strings.Join(remaining[2:], " ")
	}
}
