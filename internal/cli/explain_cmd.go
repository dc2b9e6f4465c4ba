// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// explain_cmd.go - Cipher reference cards for polysq.
//
// Command: explain [cipher]
// Aliases: reference, ref
//
// Examples:
//   polysq explain                    Overview of all ciphers
//   polysq explain twosquare          Two-square reference card
//
// The cards are rendered as markdown through glamour when stdout is a
// terminal, and printed raw otherwise so they stay pipeable.
package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// referenceCards holds the markdown reference text per cipher.
var referenceCards = map[string]string{
	"checkerboard": `# Checkerboard cipher

One keyed 5x5 Polybius square plus two key tables of two five-letter
rows each (a row table and a column table).

**Encrypt.** Locate the plaintext letter in the square. Its row picks a
position in the row table, its column a position in the column table.
For each, flip a coin to choose which of the two table rows supplies
the output letter. Every plaintext letter becomes two ciphertext
letters, and can encrypt four different ways.

**Decrypt.** Find the first ciphertext letter in the row table: its
position is the row. The second letter's position in the column table
is the column. Read the square. The coin flips never matter.

**Keys.** The two rows of one table must not share letters, or the
positions could not be recovered. Tables are rejected otherwise.
`,

	"twosquare": `# Two-square cipher

Two keyed 5x5 squares. Text is split into digraphs, padded with a
trailing X when the length is odd.

**Rule.** Locate the first letter in square one, the second in square
two. If the letters sit on the *same row*, the digraph is simply
reversed. Otherwise take the rectangle corners: the letter in square
two at (row of first, column of second), then the letter in square one
at (row of second, column of first).

**Decrypt.** The identical rule with the squares swapped undoes the
substitution. A trailing X after a consonant is assumed to be padding
and removed; this heuristic can guess wrong and that is part of the
cipher's historical behavior.
`,

	"threesquare": `# Three-square cipher

Three keyed 5x5 squares. Each digraph becomes a trigram, so ciphertext
is half again as long as the (padded) plaintext.

**Encrypt.** With the first letter at (r1,c1) in square A and the
second at (r2,c2) in square B, emit:

1. square A at a *random row*, column c1
2. square C at row r1, column c2
3. square B at row r2, a *random column*

**Decrypt.** The middle letter, located in square C, yields r1 and c2.
The first letter's column in square A is c1; the third letter's row in
square B is r2. Read square A at (r1,c1) and square B at (r2,c2). The
random draws cancel out.
`,
}

// overviewCard introduces the toolkit when no cipher is named.
const overviewCard = `# polysq cipher reference

Three ciphers share the keyed Polybius square: a 5x5 grid seeded by a
keyword (deduplicated keyword letters first, then the rest of the
alphabet in order, J folded into I).

| Cipher | Unit | Output | Randomized |
|---|---|---|---|
| checkerboard | letter | 2 letters | yes |
| twosquare | digraph | 2 letters | no |
| threesquare | digraph | 3 letters | yes |

Run ` + "`polysq explain <cipher>`" + ` for the substitution rules.

These are pen-and-paper exercises from classical cryptanalysis; none
of them provide real security.
`

// HandleExplain handles the "polysq explain" CLI command.
func HandleExplain(args Args) error {
	card := overviewCard
	if args.Cipher != "" {
		var ok bool
		card, ok = referenceCards[args.Cipher]
		if !ok {
			return &NotFoundError{Resource: "cipher", ID: args.Cipher}
		}
	}

	if args.JSON {
		return NewJSONResponse("explain", map[string]string{
			"cipher":   args.Cipher,
			"markdown": card,
		}).Print()
	}

	fmt.Print(renderMarkdown(card))
	return nil
}

// renderMarkdown renders markdown for the terminal, falling back to
// the raw text when rendering is unavailable (piped output, render
// failure).
func renderMarkdown(md string) string {
	if !IsStdoutTTY() {
		return md
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetTerminalWidth()),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
