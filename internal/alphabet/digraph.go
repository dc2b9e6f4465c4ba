// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// digraph.go - Digraph splitting and pad removal for the digraphic ciphers.
package alphabet

import "strings"

// Digraph is an ordered pair of alphabet symbols treated as one
// substitution unit.
type Digraph struct {
	A byte
	B byte
}

// Digraphs splits normalized text into consecutive pairs. If the text
// length is odd, a trailing pad letter ('X') completes the final pair.
//
// The input must already be normalized; Digraphs does not filter.
func Digraphs(text string) []Digraph {
	if len(text)%2 != 0 {
		text += string(rune(Pad))
	}
	pairs := make([]Digraph, 0, len(text)/2)
	for i := 0; i+1 < len(text); i += 2 {
		pairs = append(pairs, Digraph{A: text[i], B: text[i+1]})
	}
	return pairs
}

// vowels are the letters that veto pad removal: a trailing 'X' after a
// vowel (or Y) is assumed to be genuine plaintext rather than padding.
const vowels = "AEIOUY"

// TrimPad removes a trailing pad letter from decrypted text.
//
// The rule is the historical heuristic, preserved exactly: drop the final
// 'X' when the preceding letter is not a vowel (A, E, I, O, U, Y). It is
// lossy in both directions. A genuine trailing 'X' after a consonant is
// wrongly stripped ("BOX" survives, "LYNX" does not), and a pad 'X'
// that happens to follow a vowel is retained. Do not try to repair this:
// compatibility with the historical behavior is the contract.
func TrimPad(text string) string {
	n := len(text)
	if n < 2 || text[n-1] != Pad {
		return text
	}
	if strings.IndexByte(vowels, text[n-2]) >= 0 {
		return text
	}
	return text[:n-1]
}
