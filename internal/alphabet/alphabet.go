// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package alphabet provides the 25-letter cipher alphabet and the text
// normalization rules shared by every cipher in the toolkit.
//
// All ciphers here operate on the classical Polybius alphabet: the 26
// English letters with J folded into I, giving exactly 25 symbols that
// fit a 5x5 grid. Normalization is identical across ciphers so that
// encrypt and decrypt paths always agree on the symbol stream.
package alphabet

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// ALPHABET CONSTANTS
// =============================================================================

// Letters is the 25-symbol cipher alphabet in ascending order.
// J is absent: it is folded into I before any processing.
const Letters = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

// Size is the number of symbols in the cipher alphabet.
const Size = len(Letters)

// Pad is the letter appended to odd-length text before digraph splitting.
const Pad = 'X'

// Contains reports whether c is one of the 25 alphabet symbols.
func Contains(c byte) bool {
	return c >= 'A' && c <= 'Z' && c != 'J'
}

// Index returns the 0-based position of c in the ascending alphabet.
// Calling Index with a symbol outside the alphabet is an internal
// invariant violation: inputs must be normalized first.
func Index(c byte) int {
	if !Contains(c) {
		panic("alphabet: symbol outside 25-letter alphabet: " + string(c))
	}
	if c > 'J' {
		return int(c-'A') - 1
	}
	return int(c - 'A')
}

// =============================================================================
// NORMALIZATION
// =============================================================================

// diacriticStripper decomposes Unicode text and removes combining marks,
// so accented letters survive normalization as their base letter (E for E-acute)
// instead of being dropped.
var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize reduces arbitrary text to the cipher symbol stream:
// diacritics stripped, non-letters removed, uppercased, J folded into I.
//
// Normalize is total and never fails; text that contains no letters
// normalizes to the empty string.
func Normalize(text string) string {
	stripped, _, err := transform.String(diacriticStripper, text)
	if err != nil {
		// Malformed UTF-8 still normalizes: fall back to the raw input
		// and let the letter filter below discard the bad bytes.
		stripped = text
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range strings.ToUpper(stripped) {
		if r < 'A' || r > 'Z' {
			continue
		}
		if r == 'J' {
			r = 'I'
		}
		b.WriteRune(r)
	}
	return b.String()
}
