// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// checkerboard.go - The checkerboard (two-key coordinate) cipher.
//
// One keyed square plus two auxiliary tables. Each plaintext letter is
// located in the square, then its row and column are each re-encoded as
// a letter drawn from the matching auxiliary table. Both tables offer
// two interchangeable rows and the encryptor picks one at random per
// letter, so a single plaintext letter can encrypt four different ways.
// The choice carries no information: decryption finds the ciphertext
// letter in whichever table row holds it, and the position within the
// row is the coordinate regardless of which row was picked.
package cipher

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/dnafinder/crypto-sub001/internal/alphabet"
	"github.com/dnafinder/crypto-sub001/internal/square"
)

// Checkerboard is the checkerboard cipher: a keyed square with one
// auxiliary table for rows and one for columns.
type Checkerboard struct {
	grid     *square.KeyedSquare
	rowTable *square.AuxTable
	colTable *square.AuxTable
	keys     []KeyEcho
}

// NewCheckerboard validates the key material and builds the protocol.
// rowSpec and colSpec use the "ROW1,ROW2" format; each table must hold
// ten distinct letters (see square.NewAuxTable). Validation happens
// here, before any transform, so a bad table never produces partial
// output.
func NewCheckerboard(keyword, rowSpec, colSpec string) (*Checkerboard, error) {
	rowTable, err := square.ParseAuxTable(rowSpec)
	if err != nil {
		return nil, fmt.Errorf("row table: %w", err)
	}
	colTable, err := square.ParseAuxTable(colSpec)
	if err != nil {
		return nil, fmt.Errorf("column table: %w", err)
	}

	return &Checkerboard{
		grid:     square.New(keyword),
		rowTable: rowTable,
		colTable: colTable,
		keys: []KeyEcho{
			echo("key", keyword),
			{Name: "rows", Raw: rowSpec, Normalized: rowTable.String()},
			{Name: "cols", Raw: colSpec, Normalized: colTable.String()},
		},
	}, nil
}

// Name implements Protocol.
func (cb *Checkerboard) Name() string { return "checkerboard" }

// Transform implements Protocol. Empty-after-normalization text is not
// an error; it transforms to the empty string.
func (cb *Checkerboard) Transform(text string, dir Direction, rng *rand.Rand) (*Result, error) {
	res := &Result{Cipher: cb.Name(), Direction: dir, Keys: cb.keys}

	switch dir {
	case Encrypt:
		res.Plain = alphabet.Normalize(text)
		res.Encrypted = cb.encrypt(res.Plain, rng)
	case Decrypt:
		res.Encrypted = alphabet.Normalize(text)
		plain, err := cb.decrypt(res.Encrypted)
		if err != nil {
			return nil, err
		}
		res.Plain = plain
	default:
		return nil, fmt.Errorf("direction must be %q or %q, got %q", Encrypt, Decrypt, dir)
	}
	return res, nil
}

// encrypt emits two letters per plaintext letter: one from the row
// table, one from the column table. Each letter draws its table row
// independently and uniformly.
func (cb *Checkerboard) encrypt(plain string, rng *rand.Rand) string {
	var b strings.Builder
	b.Grow(len(plain) * 2)
	for i := 0; i < len(plain); i++ {
		coord := cb.grid.Find(plain[i])
		b.WriteByte(cb.rowTable.Letter(rng.Intn(square.AuxRows), coord.Row))
		b.WriteByte(cb.colTable.Letter(rng.Intn(square.AuxRows), coord.Col))
	}
	return b.String()
}

// decrypt reads ciphertext letter pairs and recovers the square
// coordinate from table membership. It is deterministic and total over
// well-formed ciphertext; letters outside the tables mean the text was
// not produced with these keys.
func (cb *Checkerboard) decrypt(encrypted string) (string, error) {
	if len(encrypted)%2 != 0 {
		return "", fmt.Errorf("checkerboard ciphertext must have even length, got %d letters", len(encrypted))
	}

	var b strings.Builder
	b.Grow(len(encrypted) / 2)
	for i := 0; i+1 < len(encrypted); i += 2 {
		row, ok := cb.rowTable.Locate(encrypted[i])
		if !ok {
			return "", fmt.Errorf("ciphertext letter %c at position %d is not in the row table", encrypted[i], i+1)
		}
		col, ok := cb.colTable.Locate(encrypted[i+1])
		if !ok {
			return "", fmt.Errorf("ciphertext letter %c at position %d is not in the column table", encrypted[i+1], i+2)
		}
		b.WriteByte(cb.grid.At(row, col))
	}
	return b.String(), nil
}
