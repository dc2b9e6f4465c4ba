// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package square builds keyed Polybius squares and their coordinate
// indexes.
//
// A keyed square is a 5x5 grid holding a permutation of the 25-letter
// cipher alphabet, seeded by a keyword: the keyword's letters first
// (deduplicated, first occurrence wins), then the unused alphabet
// letters in ascending order. Every square carries a precomputed
// symbol-to-coordinate index so ciphers never scan the grid.
package square

import (
	"strings"

	"github.com/dnafinder/crypto-sub001/internal/alphabet"
)

// Side is the edge length of a Polybius square.
const Side = 5

// Coordinate addresses one cell of a specific square. Row and Col are
// 0-based; a Coordinate is meaningful only for the square that produced it.
type Coordinate struct {
	Row int
	Col int
}

// KeyedSquare is an immutable 5x5 permutation grid with O(1) lookup in
// both directions. Build one with New; the zero value is not usable.
type KeyedSquare struct {
	cells [Side][Side]byte
	index [alphabet.Size]Coordinate
}

// New builds the keyed square for the given keyword. Construction is
// total: any string (including the empty string) yields a valid square.
// An empty-after-normalization keyword produces the canonical
// ascending-alphabet grid.
func New(keyword string) *KeyedSquare {
	var sq KeyedSquare

	order := keyOrder(keyword)
	for i := 0; i < alphabet.Size; i++ {
		c := order[i]
		coord := Coordinate{Row: i / Side, Col: i % Side}
		sq.cells[coord.Row][coord.Col] = c
		sq.index[alphabet.Index(c)] = coord
	}
	return &sq
}

// keyOrder returns the 25-letter fill order for a keyword: deduplicated
// keyword letters, then the remaining alphabet ascending.
func keyOrder(keyword string) []byte {
	key := alphabet.Normalize(keyword)

	order := make([]byte, 0, alphabet.Size)
	var used [alphabet.Size]bool
	for i := 0; i < len(key); i++ {
		c := key[i]
		if idx := alphabet.Index(c); !used[idx] {
			used[idx] = true
			order = append(order, c)
		}
	}
	for i := 0; i < alphabet.Size; i++ {
		if !used[i] {
			order = append(order, alphabet.Letters[i])
		}
	}
	return order
}

// At returns the symbol at the given cell.
func (sq *KeyedSquare) At(row, col int) byte {
	return sq.cells[row][col]
}

// Find returns the coordinate of symbol c. The symbol must belong to the
// cipher alphabet; anything else is an internal invariant violation
// because all inputs are normalized before lookup.
func (sq *KeyedSquare) Find(c byte) Coordinate {
	return sq.index[alphabet.Index(c)]
}

// Rows returns the grid rows as strings, top to bottom. Used for display
// and key echo; the square itself stays immutable.
func (sq *KeyedSquare) Rows() []string {
	rows := make([]string, Side)
	for r := 0; r < Side; r++ {
		rows[r] = string(sq.cells[r][:])
	}
	return rows
}

// String renders the square as five space-separated rows.
func (sq *KeyedSquare) String() string {
	var b strings.Builder
	for r := 0; r < Side; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < Side; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(sq.cells[r][c])
		}
	}
	return b.String()
}
