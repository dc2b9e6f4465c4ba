// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// auxtable.go - Auxiliary key tables for the checkerboard cipher.
//
// An auxiliary table holds two rows of five letters. During encryption
// one of the two rows is chosen at random and indexed by a grid
// coordinate; during decryption the coordinate is recovered by finding
// which row contains the ciphertext letter and at which position. That
// recovery is only unambiguous when no letter appears twice anywhere in
// the table, so construction enforces exactly that.
package square

import (
	"fmt"
	"strings"

	"github.com/dnafinder/crypto-sub001/internal/alphabet"
)

// AuxRows is the number of selectable rows in an auxiliary table.
const AuxRows = 2

// AuxTable maps a 0-based grid coordinate (0..4) to one of two letters,
// and a letter back to its coordinate.
type AuxTable struct {
	rows [AuxRows][Side]byte
}

// NewAuxTable builds an auxiliary table from two key rows. Each row must
// normalize to exactly five letters, and the ten letters must be
// pairwise distinct; otherwise decryption could not recover coordinates
// and the table is rejected before any transform runs.
func NewAuxTable(row1, row2 string) (*AuxTable, error) {
	var t AuxTable
	seen := map[byte]int{}

	for i, raw := range []string{row1, row2} {
		key := alphabet.Normalize(raw)
		if len(key) != Side {
			return nil, fmt.Errorf("key table row %d must contain exactly %d letters, got %q (%d letters)",
				i+1, Side, raw, len(key))
		}
		for j := 0; j < Side; j++ {
			c := key[j]
			if prev, dup := seen[c]; dup {
				return nil, fmt.Errorf("key table rows must not share letters: %c appears in row %d and row %d",
					c, prev+1, i+1)
			}
			seen[c] = i
			t.rows[i][j] = c
		}
	}
	return &t, nil
}

// ParseAuxTable builds an auxiliary table from a single "ROW1,ROW2"
// specification, the format used by CLI flags and the config file.
func ParseAuxTable(spec string) (*AuxTable, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != AuxRows {
		return nil, fmt.Errorf("key table must be two comma-separated rows, got %q", spec)
	}
	return NewAuxTable(parts[0], parts[1])
}

// Letter returns the letter for coordinate v (0..4) in the chosen row
// (0 or 1). Both selectors are caller-validated by construction: row is
// a random draw in [0,AuxRows) and v is a grid coordinate.
func (t *AuxTable) Letter(row, v int) byte {
	return t.rows[row][v]
}

// Locate returns the coordinate encoded by letter c, searching both
// rows. The second return is false when c appears nowhere in the table,
// which means the ciphertext does not belong to this key table.
func (t *AuxTable) Locate(c byte) (int, bool) {
	for r := 0; r < AuxRows; r++ {
		for v := 0; v < Side; v++ {
			if t.rows[r][v] == c {
				return v, true
			}
		}
	}
	return 0, false
}

// Rows returns the two table rows as strings, for key echo.
func (t *AuxTable) Rows() []string {
	return []string{string(t.rows[0][:]), string(t.rows[1][:])}
}

// String renders the table in the "ROW1,ROW2" flag format.
func (t *AuxTable) String() string {
	return string(t.rows[0][:]) + "," + string(t.rows[1][:])
}
