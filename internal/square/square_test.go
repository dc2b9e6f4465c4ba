// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package square

import (
	"strings"
	"testing"

	"github.com/dnafinder/crypto-sub001/internal/alphabet"
)

// =============================================================================
// KEYED SQUARE TESTS
// =============================================================================

// assertPermutation fails unless the square holds each alphabet symbol
// exactly once.
func assertPermutation(t *testing.T, sq *KeyedSquare) {
	t.Helper()
	counts := map[byte]int{}
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			counts[sq.At(r, c)]++
		}
	}
	for i := 0; i < alphabet.Size; i++ {
		c := alphabet.Letters[i]
		if counts[c] != 1 {
			t.Errorf("symbol %c appears %d times, want exactly 1", c, counts[c])
		}
	}
}

func TestNew_AlwaysPermutation(t *testing.T) {
	keywords := []string{
		"",
		"A",
		"LEPRACHAUN",
		"ghosts and goblins",
		"MISSISSIPPI",
		"the quick brown fox jumps over the lazy dog",
		"1234!@#$",
		"jjjjjj",
		strings.Repeat("Z", 100),
	}
	for _, kw := range keywords {
		t.Run("kw="+kw, func(t *testing.T) {
			assertPermutation(t, New(kw))
		})
	}
}

func TestNew_EmptyKeywordIsCanonicalGrid(t *testing.T) {
	sq := New("")
	got := strings.Join(sq.Rows(), "")
	if got != alphabet.Letters {
		t.Errorf("empty keyword grid = %q, want %q", got, alphabet.Letters)
	}
}

func TestNew_LeprachaunLayout(t *testing.T) {
	sq := New("LEPRACHAUN")
	got := strings.Join(sq.Rows(), "")
	want := "LEPRACHUN" + "BDFGIKMOQSTVWXYZ"
	if got != want {
		t.Errorf("grid order = %q, want %q", got, want)
	}
}

func TestNew_KeywordWithJSeedsI(t *testing.T) {
	// J folds into I, so "JUMBO" seeds the grid I,U,M,B,O.
	sq := New("JUMBO")
	row := sq.Rows()[0]
	if !strings.HasPrefix(row, "IUMBO") {
		t.Errorf("first row = %q, want prefix IUMBO", row)
	}
}

func TestFind_InverseOfAt(t *testing.T) {
	sq := New("LEPRACHAUN")
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			coord := sq.Find(sq.At(r, c))
			if coord.Row != r || coord.Col != c {
				t.Errorf("Find(At(%d,%d)) = %v", r, c, coord)
			}
		}
	}
}

// =============================================================================
// AUX TABLE TESTS
// =============================================================================

func TestNewAuxTable_Valid(t *testing.T) {
	tbl, err := NewAuxTable("ABCDE", "FGHIK")
	if err != nil {
		t.Fatalf("NewAuxTable failed: %v", err)
	}
	if tbl.Letter(0, 2) != 'C' || tbl.Letter(1, 4) != 'K' {
		t.Errorf("unexpected table contents: %v", tbl.Rows())
	}
}

func TestNewAuxTable_SharedLetterRejected(t *testing.T) {
	if _, err := NewAuxTable("ABCDE", "EFGHI"); err == nil {
		t.Fatal("shared letter E across rows not rejected")
	}
}

func TestNewAuxTable_DuplicateWithinRowRejected(t *testing.T) {
	if _, err := NewAuxTable("AABCD", "EFGHI"); err == nil {
		t.Fatal("duplicate letter within a row not rejected")
	}
}

func TestNewAuxTable_WrongLengthRejected(t *testing.T) {
	if _, err := NewAuxTable("ABCD", "EFGHI"); err == nil {
		t.Fatal("short row not rejected")
	}
	if _, err := NewAuxTable("ABCDEF", "GHIKL"); err == nil {
		t.Fatal("long row not rejected")
	}
}

func TestNewAuxTable_NormalizesRows(t *testing.T) {
	tbl, err := NewAuxTable("a b-c d e", "fghik")
	if err != nil {
		t.Fatalf("NewAuxTable failed: %v", err)
	}
	rows := tbl.Rows()
	if rows[0] != "ABCDE" || rows[1] != "FGHIK" {
		t.Errorf("rows = %v", rows)
	}
}

func TestParseAuxTable(t *testing.T) {
	tbl, err := ParseAuxTable("ABCDE,FGHIK")
	if err != nil {
		t.Fatalf("ParseAuxTable failed: %v", err)
	}
	if tbl.String() != "ABCDE,FGHIK" {
		t.Errorf("String() = %q", tbl.String())
	}

	if _, err := ParseAuxTable("ABCDE"); err == nil {
		t.Fatal("single row spec not rejected")
	}
}

func TestLocate(t *testing.T) {
	tbl, err := NewAuxTable("ABCDE", "FGHIK")
	if err != nil {
		t.Fatalf("NewAuxTable failed: %v", err)
	}
	for want := 0; want < Side; want++ {
		for r := 0; r < AuxRows; r++ {
			v, ok := tbl.Locate(tbl.Letter(r, want))
			if !ok || v != want {
				t.Errorf("Locate(Letter(%d,%d)) = %d,%v", r, want, v, ok)
			}
		}
	}
	if _, ok := tbl.Locate('Z'); ok {
		t.Error("Locate('Z') = true for a letter outside the table")
	}
}
