// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package alphabet

import "testing"

// =============================================================================
// ALPHABET TESTS
// =============================================================================

func TestLetters_TwentyFiveSymbols(t *testing.T) {
	if Size != 25 {
		t.Fatalf("alphabet size = %d, want 25", Size)
	}
	seen := map[byte]bool{}
	for i := 0; i < len(Letters); i++ {
		c := Letters[i]
		if c == 'J' {
			t.Errorf("alphabet must not contain J")
		}
		if seen[c] {
			t.Errorf("duplicate symbol %c", c)
		}
		seen[c] = true
	}
}

func TestIndex_RoundTrip(t *testing.T) {
	for i := 0; i < len(Letters); i++ {
		c := Letters[i]
		if got := Index(c); got != i {
			t.Errorf("Index(%c) = %d, want %d", c, got, i)
		}
	}
}

func TestIndex_PanicsOutsideAlphabet(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Index('J') did not panic")
		}
	}()
	Index('J')
}

// =============================================================================
// NORMALIZATION TESTS
// =============================================================================

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "hello", "HELLO"},
		{"fold j", "Jazz Jam", "IAZZIAM"},
		{"strip punctuation", "attack at dawn!", "ATTACKATDAWN"},
		{"strip digits", "agent 007", "AGENT"},
		{"empty", "", ""},
		{"no letters", "1234 %$#", ""},
		{"diacritics", "café Señor", "CAFESENOR"},
		{"mixed", "Hide the gold, in the tree stump.", "HIDETHEGOLDINTHETREESTUMP"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// =============================================================================
// DIGRAPH TESTS
// =============================================================================

func TestDigraphs_EvenLength(t *testing.T) {
	pairs := Digraphs("ABCD")
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
	if pairs[0] != (Digraph{'A', 'B'}) || pairs[1] != (Digraph{'C', 'D'}) {
		t.Errorf("pairs = %v", pairs)
	}
}

func TestDigraphs_OddLengthPads(t *testing.T) {
	pairs := Digraphs("ABC")
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
	if pairs[1] != (Digraph{'C', 'X'}) {
		t.Errorf("final pair = %v, want {C X}", pairs[1])
	}
}

func TestDigraphs_Empty(t *testing.T) {
	if pairs := Digraphs(""); len(pairs) != 0 {
		t.Errorf("Digraphs(\"\") = %v, want empty", pairs)
	}
}

func TestTrimPad(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"pad after consonant dropped", "STUMPX", "STUMP"},
		{"x after vowel kept", "BOX", "BOX"},
		{"genuine x after consonant lost", "LYNX", "LYN"},
		{"no trailing x", "DAWN", "DAWN"},
		{"double x trims once", "XX", "X"},
		{"single x kept", "X", "X"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimPad(tt.in); got != tt.want {
				t.Errorf("TrimPad(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
