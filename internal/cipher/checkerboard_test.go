// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cipher

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dnafinder/crypto-sub001/internal/alphabet"
)

// testCheckerboard builds a checkerboard with known-good key material.
func testCheckerboard(t *testing.T) *Checkerboard {
	t.Helper()
	cb, err := NewCheckerboard("LEPRACHAUN", "ABCDE,FGHIK", "LMNOP,QRSTU")
	require.NoError(t, err)
	return cb
}

// =============================================================================
// KEY VALIDATION TESTS
// =============================================================================

// TestCheckerboard_SharedLetterRejected tests that a table whose two rows
// share a letter is rejected before any encryption proceeds.
func TestCheckerboard_SharedLetterRejected(t *testing.T) {
	_, err := NewCheckerboard("key", "ABCDE,AFGHI", "LMNOP,QRSTU")
	require.Error(t, err, "row table sharing letter A across rows must be rejected")

	_, err = NewCheckerboard("key", "ABCDE,FGHIK", "LMNOP,PQRST")
	require.Error(t, err, "column table sharing letter P across rows must be rejected")
}

func TestCheckerboard_MalformedTableRejected(t *testing.T) {
	_, err := NewCheckerboard("key", "ABCDE", "LMNOP,QRSTU")
	require.Error(t, err, "single-row table must be rejected")

	_, err = NewCheckerboard("key", "ABCD,EFGHI", "LMNOP,QRSTU")
	require.Error(t, err, "four-letter row must be rejected")
}

func TestCheckerboard_BadDirectionRejected(t *testing.T) {
	cb := testCheckerboard(t)
	_, err := cb.Transform("HELLO", Direction("rot13"), rand.New(rand.NewSource(1)))
	require.Error(t, err)
}

// =============================================================================
// ROUND-TRIP TESTS
// =============================================================================

// TestCheckerboard_RoundTripEverySymbolEveryDraw encrypts each alphabet
// symbol under every possible pair of random row picks and verifies that
// all four ciphertext variants decrypt to the original symbol.
func TestCheckerboard_RoundTripEverySymbolEveryDraw(t *testing.T) {
	cb := testCheckerboard(t)

	for i := 0; i < alphabet.Size; i++ {
		s := string(alphabet.Letters[i])
		variants := map[string]bool{}

		// Drive the rng through enough seeds to hit all four row-pick
		// combinations; 64 seeds is far more than enough for 2x2 draws.
		for seed := int64(1); seed <= 64; seed++ {
			enc, err := cb.Transform(s, Encrypt, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)
			require.Len(t, enc.Encrypted, 2, "one symbol encrypts to one letter pair")
			variants[enc.Encrypted] = true

			dec, err := cb.Transform(enc.Encrypted, Decrypt, nil)
			require.NoError(t, err)
			require.Equal(t, s, dec.Plain, "decrypt(encrypt(%s)) with seed %d", s, seed)
		}

		// Two independent binary draws give at most four distinct pairs.
		require.LessOrEqual(t, len(variants), 4)
		require.GreaterOrEqual(t, len(variants), 2, "randomization should produce multiple ciphertexts for %s", s)
	}
}

func TestCheckerboard_EncryptionIsNondeterministic(t *testing.T) {
	cb := testCheckerboard(t)
	plain := "THEQUICKBROWNFOXIUMPSOVERTHELAZYDOG"

	seen := map[string]bool{}
	for seed := int64(1); seed <= 10; seed++ {
		res, err := cb.Transform(plain, Encrypt, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		seen[res.Encrypted] = true

		dec, err := cb.Transform(res.Encrypted, Decrypt, nil)
		require.NoError(t, err)
		require.Equal(t, plain, dec.Plain)
	}
	require.Greater(t, len(seen), 1, "ten seeds should not all produce the same ciphertext")
}

func TestCheckerboard_OutputLengthDoubles(t *testing.T) {
	cb := testCheckerboard(t)
	res, err := cb.Transform("Attack at dawn", Encrypt, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Equal(t, "ATTACKATDAWN", res.Plain)
	require.Len(t, res.Encrypted, 2*len(res.Plain))
}

// =============================================================================
// EDGE CASES
// =============================================================================

func TestCheckerboard_EmptyTextIsNotAnError(t *testing.T) {
	cb := testCheckerboard(t)

	res, err := cb.Transform("42 + 17 = 59 !?", Encrypt, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Empty(t, res.Plain)
	require.Empty(t, res.Encrypted)

	res, err = cb.Transform("", Decrypt, nil)
	require.NoError(t, err)
	require.Empty(t, res.Plain)
}

func TestCheckerboard_DecryptRejectsOddLength(t *testing.T) {
	cb := testCheckerboard(t)
	_, err := cb.Transform("ABC", Decrypt, nil)
	require.Error(t, err)
}

func TestCheckerboard_DecryptRejectsForeignLetters(t *testing.T) {
	cb := testCheckerboard(t)
	// Z appears in neither auxiliary table of testCheckerboard.
	_, err := cb.Transform("ZZ", Decrypt, nil)
	require.Error(t, err)
}

func TestCheckerboard_KeyEcho(t *testing.T) {
	cb, err := NewCheckerboard("lep rachaun!", "abcde,fghik", "LMNOP,QRSTU")
	require.NoError(t, err)

	res, err := cb.Transform("HI", Encrypt, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, res.Keys, 3)
	require.Equal(t, "lep rachaun!", res.Keys[0].Raw)
	require.Equal(t, "LEPRACHAUN", res.Keys[0].Normalized)
	require.Equal(t, "ABCDE,FGHIK", res.Keys[1].Normalized)
}
