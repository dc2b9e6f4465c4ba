// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// threesquare.go - The three-square (triple Playfair) cipher.
//
// Three keyed squares turn each plaintext digram into a ciphertext
// trigram. For a digram (a,b) with a at (r1,c1) in square A and b at
// (r2,c2) in square B:
//
//	t1 = A[randomRow, c1]   column encodes c1, row is noise
//	t2 = C[r1, c2]          the deterministic cross-term
//	t3 = B[r2, randomCol]   row encodes r2, column is noise
//
// The outer letters each randomize one coordinate for diffusion, the
// same trick the checkerboard plays with its paired table rows. The
// historical description of the decrypt direction is inconsistent (it
// references an undefined square), so the inverse here is derived
// directly from the construction above: t2 located in C yields r1 and
// c2, the column of t1 in A yields c1, the row of t3 in B yields r2,
// and the digram is (A[r1,c1], B[r2,c2]). Round-trip tests cover every
// digram and every random draw.
package cipher

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/dnafinder/crypto-sub001/internal/alphabet"
	"github.com/dnafinder/crypto-sub001/internal/square"
)

// trigramLen is the ciphertext unit length: one digram becomes three
// letters, so ciphertext is 1.5x the padded plaintext length.
const trigramLen = 3

// ThreeSquare is the three-square cipher over three independent keyed
// squares.
type ThreeSquare struct {
	sqA  *square.KeyedSquare
	sqB  *square.KeyedSquare
	sqC  *square.KeyedSquare
	keys []KeyEcho
}

// NewThreeSquare builds the protocol from three keywords.
func NewThreeSquare(key1, key2, key3 string) *ThreeSquare {
	return &ThreeSquare{
		sqA:  square.New(key1),
		sqB:  square.New(key2),
		sqC:  square.New(key3),
		keys: []KeyEcho{echo("key1", key1), echo("key2", key2), echo("key3", key3)},
	}
}

// Name implements Protocol.
func (ts *ThreeSquare) Name() string { return "threesquare" }

// Transform implements Protocol.
func (ts *ThreeSquare) Transform(text string, dir Direction, rng *rand.Rand) (*Result, error) {
	res := &Result{Cipher: ts.Name(), Direction: dir, Keys: ts.keys}

	switch dir {
	case Encrypt:
		res.Plain = alphabet.Normalize(text)
		res.Encrypted = ts.encrypt(alphabet.Digraphs(res.Plain), rng)
	case Decrypt:
		res.Encrypted = alphabet.Normalize(text)
		if len(res.Encrypted)%trigramLen != 0 {
			return nil, fmt.Errorf("three-square ciphertext length must be a multiple of %d, got %d letters",
				trigramLen, len(res.Encrypted))
		}
		res.Plain = alphabet.TrimPad(ts.decrypt(res.Encrypted))
	default:
		return nil, fmt.Errorf("direction must be %q or %q, got %q", Encrypt, Decrypt, dir)
	}
	return res, nil
}

// encrypt emits one trigram per digram, drawing one random row and one
// random column per unit.
func (ts *ThreeSquare) encrypt(pairs []alphabet.Digraph, rng *rand.Rand) string {
	var b strings.Builder
	b.Grow(len(pairs) * trigramLen)
	for _, d := range pairs {
		p1 := ts.sqA.Find(d.A)
		p2 := ts.sqB.Find(d.B)
		b.WriteByte(ts.sqA.At(rng.Intn(square.Side), p1.Col))
		b.WriteByte(ts.sqC.At(p1.Row, p2.Col))
		b.WriteByte(ts.sqB.At(p2.Row, rng.Intn(square.Side)))
	}
	return b.String()
}

// decrypt inverts each trigram. The middle letter carries (r1,c2)
// through square C; the outer letters contribute only their invariant
// coordinate, so any random draw decrypts identically.
func (ts *ThreeSquare) decrypt(encrypted string) string {
	var b strings.Builder
	b.Grow(len(encrypted) / trigramLen * 2)
	for i := 0; i+2 < len(encrypted); i += trigramLen {
		cross := ts.sqC.Find(encrypted[i+1])
		c1 := ts.sqA.Find(encrypted[i]).Col
		r2 := ts.sqB.Find(encrypted[i+2]).Row
		b.WriteByte(ts.sqA.At(cross.Row, c1))
		b.WriteByte(ts.sqB.At(r2, cross.Col))
	}
	return b.String()
}
