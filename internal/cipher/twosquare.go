// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// twosquare.go - The two-square (double Playfair) cipher.
//
// Two keyed squares, one substitution rule, no inverse rule. Each
// digram (a,b) locates a in the first square and b in the second; when
// the rows differ the letters at the opposite rectangle corners are
// emitted, and when the rows match the digram is simply reversed.
// Decryption reuses the identical rule with the square seeding swapped,
// which undoes the substitution exactly.
package cipher

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/dnafinder/crypto-sub001/internal/alphabet"
	"github.com/dnafinder/crypto-sub001/internal/square"
)

// TwoSquare is the two-square cipher over two independent keyed squares.
type TwoSquare struct {
	sq1  *square.KeyedSquare // seeded by key1
	sq2  *square.KeyedSquare // seeded by key2
	keys []KeyEcho
}

// NewTwoSquare builds the protocol. Square construction is total, so
// any pair of keywords (including empty ones) is valid key material.
func NewTwoSquare(key1, key2 string) *TwoSquare {
	return &TwoSquare{
		sq1:  square.New(key1),
		sq2:  square.New(key2),
		keys: []KeyEcho{echo("key1", key1), echo("key2", key2)},
	}
}

// Name implements Protocol.
func (ts *TwoSquare) Name() string { return "twosquare" }

// Transform implements Protocol. The cipher is deterministic; rng is
// accepted for interface symmetry and never consumed.
func (ts *TwoSquare) Transform(text string, dir Direction, rng *rand.Rand) (*Result, error) {
	res := &Result{Cipher: ts.Name(), Direction: dir, Keys: ts.keys}

	switch dir {
	case Encrypt:
		res.Plain = alphabet.Normalize(text)
		res.Encrypted = substitute(alphabet.Digraphs(res.Plain), ts.sq1, ts.sq2)
	case Decrypt:
		res.Encrypted = alphabet.Normalize(text)
		if len(res.Encrypted)%2 != 0 {
			return nil, fmt.Errorf("two-square ciphertext must have even length, got %d letters", len(res.Encrypted))
		}
		// Same rule, squares swapped.
		plain := substitute(alphabet.Digraphs(res.Encrypted), ts.sq2, ts.sq1)
		res.Plain = alphabet.TrimPad(plain)
	default:
		return nil, fmt.Errorf("direction must be %q or %q, got %q", Encrypt, Decrypt, dir)
	}
	return res, nil
}

// substitute applies the two-square rule to each digram with a at
// gridA and b at gridB. The equal-row check comes first: digrams on the
// same row swap and never take the rectangle form.
func substitute(pairs []alphabet.Digraph, gridA, gridB *square.KeyedSquare) string {
	var b strings.Builder
	b.Grow(len(pairs) * 2)
	for _, d := range pairs {
		p1 := gridA.Find(d.A)
		p2 := gridB.Find(d.B)
		if p1.Row == p2.Row {
			b.WriteByte(d.B)
			b.WriteByte(d.A)
			continue
		}
		b.WriteByte(gridB.At(p1.Row, p2.Col))
		b.WriteByte(gridA.At(p2.Row, p1.Col))
	}
	return b.String()
}
