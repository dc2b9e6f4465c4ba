// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cipher implements the keyed-Polybius-square cipher family:
// checkerboard, two-square and three-square.
//
// Every cipher follows the same shape: key material is validated and
// turned into immutable keyed squares up front, text is normalized with
// the shared alphabet rules, and the transform walks the symbol stream
// one unit at a time. Nothing is cached across calls; a protocol value
// is cheap to build and safe to discard.
//
// The checkerboard and three-square ciphers are randomized: encryption
// consumes an injected randomness source and the same plaintext can
// produce different ciphertexts. Decryption never needs the draws - it
// recovers coordinates by table membership, so every random branch
// decrypts to the same plaintext.
//
// These are historical pen-and-paper ciphers. They provide no security
// whatsoever; the design target is exact reproduction of the classical
// algorithms for cryptanalysis exercises.
package cipher

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/dnafinder/crypto-sub001/internal/alphabet"
)

// =============================================================================
// DIRECTION
// =============================================================================

// Direction selects which way a protocol transforms text.
type Direction string

const (
	// Encrypt turns plaintext into ciphertext.
	Encrypt Direction = "encrypt"
	// Decrypt turns ciphertext back into plaintext.
	Decrypt Direction = "decrypt"
)

// ParseDirection validates a direction string. Unknown directions are
// rejected before any transform runs.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Encrypt, Decrypt:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("direction must be %q or %q, got %q", Encrypt, Decrypt, s)
	}
}

// =============================================================================
// RESULT
// =============================================================================

// KeyEcho reports one piece of key material both as the caller supplied
// it and in normalized form.
type KeyEcho struct {
	Name       string `json:"name"`
	Raw        string `json:"raw"`
	Normalized string `json:"normalized"`
}

// Result is the outcome of one transform. Exactly one of Plain or
// Encrypted was supplied by the caller (per Direction); the other was
// computed. Keys echoes the key material used.
type Result struct {
	Cipher    string    `json:"cipher"`
	Direction Direction `json:"direction"`
	Plain     string    `json:"plain"`
	Encrypted string    `json:"encrypted"`
	Keys      []KeyEcho `json:"keys"`
}

// Protocol is the operation every cipher variant exposes: transform one
// text in the given direction. Encrypting consumes draws from rng;
// decrypting ignores it and may receive nil.
type Protocol interface {
	Name() string
	Transform(text string, dir Direction, rng *rand.Rand) (*Result, error)
}

// =============================================================================
// RANDOMNESS
// =============================================================================

// NewRand returns the randomness source consumed by the randomized
// ciphers. Seed 0 means "unpredictable": the generator is seeded from
// the operating system. Any other seed gives a reproducible stream,
// which is what exercise authors want when publishing puzzles.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err == nil {
			seed = int64(binary.LittleEndian.Uint64(b[:]))
		} else {
			seed = 1 // degraded but still functional
		}
	}
	return rand.New(rand.NewSource(seed))
}

// echo builds the KeyEcho for one keyword.
func echo(name, raw string) KeyEcho {
	return KeyEcho{Name: name, Raw: raw, Normalized: alphabet.Normalize(raw)}
}
