// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"path/filepath"
	"testing"

	"github.com/dnafinder/crypto-sub001/internal/cipher"
)

// openTestStore opens a store in a temp directory, closed at test end.
func openTestStore(t *testing.T, limit int) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"), limit)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult(plain string) *cipher.Result {
	return &cipher.Result{
		Cipher:    "twosquare",
		Direction: cipher.Encrypt,
		Plain:     plain,
		Encrypted: "AFEDPAGEUHIDLRUEDFRTOFURAQOX",
		Keys: []cipher.KeyEcho{
			{Name: "key1", Raw: "leprachaun", Normalized: "LEPRACHAUN"},
			{Name: "key2", Raw: "ghosts and goblins", Normalized: "GHOSTSANDGOBLINS"},
		},
	}
}

// =============================================================================
// ADD / GET / LIST
// =============================================================================

func TestStore_AddAndGet(t *testing.T) {
	s := openTestStore(t, 0)

	rec, err := s.Add(sampleResult("HIDETHEGOLDINTOTHETREESTUMP"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("record has no id")
	}

	got, err := s.Get(rec.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Plain != rec.Plain || got.Encrypted != rec.Encrypted {
		t.Errorf("record mismatch: got %+v", got)
	}
	if len(got.Keys) != 2 || got.Keys[0].Raw != "leprachaun" {
		t.Errorf("key echo not preserved: %+v", got.Keys)
	}
}

func TestStore_GetByPrefix(t *testing.T) {
	s := openTestStore(t, 0)

	rec, err := s.Add(sampleResult("ONE"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := s.Get(rec.ID[:8])
	if err != nil {
		t.Fatalf("Get by prefix failed: %v", err)
	}
	if got.ID != rec.ID {
		t.Errorf("Get by prefix returned %s, want %s", got.ID, rec.ID)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := openTestStore(t, 0)
	if _, err := s.Get("no-such-id"); err == nil {
		t.Fatal("missing record did not error")
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := openTestStore(t, 0)

	for _, plain := range []string{"FIRST", "SECOND", "THIRD"} {
		if _, err := s.Add(sampleResult(plain)); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	records, err := s.List(0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Plain != "THIRD" {
		t.Errorf("newest record is %q, want THIRD", records[0].Plain)
	}

	limited, err := s.List(2)
	if err != nil {
		t.Fatalf("List(2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("List(2) returned %d records", len(limited))
	}
}

// =============================================================================
// PRUNING AND CLEAR
// =============================================================================

func TestStore_PrunesToLimit(t *testing.T) {
	s := openTestStore(t, 3)

	for _, plain := range []string{"A", "B", "C", "D", "E"} {
		if _, err := s.Add(sampleResult(plain)); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 3 {
		t.Errorf("store holds %d records, want 3", n)
	}

	records, err := s.List(0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if records[0].Plain != "E" {
		t.Errorf("newest surviving record is %q, want E", records[0].Plain)
	}
}

func TestStore_Clear(t *testing.T) {
	s := openTestStore(t, 0)

	if _, err := s.Add(sampleResult("A")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	removed, err := s.Clear()
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Clear removed %d, want 1", removed)
	}
	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("store holds %d records after clear", n)
	}
}
