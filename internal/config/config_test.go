// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// =============================================================================
// DEFAULTS AND VALIDATION
// =============================================================================

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
}

func TestValidate_BadColor(t *testing.T) {
	cfg := Default()
	cfg.Output.Color = "rainbow"
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid color mode not rejected")
	}
}

func TestValidate_NegativeHistoryLimit(t *testing.T) {
	cfg := Default()
	cfg.History.Limit = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative history limit not rejected")
	}
}

func TestValidate_BrokenAuxTable(t *testing.T) {
	cfg := Default()
	cfg.Keys.CheckerboardRows = "ABCDE,ABCDE"
	if err := cfg.Validate(); err == nil {
		t.Fatal("aux table with shared letters not rejected at load time")
	}
}

// =============================================================================
// FILE ROUND TRIP
// =============================================================================

func TestSaveTOML_LoadTOML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	want := Default()
	want.Keys.TwoSquareKey1 = "leprachaun"
	want.Keys.TwoSquareKey2 = "ghosts and goblins"
	want.Random.Seed = 42
	want.History.Enabled = false

	if err := SaveTOML(want, path); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	got := Default()
	if err := LoadTOML(got, path); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if got.Keys.TwoSquareKey1 != "leprachaun" || got.Keys.TwoSquareKey2 != "ghosts and goblins" {
		t.Errorf("keys not preserved: %+v", got.Keys)
	}
	if got.Random.Seed != 42 {
		t.Errorf("seed = %d, want 42", got.Random.Seed)
	}
	if got.History.Enabled {
		t.Error("history.enabled not preserved")
	}
}

func TestSaveTOML_WritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveTOML(Default(), path); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "# polysq configuration file") {
		t.Errorf("missing header comment: %q", string(data)[:40])
	}
}

func TestLoadFromPath_UnsupportedExtension(t *testing.T) {
	if _, err := LoadFromPath("config.yaml"); err == nil {
		t.Fatal("unsupported extension not rejected")
	}
}

// =============================================================================
// ENV OVERRIDES
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("POLYSQ_SEED", "1234")
	t.Setenv("POLYSQ_COLOR", "never")
	t.Setenv("POLYSQ_HISTORY", "false")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Random.Seed != 1234 {
		t.Errorf("seed = %d, want 1234", cfg.Random.Seed)
	}
	if cfg.Output.Color != "never" {
		t.Errorf("color = %q, want never", cfg.Output.Color)
	}
	if cfg.History.Enabled {
		t.Error("history override not applied")
	}
}

func TestApplyEnvOverrides_IgnoresGarbage(t *testing.T) {
	t.Setenv("POLYSQ_SEED", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if cfg.Random.Seed != 0 {
		t.Errorf("garbage seed should be ignored, got %d", cfg.Random.Seed)
	}
}

// =============================================================================
// KEY ACCESS
// =============================================================================

func TestGetSet_RoundTrip(t *testing.T) {
	cfg := Default()
	if err := cfg.Set("keys.twosquare_key1", "zebra"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := cfg.Get("keys.twosquare_key1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "zebra" {
		t.Errorf("Get = %q, want zebra", got)
	}
}

func TestSet_ValidatesValues(t *testing.T) {
	cfg := Default()
	if err := cfg.Set("keys.checkerboard_rows", "ABCDE,ABCDE"); err == nil {
		t.Error("aux table with shared letters accepted")
	}
	if err := cfg.Set("random.seed", "abc"); err == nil {
		t.Error("non-numeric seed accepted")
	}
	if err := cfg.Set("output.color", "sometimes"); err == nil {
		t.Error("bad color mode accepted")
	}
	if err := cfg.Set("no.such.key", "x"); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestGetAllKeys_SortedAndComplete(t *testing.T) {
	keys := GetAllKeys()
	if len(keys) != len(configKeys) {
		t.Fatalf("GetAllKeys returned %d keys, want %d", len(keys), len(configKeys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

func TestConfig_ConcurrentGlobalAccess(t *testing.T) {
	ResetGlobalForTesting()
	SetGlobal(Default())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
	ResetGlobalForTesting()
}
