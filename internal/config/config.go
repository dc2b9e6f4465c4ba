// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for polysq.
//
// Supports both TOML and JSON configuration formats, with sensible
// defaults, environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.polysq/config.toml
//   - ~/.polysq/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/dnafinder/crypto-sub001/internal/square"
	"github.com/dnafinder/crypto-sub001/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete polysq configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Keys holds default key material per cipher, used when the CLI
	// flags are absent.
	Keys KeysConfig `toml:"keys" json:"keys"`

	// Random controls the randomness source for the randomized ciphers.
	Random RandomConfig `toml:"random" json:"random"`

	// Output controls terminal rendering.
	Output OutputConfig `toml:"output" json:"output"`

	// History controls the transform history store.
	History HistoryConfig `toml:"history" json:"history"`
}

// KeysConfig contains default key material. All fields are optional;
// an empty keyword simply seeds the canonical alphabet square.
type KeysConfig struct {
	// Checkerboard key material: one keyword and two "ROW1,ROW2" tables.
	CheckerboardKey  string `toml:"checkerboard_key" json:"checkerboard_key"`
	CheckerboardRows string `toml:"checkerboard_rows" json:"checkerboard_rows"`
	CheckerboardCols string `toml:"checkerboard_cols" json:"checkerboard_cols"`

	// Two-square keywords.
	TwoSquareKey1 string `toml:"twosquare_key1" json:"twosquare_key1"`
	TwoSquareKey2 string `toml:"twosquare_key2" json:"twosquare_key2"`

	// Three-square keywords.
	ThreeSquareKey1 string `toml:"threesquare_key1" json:"threesquare_key1"`
	ThreeSquareKey2 string `toml:"threesquare_key2" json:"threesquare_key2"`
	ThreeSquareKey3 string `toml:"threesquare_key3" json:"threesquare_key3"`
}

// RandomConfig contains randomness configuration.
type RandomConfig struct {
	// Seed seeds the generator for the randomized ciphers. 0 means
	// seed from the operating system; any other value gives
	// reproducible ciphertexts, which puzzle authors rely on.
	Seed int64 `toml:"seed" json:"seed"`
}

// OutputConfig contains terminal output configuration.
type OutputConfig struct {
	// Color is "auto" (TTY detection), "always" or "never".
	// NO_COLOR in the environment always wins.
	Color string `toml:"color" json:"color"`
}

// HistoryConfig contains transform history configuration.
type HistoryConfig struct {
	// Enabled turns history recording on or off.
	Enabled bool `toml:"enabled" json:"enabled"`
	// Path overrides the SQLite database location
	// (empty = ~/.polysq/history.db).
	Path string `toml:"path" json:"path"`
	// Limit caps stored records; older records are pruned (0 = unlimited).
	Limit int `toml:"limit" json:"limit"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration. The checkerboard
// tables default to the first and second alphabet rows so the cipher
// works out of the box; real exercises override them.
func Default() *Config {
	return &Config{
		Version: "1",
		Keys: KeysConfig{
			CheckerboardRows: "ABCDE,FGHIK",
			CheckerboardCols: "LMNOP,QRSTU",
		},
		Random: RandomConfig{Seed: 0},
		Output: OutputConfig{Color: "auto"},
		History: HistoryConfig{
			Enabled: true,
			Limit:   500,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the polysq configuration directory (~/.polysq).
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".polysq"), nil
}

// ConfigPathTOML returns the TOML config file path.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the JSON config file path.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load loads the configuration, trying TOML first, then JSON, then
// falling back to defaults. Environment overrides are applied last and
// the result is always validated.
func Load() (*Config, error) {
	cfg := Default()

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			return finish(cfg)
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			return finish(cfg)
		}
	}

	return finish(cfg)
}

// finish applies env overrides and validates.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads a config file by extension (.toml or .json),
// starting from defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := LoadTOML(cfg, path); err != nil {
			return nil, err
		}
	case ".json":
		if err := LoadJSON(cfg, path); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
	return finish(cfg)
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the TOML config path atomically.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file with a header
// comment. The write is atomic so a crash never leaves a torn config.
func SaveTOML(cfg *Config, path string) error {
	var b strings.Builder
	b.WriteString("# polysq configuration file\n")
	b.WriteString("# Generated by polysq - edit with care\n")
	b.WriteString("\n")

	encoder := toml.NewEncoder(&b)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for invalid values. Key tables are
// validated here so a broken default is caught at load time, not in the
// middle of a transform.
func (c *Config) Validate() error {
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color must be auto, always or never, got %q", c.Output.Color)
	}

	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative, got %d", c.History.Limit)
	}

	if c.Keys.CheckerboardRows != "" {
		if _, err := square.ParseAuxTable(c.Keys.CheckerboardRows); err != nil {
			return fmt.Errorf("keys.checkerboard_rows: %w", err)
		}
	}
	if c.Keys.CheckerboardCols != "" {
		if _, err := square.ParseAuxTable(c.Keys.CheckerboardCols); err != nil {
			return fmt.Errorf("keys.checkerboard_cols: %w", err)
		}
	}
	return nil
}

// ApplyEnvOverrides applies POLYSQ_* environment variables on top of the
// loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("POLYSQ_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Random.Seed = seed
		}
	}
	if v := os.Getenv("POLYSQ_COLOR"); v != "" {
		c.Output.Color = v
	}
	if v := os.Getenv("POLYSQ_HISTORY"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.History.Enabled = enabled
		}
	}
	if v := os.Getenv("POLYSQ_HISTORY_PATH"); v != "" {
		c.History.Path = v
	}
}

// =============================================================================
// KEY ACCESS
// =============================================================================

// configKeys maps dotted key names to getter/setter pairs. A flat
// explicit table beats reflection at this size and keeps "config set"
// typo errors obvious.
var configKeys = map[string]struct {
	get func(*Config) string
	set func(*Config, string) error
}{
	"keys.checkerboard_key": {
		get: func(c *Config) string { return c.Keys.CheckerboardKey },
		set: func(c *Config, v string) error { c.Keys.CheckerboardKey = v; return nil },
	},
	"keys.checkerboard_rows": {
		get: func(c *Config) string { return c.Keys.CheckerboardRows },
		set: func(c *Config, v string) error {
			if _, err := square.ParseAuxTable(v); err != nil {
				return err
			}
			c.Keys.CheckerboardRows = v
			return nil
		},
	},
	"keys.checkerboard_cols": {
		get: func(c *Config) string { return c.Keys.CheckerboardCols },
		set: func(c *Config, v string) error {
			if _, err := square.ParseAuxTable(v); err != nil {
				return err
			}
			c.Keys.CheckerboardCols = v
			return nil
		},
	},
	"keys.twosquare_key1": {
		get: func(c *Config) string { return c.Keys.TwoSquareKey1 },
		set: func(c *Config, v string) error { c.Keys.TwoSquareKey1 = v; return nil },
	},
	"keys.twosquare_key2": {
		get: func(c *Config) string { return c.Keys.TwoSquareKey2 },
		set: func(c *Config, v string) error { c.Keys.TwoSquareKey2 = v; return nil },
	},
	"keys.threesquare_key1": {
		get: func(c *Config) string { return c.Keys.ThreeSquareKey1 },
		set: func(c *Config, v string) error { c.Keys.ThreeSquareKey1 = v; return nil },
	},
	"keys.threesquare_key2": {
		get: func(c *Config) string { return c.Keys.ThreeSquareKey2 },
		set: func(c *Config, v string) error { c.Keys.ThreeSquareKey2 = v; return nil },
	},
	"keys.threesquare_key3": {
		get: func(c *Config) string { return c.Keys.ThreeSquareKey3 },
		set: func(c *Config, v string) error { c.Keys.ThreeSquareKey3 = v; return nil },
	},
	"random.seed": {
		get: func(c *Config) string { return strconv.FormatInt(c.Random.Seed, 10) },
		set: func(c *Config, v string) error {
			seed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("random.seed must be an integer: %w", err)
			}
			c.Random.Seed = seed
			return nil
		},
	},
	"output.color": {
		get: func(c *Config) string { return c.Output.Color },
		set: func(c *Config, v string) error {
			switch v {
			case "auto", "always", "never":
				c.Output.Color = v
				return nil
			}
			return fmt.Errorf("output.color must be auto, always or never")
		},
	},
	"history.enabled": {
		get: func(c *Config) string { return strconv.FormatBool(c.History.Enabled) },
		set: func(c *Config, v string) error {
			enabled, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("history.enabled must be true or false: %w", err)
			}
			c.History.Enabled = enabled
			return nil
		},
	},
	"history.path": {
		get: func(c *Config) string { return c.History.Path },
		set: func(c *Config, v string) error { c.History.Path = v; return nil },
	},
	"history.limit": {
		get: func(c *Config) string { return strconv.Itoa(c.History.Limit) },
		set: func(c *Config, v string) error {
			limit, err := strconv.Atoi(v)
			if err != nil || limit < 0 {
				return fmt.Errorf("history.limit must be a non-negative integer")
			}
			c.History.Limit = limit
			return nil
		},
	},
}

// GetAllKeys returns every settable config key, sorted for display.
func GetAllKeys() []string {
	keys := make([]string, 0, len(configKeys))
	for k := range configKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns a config value by dotted key name.
func (c *Config) Get(key string) (string, error) {
	entry, ok := configKeys[key]
	if !ok {
		return "", fmt.Errorf("unknown config key: %s", key)
	}
	return entry.get(c), nil
}

// Set assigns a config value by dotted key name, validating the value.
func (c *Config) Set(key, value string) error {
	entry, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key: %s (see 'polysq config show')", key)
	}
	return entry.set(c, value)
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalConfig     *Config
	globalConfigMu   sync.RWMutex
	globalConfigOnce sync.Once
)

// Global returns the process-wide configuration, loading it on first
// use. Load failures fall back to defaults with a warning rather than
// aborting the command.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	globalConfigOnce.Do(func() {})
}

// ResetGlobalForTesting resets the global config state between tests.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
