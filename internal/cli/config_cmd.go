// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration CLI commands for polysq.
//
// Command: config [subcommand]
//
// Subcommands:
//   show (default)      Print all settings with current values
//   set <key> <value>   Change a setting and save the config file
//   path                Print the config file location
//
// Examples:
//   polysq config                     Show all settings
//   polysq config set output.color never
//   polysq config set keys.twosquare_key1 leprachaun
//   polysq config path
package cli

import (
	"fmt"

	"github.com/dnafinder/crypto-sub001/internal/config"
)

// HandleConfig handles the "polysq config" CLI command.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "show", "":
		return handleConfigShow(args)
	case "set":
		return handleConfigSet(args)
	case "path":
		return handleConfigPath(args)
	default:
		return &ValidationError{
			Field:   "subcommand",
			Value:   args.Subcommand,
			Reason:  "unknown config subcommand",
			Example: "polysq config [show|set|path]",
		}
	}
}

func handleConfigShow(args Args) error {
	cfg := config.Global()
	keys := config.GetAllKeys()

	if args.JSON {
		values := make(map[string]string, len(keys))
		for _, key := range keys {
			v, err := cfg.Get(key)
			if err != nil {
				return &CommandError{Command: "config", Action: "show", Reason: "could not read " + key, Err: err}
			}
			values[key] = v
		}
		return NewJSONResponse("config_show", values).Print()
	}

	fmt.Println(TitleStyle.Render("polysq configuration"))
	for _, key := range keys {
		v, err := cfg.Get(key)
		if err != nil {
			return &CommandError{Command: "config", Action: "show", Reason: "could not read " + key, Err: err}
		}
		if v == "" {
			v = DimStyle.Render("(unset)")
		} else {
			v = ValueStyle.Render(v)
		}
		fmt.Printf("  %s %s\n", LabelStyle.Width(28).Render(key), v)
	}
	return nil
}

func handleConfigSet(args Args) error {
	if args.ConfigKey == "" {
		return &ValidationError{
			Field:   "key",
			Reason:  "config key required",
			Example: "polysq config set output.color never",
		}
	}

	cfg := config.Global()
	if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
		return &ValidationError{
			Field:  args.ConfigKey,
			Value:  args.ConfigVal,
			Reason: err.Error(),
		}
	}
	if err := cfg.Validate(); err != nil {
		return &ValidationError{
			Field:  args.ConfigKey,
			Value:  args.ConfigVal,
			Reason: err.Error(),
		}
	}

	path, err := config.ConfigPathTOML()
	if err != nil {
		return &CommandError{Command: "config", Action: "set", Reason: "could not resolve config path", Err: err}
	}
	if err := config.SaveTOML(cfg, path); err != nil {
		return &CommandError{Command: "config", Action: "set", Reason: "could not save config", Err: err}
	}

	if args.JSON {
		return NewJSONResponse("config_set", map[string]string{
			"key":   args.ConfigKey,
			"value": args.ConfigVal,
			"path":  path,
		}).Print()
	}
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("Set %s = %s", args.ConfigKey, args.ConfigVal)))
	fmt.Println(DimStyle.Render("Saved to " + path))
	return nil
}

func handleConfigPath(args Args) error {
	path, err := config.ConfigPathTOML()
	if err != nil {
		return &CommandError{Command: "config", Action: "path", Reason: "could not resolve config path", Err: err}
	}

	if args.JSON {
		return NewJSONResponse("config_path", map[string]string{"path": path}).Print()
	}
	fmt.Println(path)
	return nil
}
