// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - Transform history CLI commands for polysq.
//
// Command: history [subcommand]
// Aliases: hist
//
// Subcommands:
//   list (default)      List recent transforms
//   show <id>           Show one transform (id prefix accepted)
//   clear               Delete all history records
//
// Examples:
//   polysq history                    List recent transforms
//   polysq history list --json        History in JSON format
//   polysq history show 4f1c          One record by id prefix
//   polysq history clear              Wipe the history database
package cli

import (
	"fmt"
	"time"

	"github.com/dnafinder/crypto-sub001/internal/config"
	"github.com/dnafinder/crypto-sub001/internal/history"
	"github.com/dnafinder/crypto-sub001/internal/util"
)

// historyListLimit is how many records "history list" shows by default.
const historyListLimit = 20

// HandleHistory handles the "polysq history" CLI command.
func HandleHistory(args Args) error {
	store, err := history.OpenDefault(config.Global())
	if err != nil {
		return &CommandError{Command: "history", Action: "open", Reason: "could not open history database", Err: err}
	}
	defer store.Close()

	switch args.Subcommand {
	case "list", "":
		return handleHistoryList(args, store)
	case "show":
		return handleHistoryShow(args, store)
	case "clear":
		return handleHistoryClear(args, store)
	default:
		return &ValidationError{
			Field:   "subcommand",
			Value:   args.Subcommand,
			Reason:  "unknown history subcommand",
			Example: "polysq history [list|show|clear]",
		}
	}
}

func handleHistoryList(args Args, store *history.Store) error {
	records, err := store.List(historyListLimit)
	if err != nil {
		return &CommandError{Command: "history", Action: "list", Reason: "query failed", Err: err}
	}

	if args.JSON {
		return NewJSONResponse("history_list", records).Print()
	}

	if len(records) == 0 {
		fmt.Println(DimStyle.Render("No transforms recorded yet."))
		return nil
	}

	fmt.Println(TitleStyle.Render("Transform history"))
	header := util.PadWidth("ID", 10) + util.PadWidth("CIPHER", 14) +
		util.PadWidth("DIR", 9) + util.PadWidth("TEXT", 34) + "WHEN"
	fmt.Println(SectionStyle.Render(header))

	for _, rec := range records {
		text := rec.Plain
		if rec.Direction == "decrypt" {
			text = rec.Encrypted
		}
		line := util.PadWidth(shortID(rec.ID), 10) +
			util.PadWidth(rec.Cipher, 14) +
			util.PadWidth(rec.Direction, 9) +
			util.PadWidth(util.TruncateWidth(text, 32), 34) +
			rec.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Println(ValueStyle.Render(line))
	}
	return nil
}

func handleHistoryShow(args Args, store *history.Store) error {
	if len(args.Raw) == 0 {
		return &ValidationError{
			Field:   "id",
			Reason:  "record id required",
			Example: "polysq history show 4f1c",
		}
	}

	rec, err := store.Get(args.Raw[0])
	if err != nil {
		return &NotFoundError{Resource: "record", ID: args.Raw[0]}
	}

	if args.JSON {
		return NewJSONResponse("history_show", rec).Print()
	}

	fmt.Println(TitleStyle.Render(fmt.Sprintf("%s %s", rec.Cipher, rec.Direction)))
	fmt.Println(LabelStyle.Render("ID:") + " " + ValueStyle.Render(rec.ID))
	fmt.Println(LabelStyle.Render("When:") + " " + ValueStyle.Render(rec.CreatedAt.Local().Format(time.RFC1123)))
	fmt.Println(LabelStyle.Render("Plain:") + " " + ValueStyle.Render(rec.Plain))
	fmt.Println(LabelStyle.Render("Encrypted:") + " " + CipherTextStyle.Render(rec.Encrypted))
	for _, k := range rec.Keys {
		fmt.Println(LabelStyle.Render("Key:") + " " + ValueStyle.Render(fmt.Sprintf("%s = %q (%s)", k.Name, k.Raw, k.Normalized)))
	}
	return nil
}

func handleHistoryClear(args Args, store *history.Store) error {
	removed, err := store.Clear()
	if err != nil {
		return &CommandError{Command: "history", Action: "clear", Reason: "delete failed", Err: err}
	}

	if args.JSON {
		return NewJSONResponse("history_clear", map[string]int64{"removed": removed}).Print()
	}
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("Removed %d record(s).", removed)))
	return nil
}
