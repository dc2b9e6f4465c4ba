// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// square_cmd.go - Keyed-square display CLI command for polysq.
//
// Command: square <keyword>
// Aliases: grid
//
// Examples:
//   polysq square leprachaun          Show the keyed 5x5 grid
//   polysq square "" --json           Canonical grid as JSON
//
// Showing the grid is how exercise authors double-check their key
// material before publishing a puzzle.
package cli

import (
	"fmt"
	"strings"

	"github.com/dnafinder/crypto-sub001/internal/alphabet"
	"github.com/dnafinder/crypto-sub001/internal/square"
)

// HandleSquare handles the "polysq square" CLI command.
func HandleSquare(args Args) error {
	keyword := args.Key1
	sq := square.New(keyword)

	if args.JSON {
		resp := NewJSONResponse("square", map[string]interface{}{
			"keyword":    keyword,
			"normalized": alphabet.Normalize(keyword),
			"rows":       sq.Rows(),
		})
		return resp.Print()
	}

	if args.Quiet {
		fmt.Println(sq.String())
		return nil
	}

	title := "Keyed square"
	if keyword != "" {
		title += fmt.Sprintf(" for %q", keyword)
	}
	fmt.Println(TitleStyle.Render(title))
	fmt.Println(GridStyle.Render(renderGrid(sq)))
	if norm := alphabet.Normalize(keyword); norm != "" && norm != keyword {
		fmt.Println(DimStyle.Render("Normalized keyword: " + norm))
	}
	return nil
}

// renderGrid lays out the square with spaced cells for the framed view.
func renderGrid(sq *square.KeyedSquare) string {
	rows := sq.Rows()
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = strings.Join(strings.Split(row, ""), "  ")
	}
	return strings.Join(out, "\n")
}
