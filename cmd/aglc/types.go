// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/aglc-engine/internal/extract"
	"github.com/pdiddy/aglc-engine/internal/format"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List citation types and extraction sources",
	Long: `Types lists every citation type the formatter supports and, with --fields,
the field names each type reads. Extraction sources are listed last.`,
	RunE: runTypes,
}

// typeInfo is one row of the types listing.
type typeInfo struct {
	Type   string   `json:"type"`
	Fields []string `json:"fields,omitempty"`
}

func runTypes(cmd *cobra.Command, args []string) error {
	showFields, _ := cmd.Flags().GetBool("fields")

	var rows []typeInfo
	for _, t := range format.Registered() {
		row := typeInfo{Type: string(t)}
		if showFields {
			row.Fields, _ = format.Params(t)
		}
		rows = append(rows, row)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		out := struct {
			Types   []typeInfo `json:"types"`
			Sources []string   `json:"sources"`
		}{Types: rows}
		for _, s := range extract.Sources() {
			out.Sources = append(out.Sources, string(s))
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, r := range rows {
		if showFields {
			fmt.Fprintf(os.Stdout, "%-40s  %s\n", r.Type, strings.Join(r.Fields, ", "))
		} else {
			fmt.Fprintln(os.Stdout, r.Type)
		}
	}
	fmt.Fprintf(os.Stdout, "\n%d citation types\n\nSources: %s\n", len(rows), sourceList())
	return nil
}

func init() {
	typesCmd.Flags().Bool("fields", false, "show the fields each type reads")
	typesCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(typesCmd)
}
