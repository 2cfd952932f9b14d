// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/aglc-engine/internal/extract"
	"github.com/pdiddy/aglc-engine/internal/format"
	"github.com/pdiddy/aglc-engine/internal/paste"
	"github.com/pdiddy/aglc-engine/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [text|-]",
	Short: "Extract citation fields from text copied out of a database",
	Long: `Extract reads a citation as copied from Westlaw, LexisNexis, Jade, SSRN or
Google Scholar and prints the detected citation type and fields as YAML.
Text is taken from the arguments, or from stdin when the argument is "-" or
missing. Rich-text (HTML) pastes are converted to plain text first.

Sources: westlaw, lexisnexis, jade, ssrn, scholar (articles) and
scholar_book.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	srcName, _ := cmd.Flags().GetString("source")
	if srcName == "" {
		return fmt.Errorf("source required: use --source (one of %s)", sourceList())
	}
	src := types.ParseSourceType(srcName)

	text, err := readText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	asHTML, _ := cmd.Flags().GetBool("html")
	var conv paste.Converter = paste.For(text)
	if asHTML {
		conv = paste.HTML{}
	}
	text, err = conv.Convert(strings.NewReader(text))
	if err != nil {
		return err
	}

	res, err := extract.Extract(src, text)
	if err != nil {
		return err
	}
	slog.Debug("extracted citation", "source", src, "type", res.Type, "fields", len(res.Fields))

	if doFormat, _ := cmd.Flags().GetBool("format"); doFormat {
		s, err := format.FormatWith(formatConfig(), res.Type, res.Fields)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(res)
}

// readText joins the arguments, or reads r when there are none or the
// only argument is "-".
func readText(args []string, r io.Reader) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func sourceList() string {
	var names []string
	for _, s := range extract.Sources() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

func init() {
	extractCmd.Flags().String("source", "", "database the text was copied from")
	extractCmd.Flags().Bool("html", false, "treat the input as HTML even without recognisable tags")
	extractCmd.Flags().Bool("format", false, "print the formatted citation instead of the fields")
	extractCmd.Flags().Bool("json", false, "output fields as JSON")

	rootCmd.AddCommand(extractCmd)
}
