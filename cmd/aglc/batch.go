// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/aglc-engine/internal/batch"
	"github.com/pdiddy/aglc-engine/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch <files or globs...>",
	Short: "Format and extract citations listed in request files",
	Long: `Batch reads YAML or JSON request files, formats every listed citation and
extracts every pasted text, then writes one report. Patterns may use ** to
match nested directories, for example "sources/**/*.yaml".

A request file has two optional lists:

  citations:
    - id: raz
      type: journal_article
      fields: {authors: [Joseph Raz], title: ..., year: 1977}
  extractions:
    - id: smith
      source: westlaw_case
      text: Smith v Jones [2020] NSWSC 123

Per-item failures are recorded in the report and do not stop the run.
Progress lines go to stderr; the report goes to stdout or --report.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := types.BatchConfig{
		FormatConfig: formatConfig(),
		Output:       types.OutputFormat(viper.GetString("batch.output")),
	}

	files, err := batch.LoadFiles(args)
	if err != nil {
		return err
	}

	report := batch.RunFiles(files, cfg.FormatConfig, os.Stderr)

	var w io.Writer = os.Stdout
	if path, _ := cmd.Flags().GetString("report"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := batch.WriteReport(w, report, cfg.Output); err != nil {
		return err
	}

	if report.HasFailures() {
		return fmt.Errorf("%d item(s) failed", report.Summary.Failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().String("output", "yaml", "report format: yaml or json")
	batchCmd.Flags().String("report", "", "write the report to this file instead of stdout")

	viper.BindPFlag("batch.output", batchCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(batchCmd)
}
