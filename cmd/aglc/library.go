// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/aglc-engine/internal/csl"
	"github.com/pdiddy/aglc-engine/internal/format"
	"github.com/pdiddy/aglc-engine/internal/library"
	"github.com/pdiddy/aglc-engine/pkg/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the local citation library",
	Long: `Library keeps formatted citations in a local SQLite database together with
the fields that produced them. Entries can be grouped by project, tagged,
searched and exported. Reformat re-runs the formatter over every entry.`,
}

// --- add subcommand ---

var libraryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Format a citation and save it to the library",
	RunE:  runLibraryAdd,
}

func runLibraryAdd(cmd *cobra.Command, args []string) error {
	citationType, fields, err := citationFromFlags(cmd)
	if err != nil {
		return err
	}
	if viper.GetBool("canonicalize") {
		fields = fields.Canonicalize()
	}
	notes, _ := cmd.Flags().GetString("notes")
	tags, _ := cmd.Flags().GetStringSlice("tag")

	store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	e, err := store.Add(context.Background(), types.LibraryEntry{
		Type:   citationType,
		Fields: fields,
		Notes:  notes,
		Tags:   tags,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "added %s\n%s\n", e.ID, render(e.Formatted))
	return nil
}

// --- list and search subcommands ---

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List library entries, newest first",
	RunE:  runLibraryList,
}

var librarySearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search citations, notes and types for a substring",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLibraryList,
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	opts := libraryQueryFromFlags(cmd, args)
	var entries []types.LibraryEntry
	if cmd.Name() == "search" {
		entries, err = store.Search(context.Background(), opts)
	} else {
		entries, err = store.List(context.Background(), opts)
	}
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatEntries(os.Stdout, entries, jsonOutput)
}

func formatEntries(w io.Writer, entries []types.LibraryEntry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return nil
	}

	fmt.Fprintf(w, "%-36s  %-12s  %-24s  %s\n", "ID", "Project", "Type", "Citation")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for _, e := range entries {
		project := e.Project
		if len(project) > 12 {
			project = project[:9] + "..."
		}
		kind := string(e.Type)
		if len(kind) > 24 {
			kind = kind[:21] + "..."
		}
		fmt.Fprintf(w, "%-36s  %-12s  %-24s  %s\n", e.ID, project, kind, render(e.Formatted))
	}
	fmt.Fprintf(w, "\n%d entries\n", len(entries))
	return nil
}

// --- show and delete subcommands ---

var libraryShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one library entry with its fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openLibrary()
		if err != nil {
			return err
		}
		defer store.Close()

		e, err := store.Get(context.Background(), args[0])
		if err != nil {
			return err
		}
		e.Formatted = render(e.Formatted)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(e)
	},
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete library entries",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openLibrary()
		if err != nil {
			return err
		}
		defer store.Close()

		for _, id := range args {
			if err := store.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "deleted %s\n", id)
		}
		return nil
	},
}

// --- export subcommand ---

var libraryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library to YAML, JSON or CSL",
	Long: `Export writes the library (or a filtered subset) oldest first, with each
citation rendered in the --markup style. The csl and csl-json formats write
CSL items for reference managers instead. Output goes to stdout unless
--output names a file.`,
	RunE: runLibraryExport,
}

func runLibraryExport(cmd *cobra.Command, args []string) error {
	exportFormat, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("output")

	store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	opts := libraryQueryFromFlags(cmd, args)
	ctx := context.Background()
	m := formatConfig().Markup

	switch exportFormat {
	case string(types.OutputYAML), "":
		err = store.ExportYAML(ctx, w, opts, m)
	case string(types.OutputJSON):
		err = store.ExportJSON(ctx, w, opts, m)
	case "csl":
		err = store.ExportCSL(ctx, w, opts, false)
	case "csl-json":
		err = store.ExportCSL(ctx, w, opts, true)
	default:
		return fmt.Errorf("unsupported format %q: use yaml, json, csl or csl-json", exportFormat)
	}
	if err != nil {
		return err
	}
	if outPath != "" {
		fmt.Fprintf(os.Stderr, "Exported to %s\n", outPath)
	}
	return nil
}

// --- import subcommand ---

var libraryImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import CSL-JSON or CSL-YAML items into the library",
	Long: `Import reads a CSL file exported by a reference manager such as Zotero,
converts each item to the closest AGLC citation type and adds it to the
library. Items with no AGLC equivalent are skipped and listed.`,
	Args: cobra.ExactArgs(1),
	RunE: runLibraryImport,
}

func runLibraryImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening CSL file: %w", err)
	}
	defer f.Close()

	items, err := csl.Read(f)
	if err != nil {
		return err
	}
	tags, _ := cmd.Flags().GetStringSlice("tag")

	store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Import(context.Background(), items, tags, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Imported == 0 && summary.Skipped > 0 {
		return fmt.Errorf("no items imported from %s", args[0])
	}
	return nil
}

// --- reformat subcommand ---

var libraryReformatCmd = &cobra.Command{
	Use:   "reformat",
	Short: "Re-run the formatter over every entry and store changed citations",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openLibrary()
		if err != nil {
			return err
		}
		defer store.Close()

		summary, err := store.Reformat(context.Background(), os.Stdout)
		if err != nil {
			return err
		}
		if summary.Failed > 0 {
			return fmt.Errorf("%d entr(ies) failed reformatting", summary.Failed)
		}
		return nil
	},
}

// --- shared helpers ---

func openLibrary() (*library.Store, error) {
	return library.NewStore(types.LibraryConfig{
		Dir:        viper.GetString("library.dir"),
		Project:    viper.GetString("library.project"),
		MaxResults: viper.GetInt("library.max_results"),
	})
}

// render applies the configured markup to a stored HTML citation.
func render(s string) string {
	return format.Render(s, formatConfig().Markup)
}

func libraryQueryFromFlags(cmd *cobra.Command, args []string) library.QueryOptions {
	opts := library.QueryOptions{Query: strings.Join(args, " ")}
	if cmd.Flags().Lookup("type") != nil {
		t, _ := cmd.Flags().GetString("type")
		opts.Type = types.CitationType(t)
	}
	if cmd.Flags().Lookup("tag") != nil {
		opts.Tags, _ = cmd.Flags().GetStringSlice("tag")
	}
	if cmd.Flags().Lookup("limit") != nil {
		opts.MaxResults, _ = cmd.Flags().GetInt("limit")
	}
	return opts
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("type", "", "filter by citation type")
	cmd.Flags().StringSlice("tag", nil, "filter by tag (repeatable, all must match)")
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	libraryCmd.PersistentFlags().String("library-dir", "library", "directory holding library.db")
	libraryCmd.PersistentFlags().String("project", "", "project to scope entries to")
	libraryCmd.PersistentFlags().Int("max-results", 50, "default maximum number of listed entries")

	viper.BindPFlag("library.dir", libraryCmd.PersistentFlags().Lookup("library-dir"))
	viper.BindPFlag("library.project", libraryCmd.PersistentFlags().Lookup("project"))
	viper.BindPFlag("library.max_results", libraryCmd.PersistentFlags().Lookup("max-results"))

	// Add flags.
	addCitationFlags(libraryAddCmd)
	libraryAddCmd.Flags().String("notes", "", "free-text notes kept with the entry")
	libraryAddCmd.Flags().StringSlice("tag", nil, "tag for the entry (repeatable)")

	// List and search flags.
	for _, c := range []*cobra.Command{libraryListCmd, librarySearchCmd} {
		addFilterFlags(c)
		c.Flags().Int("limit", 0, "maximum results (0 = use default)")
		c.Flags().Bool("json", false, "output entries as JSON")
	}

	// Export flags.
	addFilterFlags(libraryExportCmd)
	libraryExportCmd.Flags().String("format", "yaml", "export format: yaml, json, csl or csl-json")
	libraryExportCmd.Flags().String("output", "", "write to this file instead of stdout")

	// Import flags.
	libraryImportCmd.Flags().StringSlice("tag", nil, "tag for every imported entry (repeatable)")

	// Wire subcommands.
	libraryCmd.AddCommand(libraryAddCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(librarySearchCmd)
	libraryCmd.AddCommand(libraryShowCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)
	libraryCmd.AddCommand(libraryExportCmd)
	libraryCmd.AddCommand(libraryImportCmd)
	libraryCmd.AddCommand(libraryReformatCmd)

	rootCmd.AddCommand(libraryCmd)
}
