// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the aglc CLI: it formats citations in
// the Australian Guide to Legal Citation (4th ed) style, extracts citation
// fields from database text and keeps a local citation library.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/aglc-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the aglc CLI.
var rootCmd = &cobra.Command{
	Use:   "aglc",
	Short: "Format and extract AGLC4 legal citations",
	Long: `aglc formats legal and academic citations in the style of the Australian
Guide to Legal Citation (4th ed). It builds citations from structured fields,
recovers those fields from text copied out of Westlaw, LexisNexis, Jade, SSRN
and Google Scholar, and keeps formatted citations in a local library.

Citations are written with <i>...</i> italics by default. Use --markup to
render them as Markdown or plain text.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := types.ParseMarkup(viper.GetString("markup")); !ok {
			return fmt.Errorf("unsupported markup %q: use html, markdown or plain", viper.GetString("markup"))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./aglc.yaml or ~/.config/aglc/aglc.yaml)")
	rootCmd.PersistentFlags().String("markup", "html", "italics markup for citations: html, markdown or plain")
	rootCmd.PersistentFlags().Bool("canonicalize", false, "rename aliased field names (date, author, ...) before formatting")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log diagnostic detail to stderr")

	viper.BindPFlag("markup", rootCmd.PersistentFlags().Lookup("markup"))
	viper.BindPFlag("canonicalize", rootCmd.PersistentFlags().Lookup("canonicalize"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})))

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("aglc")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "aglc"))
		}
	}

	viper.SetEnvPrefix("AGLC")
	viper.AutomaticEnv()

	viper.SetDefault("library.dir", "library")
	viper.SetDefault("library.max_results", 50)
	viper.SetDefault("batch.output", string(types.OutputYAML))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// formatConfig returns the formatting settings from flags, env and config.
func formatConfig() types.FormatConfig {
	m, _ := types.ParseMarkup(viper.GetString("markup"))
	return types.FormatConfig{
		Markup:       m,
		Canonicalize: viper.GetBool("canonicalize"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
