// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/aglc-engine/internal/batch"
	"github.com/pdiddy/aglc-engine/internal/format"
	"github.com/pdiddy/aglc-engine/pkg/types"
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format one citation from its fields",
	Long: `Format builds an AGLC4 citation for the given citation type. Fields are
passed with repeated --field name=value flags; repeating a name makes a list,
which is how several authors or editors are given. A YAML or JSON file with
"type" and "fields" keys can be passed with --file; flags override it.

Example:
  aglc format --type journal_article \
    --field authors="Joseph Raz" --field title="The Rule of Law and Its Virtue" \
    --field year=1977 --field volume=93 --field journal="Law Quarterly Review" \
    --field starting_page=195`,
	RunE: runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	citationType, fields, err := citationFromFlags(cmd)
	if err != nil {
		return err
	}

	s, err := format.FormatWith(formatConfig(), citationType, fields)
	if err != nil {
		return err
	}
	if s == "" {
		slog.Warn("no fields used by this citation type were given", "type", citationType)
		return nil
	}
	fmt.Println(s)
	return nil
}

// citationFromFlags reads --file, --type and --field into a citation type
// and field bag.
func citationFromFlags(cmd *cobra.Command) (types.CitationType, types.Fields, error) {
	var item batch.CitationItem
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		read, err := batch.ReadCitation(path)
		if err != nil {
			return "", nil, err
		}
		item = *read
	}
	if item.Fields == nil {
		item.Fields = types.Fields{}
	}

	if t, _ := cmd.Flags().GetString("type"); t != "" {
		item.Type = types.CitationType(t)
	}
	if item.Type == "" {
		return "", nil, fmt.Errorf("citation type required: use --type (see 'aglc types')")
	}

	pairs, _ := cmd.Flags().GetStringArray("field")
	flagFields, err := parseFieldPairs(pairs)
	if err != nil {
		return "", nil, err
	}
	for k, v := range flagFields {
		item.Fields[k] = v
	}

	t := types.ParseCitationType(string(item.Type))
	if t != item.Type {
		slog.Debug("resolved citation type alias", "from", item.Type, "to", t)
	}
	return t, item.Fields, nil
}

// parseFieldPairs turns name=value pairs into fields. A repeated name
// collects its values into a list.
func parseFieldPairs(pairs []string) (types.Fields, error) {
	values := make(map[string][]string)
	var order []string
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --field %q: want name=value", p)
		}
		if _, seen := values[name]; !seen {
			order = append(order, name)
		}
		values[name] = append(values[name], value)
	}

	f := make(types.Fields, len(values))
	for _, name := range order {
		v := values[name]
		if len(v) == 1 {
			f[name] = types.String(v[0])
		} else {
			f[name] = types.List(v...)
		}
	}
	return f, nil
}

func addCitationFlags(cmd *cobra.Command) {
	cmd.Flags().String("type", "", "citation type (see 'aglc types')")
	cmd.Flags().StringArray("field", nil, "field as name=value; repeat a name for a list")
	cmd.Flags().String("file", "", "YAML or JSON file with type and fields")
}

func init() {
	addCitationFlags(formatCmd)
	rootCmd.AddCommand(formatCmd)
}
