// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/aglc-engine/internal/csl"
	"github.com/pdiddy/aglc-engine/pkg/types"
)

// ImportSummary holds counts from an import run.
type ImportSummary struct {
	Imported int
	Skipped  int
}

// Import converts each CSL item to an AGLC citation and adds it to the
// library with the given tags. Items with no AGLC equivalent, or that fail
// to format, are skipped and reported on w; they do not stop the run.
func (s *Store) Import(ctx context.Context, items []csl.Item, tags []string, w io.Writer) (ImportSummary, error) {
	var summary ImportSummary
	for _, item := range items {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		t, fields, err := csl.ToCitation(item)
		if err == nil {
			var e types.LibraryEntry
			e, err = s.Add(ctx, types.LibraryEntry{
				Type:   t,
				Fields: fields,
				Notes:  item.Note,
				Tags:   tags,
			})
			if err == nil {
				fmt.Fprintf(w, "imported %s as %s (%s)\n", item.ID, e.ID, e.Type)
				summary.Imported++
				continue
			}
		}
		fmt.Fprintf(w, "skipped  %s: %v\n", item.ID, err)
		summary.Skipped++
	}

	fmt.Fprintf(w, "\nimported: %d, skipped: %d\n", summary.Imported, summary.Skipped)
	return summary, nil
}

// ExportCSL writes the entries matching opts to w as CSL items, oldest
// first. asJSON selects CSL-JSON; otherwise CSL-YAML is written.
func (s *Store) ExportCSL(ctx context.Context, w io.Writer, opts QueryOptions, asJSON bool) error {
	results, err := s.query(ctx, opts, -1)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	items := make([]csl.Item, len(results))
	for i, r := range results {
		items[len(results)-1-i] = csl.FromEntry(r)
	}
	if asJSON {
		return csl.WriteJSON(w, items)
	}
	return csl.WriteYAML(w, items)
}
