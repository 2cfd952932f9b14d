// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/aglc-engine/internal/format"
	"github.com/pdiddy/aglc-engine/pkg/types"
)

// ExportEntry is one library entry as written by ExportYAML and ExportJSON.
// Citation is the formatted string rendered in the requested markup.
type ExportEntry struct {
	ID       string             `json:"id" yaml:"id"`
	Project  string             `json:"project,omitempty" yaml:"project,omitempty"`
	Type     types.CitationType `json:"type" yaml:"type"`
	Citation string             `json:"citation" yaml:"citation"`
	Fields   types.Fields       `json:"fields" yaml:"fields"`
	Notes    string             `json:"notes,omitempty" yaml:"notes,omitempty"`
	Tags     []string           `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// ExportYAML writes the entries matching opts to w as YAML, oldest first.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, opts QueryOptions, m types.Markup) error {
	entries, err := s.exportEntries(ctx, opts, m)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes the entries matching opts to w as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer, opts QueryOptions, m types.Markup) error {
	entries, err := s.exportEntries(ctx, opts, m)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func (s *Store) exportEntries(ctx context.Context, opts QueryOptions, m types.Markup) ([]ExportEntry, error) {
	results, err := s.query(ctx, opts, -1)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(results))
	for i, r := range results {
		// query returns newest first.
		entries[len(results)-1-i] = ExportEntry{
			ID:       r.ID,
			Project:  r.Project,
			Type:     r.Type,
			Citation: format.Render(r.Formatted, m),
			Fields:   r.Fields,
			Notes:    r.Notes,
			Tags:     r.Tags,
		}
	}
	return entries, nil
}
