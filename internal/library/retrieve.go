// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/aglc-engine/pkg/types"
)

// QueryOptions holds parameters for listing and searching the library.
type QueryOptions struct {
	// Query is matched case-insensitively as a substring of the formatted
	// citation, the notes and the type.
	Query string

	// Project filters by project. Empty uses the store's project, if any.
	Project string

	// Type filters by citation type.
	Type types.CitationType

	// Tags filters by one or more tags with AND semantics.
	Tags []string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Project == "" && q.Type == "" && len(q.Tags) == 0
}

// ErrEmptyQuery is returned by Search when no search text is given.
var ErrEmptyQuery = errors.New("empty search query")

const entryColumns = `id, project, type, fields, formatted, notes, tags, created_at, updated_at`

// List returns entries matching the filters in opts, newest first.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]types.LibraryEntry, error) {
	return s.query(ctx, opts, s.limit(opts))
}

// Search is List with a required search string.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]types.LibraryEntry, error) {
	if strings.TrimSpace(opts.Query) == "" {
		return nil, ErrEmptyQuery
	}
	return s.query(ctx, opts, s.limit(opts))
}

func (s *Store) limit(opts QueryOptions) int {
	if opts.MaxResults > 0 {
		return opts.MaxResults
	}
	return s.maxResults
}

// query runs a filtered select. A negative limit returns every row.
func (s *Store) query(ctx context.Context, opts QueryOptions, limit int) ([]types.LibraryEntry, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT ` + entryColumns + ` FROM entries WHERE 1=1`)

	project := opts.Project
	if project == "" {
		project = s.project
	}
	if project != "" {
		qb.WriteString(` AND project = ?`)
		args = append(args, project)
	}

	if opts.Type != "" {
		qb.WriteString(` AND type = ?`)
		args = append(args, string(types.ParseCitationType(string(opts.Type))))
	}

	for _, tag := range normalizeTags(opts.Tags) {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(tags) WHERE value = ?)`)
		args = append(args, tag)
	}

	if q := strings.TrimSpace(opts.Query); q != "" {
		qb.WriteString(` AND (instr(lower(formatted), ?) > 0 OR instr(lower(notes), ?) > 0 OR instr(lower(type), ?) > 0)`)
		q = strings.ToLower(q)
		args = append(args, q, q, q)
	}

	qb.WriteString(` ORDER BY rowid DESC`)
	if limit >= 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying library: %w", err)
	}
	defer rows.Close()

	var entries []types.LibraryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (types.LibraryEntry, error) {
	var (
		e                types.LibraryEntry
		entryType        string
		fieldsJSON       string
		tagsJSON         string
		created, updated string
	)
	if err := sc.Scan(&e.ID, &e.Project, &entryType, &fieldsJSON, &e.Formatted,
		&e.Notes, &tagsJSON, &created, &updated); err != nil {
		return types.LibraryEntry{}, err
	}
	e.Type = types.CitationType(entryType)

	if err := json.Unmarshal([]byte(fieldsJSON), &e.Fields); err != nil {
		return types.LibraryEntry{}, fmt.Errorf("decoding fields of %s: %w", e.ID, err)
	}
	json.Unmarshal([]byte(tagsJSON), &e.Tags)

	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	e.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
	return e, nil
}
