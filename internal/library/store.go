// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library keeps formatted citations in a local SQLite database so
// a writer can collect, search and re-export the sources of a project.
package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/aglc-engine/internal/format"
	"github.com/pdiddy/aglc-engine/pkg/types"
)

const (
	dbFile = "library.db"

	defaultDir        = "library"
	defaultMaxResults = 50
)

// ErrNotFound is returned when no entry has the requested ID.
var ErrNotFound = errors.New("entry not found")

// Store manages the citation library database.
type Store struct {
	db         *sql.DB
	dir        string
	project    string
	maxResults int
}

// NewStore opens or creates the library at cfg.Dir/library.db and creates
// the schema if it does not exist.
func NewStore(cfg types.LibraryConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating library directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{
		db:         db,
		dir:        dir,
		project:    cfg.Project,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, dbFile)
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			project TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL,
			fields TEXT NOT NULL,
			formatted TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '[]',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_project ON entries(project)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_type ON entries(type)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Add formats e and stores it under a new ID. The type is resolved through
// ParseCitationType, so legacy names such as "act" are accepted. An
// unsupported type is returned as *format.UnsupportedTypeError and nothing
// is stored. An empty project defaults to the store's project.
func (s *Store) Add(ctx context.Context, e types.LibraryEntry) (types.LibraryEntry, error) {
	e.Type = types.ParseCitationType(string(e.Type))
	formatted, err := format.Format(e.Type, e.Fields)
	if err != nil {
		return types.LibraryEntry{}, err
	}

	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.Formatted = formatted
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Project == "" {
		e.Project = s.project
	}
	if e.Fields == nil {
		e.Fields = types.Fields{}
	}
	e.Tags = normalizeTags(e.Tags)

	fieldsJSON, err := json.Marshal(e.Fields)
	if err != nil {
		return types.LibraryEntry{}, fmt.Errorf("encoding fields: %w", err)
	}
	tagsJSON, _ := json.Marshal(e.Tags)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO entries (id, project, type, fields, formatted, notes, tags, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Project, string(e.Type), string(fieldsJSON), e.Formatted,
		e.Notes, string(tagsJSON), formatTime(now), formatTime(now),
	)
	if err != nil {
		return types.LibraryEntry{}, fmt.Errorf("inserting entry: %w", err)
	}
	return e, nil
}

// Get returns the entry with the given ID.
func (s *Store) Get(ctx context.Context, id string) (types.LibraryEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.LibraryEntry{}, fmt.Errorf("entry %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return types.LibraryEntry{}, fmt.Errorf("looking up entry: %w", err)
	}
	return e, nil
}

// Delete removes the entry with the given ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("entry %s: %w", id, ErrNotFound)
	}
	return nil
}

// ReformatSummary holds counts from a reformat run.
type ReformatSummary struct {
	Checked int
	Changed int
	Failed  int
}

// Reformat runs every entry back through the formatter and stores the
// citations that changed, printing one line per changed or failed entry.
// Entries whose type is no longer supported are counted as failed and
// left untouched.
func (s *Store) Reformat(ctx context.Context, w io.Writer) (ReformatSummary, error) {
	entries, err := s.query(ctx, QueryOptions{}, -1)
	if err != nil {
		return ReformatSummary{}, err
	}

	var summary ReformatSummary
	for _, e := range entries {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		summary.Checked++
		formatted, err := format.Format(e.Type, e.Fields)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", e.ID, err)
			summary.Failed++
			continue
		}
		if formatted == e.Formatted {
			continue
		}

		_, err = s.db.ExecContext(ctx,
			`UPDATE entries SET formatted = ?, updated_at = ? WHERE id = ?`,
			formatted, formatTime(time.Now().UTC()), e.ID)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", e.ID, err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(w, "updated %s\n", e.ID)
		summary.Changed++
	}

	fmt.Fprintf(w, "\nchecked: %d, changed: %d, failed: %d\n",
		summary.Checked, summary.Changed, summary.Failed)
	return summary, nil
}

func normalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
