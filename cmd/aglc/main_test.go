// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/aglc-engine/pkg/types"
)

func TestParseFieldPairs(t *testing.T) {
	f, err := parseFieldPairs([]string{
		"authors=Joseph Raz",
		"authors=Jane Doe",
		"title=A = B",
		"year=1977",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Joseph Raz", "Jane Doe"}, f.Names("authors"))
	assert.True(t, f["authors"].IsList())
	assert.Equal(t, "A = B", f.Text("title"))
	assert.False(t, f["year"].IsList())

	for _, bad := range []string{"title", "=value", " =x"} {
		if _, err := parseFieldPairs([]string{bad}); err == nil {
			t.Errorf("parseFieldPairs(%q) succeeded, want error", bad)
		}
	}
}

func TestReadText(t *testing.T) {
	got, err := readText([]string{"Smith", "v", "Jones"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "Smith v Jones", got)

	got, err = readText([]string{"-"}, strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	got, err = readText(nil, strings.NewReader("also stdin"))
	require.NoError(t, err)
	assert.Equal(t, "also stdin", got)
}

func TestFormatEntries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatEntries(&buf, nil, false))
	assert.Equal(t, "No entries found.\n", buf.String())

	buf.Reset()
	entries := []types.LibraryEntry{{
		ID:        "0b6c7c52-9a7c-4a63-9d40-1a3e4a0f7a11",
		Project:   "a-very-long-project-name",
		Type:      types.CaseUnreportedNoMediumNeutral,
		Formatted: "<i>R v Smith</i> (Supreme Court of Victoria, Smith J, 5 March 2020).",
		CreatedAt: time.Now(),
	}}
	require.NoError(t, formatEntries(&buf, entries, false))
	out := buf.String()
	assert.Contains(t, out, "a-very-lo...")
	assert.Contains(t, out, "case_unreported_no_me...")
	assert.Contains(t, out, "1 entries")
}
