// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/aglc-engine/pkg/types"
)

const yamlRequest = `citations:
  - id: raz
    type: journal_article
    fields:
      authors: [Joseph Raz]
      title: The Rule of Law and Its Virtue
      year: 1977
      volume: 93
      journal: Law Quarterly Review
      starting_page: 195
  - id: bad
    type: not_a_type
    fields:
      title: x
extractions:
  - id: smith
    source: westlaw_case
    text: Smith v Jones [2020] NSWSC 123
  - id: rich
    source: westlaw_case
    html: true
    text: <i>Smith v Jones</i> [2020] NSWSC 123, [45]
  - id: unknown
    source: bluebook
    text: whatever
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	req, err := ParseRequest([]byte(yamlRequest), false)
	require.NoError(t, err)

	var log bytes.Buffer
	rep := Run(*req, types.FormatConfig{}, &log)

	require.Len(t, rep.Results, 5)
	assert.Equal(t, 1, rep.Summary.Formatted)
	assert.Equal(t, 2, rep.Summary.Extracted)
	assert.Equal(t, 2, rep.Summary.Failed)
	assert.True(t, rep.HasFailures())

	byID := make(map[string]Result)
	for _, r := range rep.Results {
		byID[r.ID] = r
	}

	assert.Equal(t, "Joseph Raz, 'The Rule of Law and Its Virtue' (1977) 93 <i>Law Quarterly Review</i> 195.", byID["raz"].Citation)
	assert.Contains(t, byID["bad"].Error, "unsupported citation type")

	assert.Equal(t, types.CaseUnreportedMediumNeutral, byID["smith"].Type)
	assert.Equal(t, "<i>Smith v Jones</i> [2020] NSWSC 123.", byID["smith"].Citation)
	assert.Equal(t, "NSWSC", byID["smith"].Fields.Text("unique_court_identifier"))

	assert.Equal(t, "<i>Smith v Jones</i> [2020] NSWSC 123, [45].", byID["rich"].Citation)
	assert.Contains(t, byID["unknown"].Error, "unsupported source type")

	assert.Contains(t, log.String(), "formatted: raz")
	assert.Contains(t, log.String(), "extracted: smith (case_unreported_medium_neutral)")
	assert.Contains(t, log.String(), "failed:  bad")
}

func TestRunMarkup(t *testing.T) {
	req := Request{Citations: []CitationItem{{
		ID:   "act",
		Type: "act",
		Fields: types.Fields{
			"title":        types.String("Corporations Act"),
			"year":         types.String("2001"),
			"jurisdiction": types.String("Cth"),
		},
	}}}
	rep := Run(req, types.FormatConfig{Markup: types.MarkupMarkdown}, &bytes.Buffer{})
	require.Len(t, rep.Results, 1)
	assert.Equal(t, types.Legislation, rep.Results[0].Type)
	assert.Equal(t, "*Corporations Act 2001* (Cth).", rep.Results[0].Citation)
}

func TestReadRequestJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "req.json", `{
  "citations": [
    {"id": "a", "type": "book", "fields": {"authors": ["H L A Hart"], "title": "The Concept of Law", "publisher": "Clarendon Press", "year": 1961}}
  ]
}`)
	req, err := ReadRequest(path)
	require.NoError(t, err)
	require.Len(t, req.Citations, 1)
	assert.Equal(t, "1961", req.Citations[0].Fields.Text("year"))
	assert.Equal(t, []string{"H L A Hart"}, req.Citations[0].Fields.Names("authors"))
}

func TestReadRequestErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadRequest(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading request file")

	bad := writeFile(t, dir, "bad.yaml", "citations: {not: [a list")
	_, err = ReadRequest(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing request file")
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", "citations: []")
	b := writeFile(t, dir, "nested/deep/b.yaml", "citations: []")
	writeFile(t, dir, "nested/c.json", "{}")

	files, err := LoadFiles([]string{
		filepath.Join(dir, "**", "*.yaml"),
		a,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)

	_, err = LoadFiles([]string{filepath.Join(dir, "*.toml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files match pattern")
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", yamlRequest)
	broken := writeFile(t, dir, "broken.yaml", "citations: [")

	var log bytes.Buffer
	rep := RunFiles([]string{broken, good}, types.FormatConfig{}, &log)

	assert.Equal(t, 1, rep.Summary.Formatted)
	assert.Equal(t, 2, rep.Summary.Extracted)
	assert.Equal(t, 3, rep.Summary.Failed)
	assert.Equal(t, 6, rep.Summary.Total())
	assert.Equal(t, broken, rep.Results[0].File)
	assert.Equal(t, good, rep.Results[1].File)
	assert.Contains(t, log.String(), "Batch summary: 1 formatted, 2 extracted, 3 failed (total: 6)")
}

func TestWriteReport(t *testing.T) {
	rep := Report{
		Results: []Result{{
			ID:       "a",
			Kind:     KindFormat,
			Type:     types.Book,
			Citation: "<i>Title</i>.",
		}},
		Summary: Summary{Formatted: 1},
	}

	var js bytes.Buffer
	require.NoError(t, WriteReport(&js, rep, types.OutputJSON))
	var decoded Report
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, "<i>Title</i>.", decoded.Results[0].Citation)
	assert.Equal(t, 1, decoded.Summary.Formatted)

	var ys bytes.Buffer
	require.NoError(t, WriteReport(&ys, rep, types.OutputYAML))
	var fromYAML Report
	require.NoError(t, yaml.Unmarshal(ys.Bytes(), &fromYAML))
	assert.Equal(t, types.Book, fromYAML.Results[0].Type)
	assert.True(t, strings.HasPrefix(ys.String(), "results:"))

	err := WriteReport(&bytes.Buffer{}, rep, "toml")
	require.Error(t, err)
}

func TestSampleRequests(t *testing.T) {
	files, err := LoadFiles([]string{filepath.Join("..", "..", "testdata", "requests", "**", "*.yaml")})
	require.NoError(t, err)
	require.NotEmpty(t, files)

	rep := RunFiles(files, types.FormatConfig{Markup: types.MarkupPlain}, &bytes.Buffer{})
	assert.False(t, rep.HasFailures())

	byID := make(map[string]Result)
	for _, r := range rep.Results {
		byID[r.ID] = r
	}
	assert.Equal(t, "Donoghue v Stevenson (1932) AC 562.", byID["donoghue"].Citation)
	assert.Equal(t, "Corporations Act 2001 (Cth) s 9.", byID["corporations"].Citation)
	assert.Equal(t, types.CaseReported, byID["mabo"].Type)
	assert.Equal(t, "Mabo v Queensland (No 2) (1992) 175 CLR 1.", byID["mabo"].Citation)
	assert.Equal(t, "H L A Hart, The Concept of Law (Clarendon Press, 1961).", byID["hart"].Citation)
}
