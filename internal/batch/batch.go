// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch formats and extracts many citations from request files.
// A request file lists citations to format and pasted texts to extract.
// Failures are recorded per item and never stop a run.
package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/aglc-engine/internal/extract"
	"github.com/pdiddy/aglc-engine/internal/format"
	"github.com/pdiddy/aglc-engine/internal/paste"
	"github.com/pdiddy/aglc-engine/pkg/types"
)

// Request is the on-disk representation of a batch run.
type Request struct {
	Citations   []CitationItem   `json:"citations,omitempty" yaml:"citations,omitempty"`
	Extractions []ExtractionItem `json:"extractions,omitempty" yaml:"extractions,omitempty"`
}

// CitationItem is a citation to format from its fields.
type CitationItem struct {
	ID     string             `json:"id" yaml:"id"`
	Type   types.CitationType `json:"type" yaml:"type"`
	Fields types.Fields       `json:"fields" yaml:"fields"`
}

// ExtractionItem is text pasted from a database. HTML marks rich-text
// pastes; markup is also detected when HTML is false.
type ExtractionItem struct {
	ID     string           `json:"id" yaml:"id"`
	Source types.SourceType `json:"source" yaml:"source"`
	Text   string           `json:"text" yaml:"text"`
	HTML   bool             `json:"html,omitempty" yaml:"html,omitempty"`
}

// Result kinds.
const (
	KindFormat  = "format"
	KindExtract = "extract"
)

// Result is the outcome of one item. Citation holds the formatted string;
// Fields holds extracted fields for extraction items.
type Result struct {
	File     string             `json:"file,omitempty" yaml:"file,omitempty"`
	ID       string             `json:"id" yaml:"id"`
	Kind     string             `json:"kind" yaml:"kind"`
	Source   types.SourceType   `json:"source,omitempty" yaml:"source,omitempty"`
	Type     types.CitationType `json:"type,omitempty" yaml:"type,omitempty"`
	Fields   types.Fields       `json:"fields,omitempty" yaml:"fields,omitempty"`
	Citation string             `json:"citation" yaml:"citation"`
	Error    string             `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the item could not be processed.
func (r Result) Failed() bool {
	return r.Error != ""
}

// Summary stores run statistics and a timestamp.
type Summary struct {
	Formatted int       `json:"formatted" yaml:"formatted"`
	Extracted int       `json:"extracted" yaml:"extracted"`
	Failed    int       `json:"failed" yaml:"failed"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Total returns the number of items processed.
func (s Summary) Total() int {
	return s.Formatted + s.Extracted + s.Failed
}

// Report is the output of a batch run.
type Report struct {
	Results []Result `json:"results" yaml:"results"`
	Summary Summary  `json:"summary" yaml:"summary"`
}

// HasFailures reports whether any item failed.
func (r Report) HasFailures() bool {
	return r.Summary.Failed > 0
}

// ReadRequest loads a request file. Files ending in .json are decoded as
// JSON and everything else as YAML.
func ReadRequest(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}
	return ParseRequest(data, strings.EqualFold(filepath.Ext(path), ".json"))
}

// ParseRequest decodes a request from JSON or YAML bytes.
func ParseRequest(data []byte, isJSON bool) (*Request, error) {
	var req Request
	if isJSON {
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("parsing request file: %w", err)
		}
		return &req, nil
	}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing request file: %w", err)
	}
	return &req, nil
}

// ReadCitation loads a single citation file holding type and fields keys.
func ReadCitation(path string) (*CitationItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading citation file: %w", err)
	}
	var item CitationItem
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &item)
	} else {
		err = yaml.Unmarshal(data, &item)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing citation file: %w", err)
	}
	return &item, nil
}

// LoadFiles expands file paths and ** glob patterns into a sorted,
// de-duplicated list of files. A pattern that matches nothing is an error.
func LoadFiles(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match pattern: %s", p)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// Run formats and extracts every item of req, printing per-item status to
// w. Extracted fields are formatted as well.
func Run(req Request, cfg types.FormatConfig, w io.Writer) Report {
	var rep Report
	for _, item := range req.Citations {
		rep.add(formatItem(item, cfg), w)
	}
	for _, item := range req.Extractions {
		rep.add(extractItem(item, cfg), w)
	}
	rep.Summary.Timestamp = time.Now()
	return rep
}

// RunFiles reads each request file and runs it. An unreadable file counts
// as one failed item so the remaining files still run.
func RunFiles(paths []string, cfg types.FormatConfig, w io.Writer) Report {
	var rep Report
	for _, path := range paths {
		req, err := ReadRequest(path)
		if err != nil {
			rep.add(Result{File: path, Error: err.Error()}, w)
			continue
		}
		sub := Run(*req, cfg, w)
		for i := range sub.Results {
			sub.Results[i].File = path
		}
		rep.Results = append(rep.Results, sub.Results...)
		rep.Summary.Formatted += sub.Summary.Formatted
		rep.Summary.Extracted += sub.Summary.Extracted
		rep.Summary.Failed += sub.Summary.Failed
	}
	rep.Summary.Timestamp = time.Now()
	fmt.Fprintf(w, "\nBatch summary: %d formatted, %d extracted, %d failed (total: %d)\n",
		rep.Summary.Formatted, rep.Summary.Extracted, rep.Summary.Failed, rep.Summary.Total())
	return rep
}

func (r *Report) add(res Result, w io.Writer) {
	r.Results = append(r.Results, res)
	label := res.ID
	if label == "" {
		label = res.File
	}
	switch {
	case res.Failed():
		r.Summary.Failed++
		fmt.Fprintf(w, "failed:  %s (%s)\n", label, res.Error)
	case res.Kind == KindExtract:
		r.Summary.Extracted++
		fmt.Fprintf(w, "extracted: %s (%s)\n", label, res.Type)
	default:
		r.Summary.Formatted++
		fmt.Fprintf(w, "formatted: %s\n", label)
	}
}

func formatItem(item CitationItem, cfg types.FormatConfig) Result {
	res := Result{ID: item.ID, Kind: KindFormat, Type: types.ParseCitationType(string(item.Type))}
	s, err := format.FormatWith(cfg, res.Type, item.Fields)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Citation = s
	return res
}

func extractItem(item ExtractionItem, cfg types.FormatConfig) Result {
	res := Result{ID: item.ID, Kind: KindExtract, Source: item.Source}

	text := item.Text
	if item.HTML || paste.LooksLikeHTML(text) {
		plain, err := paste.HTML{}.Convert(strings.NewReader(text))
		if err != nil {
			res.Error = err.Error()
			return res
		}
		text = plain
	}

	ex, err := extract.Extract(item.Source, text)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Type = ex.Type
	res.Fields = ex.Fields

	s, err := format.FormatWith(cfg, ex.Type, ex.Fields)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Citation = s
	return res
}

// WriteReport serializes rep to w as YAML or JSON.
func WriteReport(w io.Writer, rep Report, out types.OutputFormat) error {
	switch out {
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return nil
	case types.OutputYAML, "":
		data, err := yaml.Marshal(&rep)
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown output format %q", out)
}
