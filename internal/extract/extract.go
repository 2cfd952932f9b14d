// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract recovers structured citation fields from text pasted out
// of legal and academic databases. Each source has one parsing routine built
// from ordered pattern cascades; the first pattern that matches decides the
// citation type. Routines never fail: a miss or an internal fault yields the
// source's default citation type with whatever fields were recovered.
package extract

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/aglc-engine/pkg/types"
)

// ErrUnsupportedSource is matched by errors.Is for every UnsupportedSourceError.
var ErrUnsupportedSource = errors.New("unsupported source type")

// UnsupportedSourceError reports a source type with no parsing routine.
type UnsupportedSourceError struct {
	Source types.SourceType
}

func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf("unsupported source type: %q", string(e.Source))
}

// Is lets errors.Is match ErrUnsupportedSource.
func (e *UnsupportedSourceError) Is(target error) bool {
	return target == ErrUnsupportedSource
}

// routine parses normalized text for one source. parse writes fields into
// f as it finds them so a recovered fault still returns partial results.
type routine struct {
	fallback types.CitationType
	parse    func(text string, f types.Fields) types.CitationType
}

var routines = map[types.SourceType]routine{
	types.SourceWestlawCase:    {fallback: types.CaseUnreportedNoMediumNeutral, parse: parseWestlaw},
	types.SourceLexisNexisCase: {fallback: types.CaseUnreportedNoMediumNeutral, parse: parseLexis},
	types.SourceJadeCase:       {fallback: types.CaseUnreportedNoMediumNeutral, parse: parseJade},
	types.SourceSSRNArticle:    {fallback: types.JournalArticle, parse: parseSSRN},
	types.SourceScholarArticle: {fallback: types.JournalArticle, parse: parseScholarArticle},
	types.SourceScholarBook:    {fallback: types.Book, parse: parseScholarBook},
}

// Sources returns the supported source types in lexical order.
func Sources() []types.SourceType {
	out := make([]types.SourceType, 0, len(routines))
	for s := range routines {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Extract parses text pasted from src into a citation type and fields.
// Only an unknown src produces an error.
func Extract(src types.SourceType, text string) (types.ExtractionResult, error) {
	r, ok := routines[src]
	if !ok {
		return types.ExtractionResult{}, &UnsupportedSourceError{Source: src}
	}
	return run(r, NormalizeText(text)), nil
}

func run(r routine, text string) (res types.ExtractionResult) {
	f := types.Fields{}
	defer func() {
		if recover() != nil {
			res = types.ExtractionResult{Type: r.fallback, Fields: f}
		}
	}()
	t := r.parse(text, f)
	if t == "" {
		t = r.fallback
	}
	return types.ExtractionResult{Type: t, Fields: f}
}

var (
	quoteReplacer = strings.NewReplacer(
		"‘", "'", "’", "'", "‚", "'", "‛", "'",
		"“", `"`, "”", `"`, "„", `"`, "‟", `"`,
		"–", "-", "—", "-", "−", "-",
	)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeText prepares pasted text for matching: Unicode compatibility
// forms are folded (non-breaking spaces become spaces), typographic quotes
// and dashes become ASCII and whitespace runs collapse to one space.
func NormalizeText(s string) string {
	s = norm.NFKC.String(s)
	s = quoteReplacer.Replace(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// blank sets every name in f to the empty string unless already present.
func blank(f types.Fields, names ...string) {
	for _, n := range names {
		if _, ok := f[n]; !ok {
			f[n] = types.String("")
		}
	}
}

// set stores a trimmed scalar.
func set(f types.Fields, name, value string) {
	f[name] = types.String(strings.TrimSpace(value))
}

// group returns submatch i of m, or "" when it did not participate.
func group(s string, loc []int, i int) string {
	if 2*i+1 >= len(loc) || loc[2*i] < 0 {
		return ""
	}
	return s[loc[2*i]:loc[2*i+1]]
}
