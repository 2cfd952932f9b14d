// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"testing"
	"time"

	"github.com/pdiddy/aglc-engine/pkg/types"
)

func TestJoinAuthors(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"  "}, ""},
		{[]string{"A"}, "A"},
		{[]string{"A", "B"}, "A and B"},
		{[]string{"A", "B", "C"}, "A, B and C"},
		{[]string{"A", "B", "C", "D"}, "A et al"},
		{[]string{"A", "", "B"}, "A and B"},
	}
	for _, tt := range tests {
		if got := JoinAuthors(tt.names); got != tt.want {
			t.Errorf("JoinAuthors(%q) = %q, want %q", tt.names, got, tt.want)
		}
	}
}

func TestJoinEditors(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"A"}, "A (ed)"},
		{[]string{"A", "B"}, "A and B (eds)"},
		{[]string{"A", "B", "C"}, "A, B and C (eds)"},
		{[]string{"A", "B", "C", "D"}, "A et al (eds)"},
	}
	for _, tt := range tests {
		if got := JoinEditors(tt.names); got != tt.want {
			t.Errorf("JoinEditors(%q) = %q, want %q", tt.names, got, tt.want)
		}
	}
	if got := JoinEditorsBare([]string{"A", "B"}); got != "A and B" {
		t.Errorf("JoinEditorsBare = %q, want %q", got, "A and B")
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"2020-03-05", "5 March 2020"},
		{"2006-01-02", "2 January 2006"},
		{"2020-03", "March 2020"},
		{"05 March 2020", "5 March 2020"},
		{"5 March 2020", "5 March 2020"},
		{"2020-03-05T10:00:00Z", "5 March 2020"},
		{"Spring 2020", "Spring 2020"},
		{"2020-13-45", "2020-13-45"},
		{"not a date", "not a date"},
		{"  12 May 2001 ", "12 May 2001"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime(time.Time{}); got != "" {
		t.Errorf("FormatTime(zero) = %q, want empty", got)
	}
	d := time.Date(1992, 6, 3, 0, 0, 0, 0, time.UTC)
	if got := FormatTime(d); got != "3 June 1992" {
		t.Errorf("FormatTime = %q, want %q", got, "3 June 1992")
	}
}

func TestRender(t *testing.T) {
	in := "<i>Mabo v Queensland (No 2)</i> (1992) 175 CLR 1."
	tests := []struct {
		markup types.Markup
		want   string
	}{
		{types.MarkupHTML, in},
		{"", in},
		{types.MarkupMarkdown, "*Mabo v Queensland (No 2)* (1992) 175 CLR 1."},
		{types.MarkupPlain, "Mabo v Queensland (No 2) (1992) 175 CLR 1."},
	}
	for _, tt := range tests {
		if got := Render(in, tt.markup); got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.markup, got, tt.want)
		}
	}
}

func TestFragmentHelpers(t *testing.T) {
	checks := []struct {
		name, got, want string
	}{
		{"roundYear plain", roundYear("1992"), "(1992)"},
		{"roundYear keeps round", roundYear("(1992)"), "(1992)"},
		{"roundYear keeps square", roundYear("[1992]"), "[1992]"},
		{"squareYear plain", squareYear("2020"), "[2020]"},
		{"squareYear replaces round", squareYear("(2020)"), "[2020]"},
		{"edition adds ed", edition("3rd"), "3rd ed"},
		{"edition keeps ed", edition("3rd ed"), "3rd ed"},
		{"volumeIssue", volumeIssue("93", "2"), "93(2)"},
		{"volumeIssue no issue", volumeIssue("93", ""), "93"},
		{"group skips blanks", group("", "a", " ", "b"), "(a, b)"},
		{"group empty", group("", ""), ""},
		{"shortTitle italic", shortTitle("Mabo", true), "('<i>Mabo</i>')"},
		{"shortTitle plain", shortTitle("Rule of Law", false), "('Rule of Law')"},
		{"square keeps brackets", square("[45]"), "[45]"},
		{"url strips brackets", url("<https://x.org>"), "<https://x.org>"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
}
