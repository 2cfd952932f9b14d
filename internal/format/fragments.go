// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"strings"

	"github.com/pdiddy/aglc-engine/pkg/types"
)

// fragments accumulates the pieces of one citation in render order.
// Blank pieces are skipped so a missing field never leaves decoration.
type fragments []string

func (p *fragments) add(parts ...string) {
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			*p = append(*p, s)
		}
	}
}

// italic wraps s in italic markup.
func italic(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return ""
	}
	return "<i>" + s + "</i>"
}

// quoted wraps s in single quotation marks.
func quoted(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return ""
	}
	return "'" + s + "'"
}

// paren wraps s in round brackets.
func paren(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return ""
	}
	return "(" + s + ")"
}

// square wraps s in square brackets unless it already has them.
func square(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return ""
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return s
	}
	return "[" + s + "]"
}

// prefix returns pre+s, or "" when s is blank.
func prefix(pre, s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return ""
	}
	return pre + s
}

// suffix returns s+post, or "" when s is blank.
func suffix(s, post string) string {
	if s = strings.TrimSpace(s); s == "" {
		return ""
	}
	return s + post
}

// words joins the non-blank parts with single spaces.
func words(parts ...string) string {
	var out []string
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, " ")
}

// group joins the non-blank parts with ", " inside one pair of round
// brackets. It returns "" when every part is blank.
func group(parts ...string) string {
	var out []string
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return ""
	}
	return "(" + strings.Join(out, ", ") + ")"
}

// startingPage renders the first page of a source. It carries a trailing
// comma only when a pinpoint follows.
func startingPage(page, pinpoint string) string {
	page = strings.TrimSpace(page)
	if page == "" {
		return ""
	}
	if strings.TrimSpace(pinpoint) != "" {
		return page + ","
	}
	return page
}

// roundYear wraps a year in round brackets. A year that already carries
// round or square brackets is kept as given.
func roundYear(y string) string {
	if y = strings.TrimSpace(y); y == "" {
		return ""
	}
	if isBracketed(y) {
		return y
	}
	return "(" + y + ")"
}

// squareYear renders a year in square brackets, replacing round ones.
func squareYear(y string) string {
	if y = strings.TrimSpace(y); y == "" {
		return ""
	}
	if isBracketed(y) {
		y = strings.TrimSpace(y[1 : len(y)-1])
	}
	return "[" + y + "]"
}

func isBracketed(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return (first == '(' && last == ')') || (first == '[' && last == ']')
}

// edition renders "N ed". A value already ending in "ed" is kept.
func edition(e string) string {
	if e = strings.TrimSpace(e); e == "" {
		return ""
	}
	lower := strings.ToLower(e)
	if strings.HasSuffix(lower, " ed") || strings.HasSuffix(lower, " edn") || lower == "ed" {
		return e
	}
	return e + " ed"
}

// volumeIssue attaches an issue number to a volume as "93(2)".
func volumeIssue(volume, issue string) string {
	volume, issue = strings.TrimSpace(volume), strings.TrimSpace(issue)
	if issue == "" {
		return volume
	}
	return volume + "(" + issue + ")"
}

// shortTitle renders a short title reference. Titles that are italic in
// full are italic in short form too.
func shortTitle(s string, italicize bool) string {
	if s = strings.TrimSpace(s); s == "" {
		return ""
	}
	if italicize {
		return "('" + italic(s) + "')"
	}
	return "('" + s + "')"
}

// url renders a web address in angle brackets.
func url(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return ""
	}
	return "<" + strings.Trim(s, "<>") + ">"
}

// date returns the named field rendered as an AGLC date.
func date(f types.Fields, name string) string {
	return FormatDate(f.Text(name))
}

// authors returns the named list field joined by the author rule.
func authors(f types.Fields, name string) string {
	return JoinAuthors(f.Names(name))
}
