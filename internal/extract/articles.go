// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/pdiddy/aglc-engine/pkg/types"
)

// articleFields lists the fields reported for a journal article.
var articleFields = []string{
	"authors", "title", "year", "journal", "volume", "issue", "starting_page", "ending_page",
}

// journalCascade reads the journal, volume, issue, pages and year that
// follow an article title. Patterns run from most to least specific so a
// loose pattern never swallows fields a stricter one would separate.
var journalCascade = cascade{
	{
		name: "volume_journal_page_year",
		kind: types.JournalArticle,
		// 24 Mich. St. Int'l L. Rev. 449 (2016)
		// Captures: (1) volume, (2) journal, (3) first page, (4) last page, (5) year
		re: regexp.MustCompile(`(\d+)\s+([^,]+?)\s+(\d+)(?:-(\d+))?\s*\((\d{4})\)`),
		apply: func(s string, loc []int, f types.Fields) {
			set(f, "volume", group(s, loc, 1))
			set(f, "journal", group(s, loc, 2))
			set(f, "starting_page", group(s, loc, 3))
			set(f, "ending_page", group(s, loc, 4))
			set(f, "year", group(s, loc, 5))
		},
	},
	{
		name: "journal_vol_no_pages_year",
		kind: types.JournalArticle,
		// Law & Social Inquiry, vol. 44, no 4: 957-986, 2019
		// Captures: (1) journal, (2) volume, (3) issue, (4) first page, (5) last page, (6) year
		re: regexp.MustCompile(`(?i)([^,]+),\s*(?:vol\.|volume)\s*(\d+)(?:,\s*(?:no\.?|number)\s*(\d+))?:\s*(\d+)(?:-(\d+))?,\s*(\d{4})`),
		apply: func(s string, loc []int, f types.Fields) {
			set(f, "journal", group(s, loc, 1))
			set(f, "volume", group(s, loc, 2))
			set(f, "issue", group(s, loc, 3))
			set(f, "starting_page", group(s, loc, 4))
			set(f, "ending_page", group(s, loc, 5))
			set(f, "year", group(s, loc, 6))
		},
	},
	{
		name: "journal_vol_year",
		kind: types.JournalArticle,
		// The Hague Journal on the Rule of Law, Vol. 1, No. 2, 2010
		// Captures: (1) journal, (2) volume, (3) issue, (4) year
		re: regexp.MustCompile(`(?i)([^,]+),\s*(?:vol\.|volume)\s*(\d+)(?:,\s*(?:no\.?|number|issue)\s*(\d+))?,\s*(?:[A-Za-z]+\s+)?(\d{4})`),
		apply: func(s string, loc []int, f types.Fields) {
			set(f, "journal", group(s, loc, 1))
			set(f, "volume", group(s, loc, 2))
			set(f, "issue", group(s, loc, 3))
			set(f, "year", group(s, loc, 4))
		},
	},
	{
		name: "journal_year",
		kind: types.JournalArticle,
		// Hague Journal on The Rule of Law, 2024
		// Captures: (1) journal, (2) year
		re: regexp.MustCompile(`([^,]+),\s*(\d{4})\b`),
		apply: func(s string, loc []int, f types.Fields) {
			set(f, "journal", group(s, loc, 1))
			set(f, "year", group(s, loc, 2))
		},
	},
}

// chicagoArticle matches the Chicago form Google Scholar exports:
// Law Quarterly Review 93, no. 2 (1977): 195-211
var chicagoArticle = pattern{
	name: "chicago",
	kind: types.JournalArticle,
	// Captures: (1) volume, (2) issue, (3) year, (4) first page, (5) last page
	re: regexp.MustCompile(`(?i)(\d+)(?:,\s*(?:no\.|issue)\s*(?:supplement\s*)?(\d+))?\s*\((\d{4})\):\s*(\d+)(?:-(\d+))?`),
	apply: func(s string, loc []int, f types.Fields) {
		set(f, "journal", trimPunct(s[:loc[0]]))
		set(f, "volume", group(s, loc, 1))
		set(f, "issue", group(s, loc, 2))
		set(f, "year", group(s, loc, 3))
		set(f, "starting_page", group(s, loc, 4))
		set(f, "ending_page", group(s, loc, 5))
	},
}

var (
	// ssrnDateRe matches the posting date SSRN places after a title.
	// Captures: (1) date
	ssrnDateRe = regexp.MustCompile(`\(((?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4})\)`)

	// ssrnURLRe matches an SSRN abstract link.
	// Captures: (1) abstract id
	ssrnURLRe = regexp.MustCompile(`https?://(?:papers\.)?ssrn\.com/(?:abstract=|sol3/papers\.cfm\?abstract_id=)(\d+)`)

	// doiRe matches a DOI link.
	// Captures: (1) DOI
	doiRe = regexp.MustCompile(`https?://(?:dx\.)?doi\.org/(\S+)`)

	// availableRe marks the start of SSRN's trailing availability note.
	availableRe = regexp.MustCompile(`(?i)\bavailable at\b`)
)

// parseSSRN reads SSRN's suggested citation:
// Raz, Joseph, The Rule of Law (January 1, 1977). Law Quarterly Review, Vol. 93, 1977, Available at SSRN: https://ssrn.com/abstract=1
func parseSSRN(text string, f types.Fields) types.CitationType {
	blank(f, articleFields...)
	blank(f, "abstract_id", "url", "doi", "posted_date")

	if m := ssrnURLRe.FindStringSubmatch(text); m != nil {
		set(f, "abstract_id", m[1])
		set(f, "url", "https://ssrn.com/abstract="+m[1])
	}
	if m := doiRe.FindStringSubmatch(text); m != nil {
		set(f, "doi", strings.TrimRight(m[1], ".,"))
	}

	loc := ssrnDateRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return types.JournalArticle
	}

	posted := ""
	if t, err := dateparse.ParseAny(group(text, loc, 1)); err == nil {
		posted = t.Format("2006-01-02")
		set(f, "posted_date", posted)
	}

	head := strings.TrimSpace(text[:loc[0]])
	if parts := strings.Split(head, ", "); len(parts) >= 2 {
		set(f, "title", strings.Trim(parts[len(parts)-1], `"' `))
		f["authors"] = types.List(ParseAuthors(strings.Join(parts[:len(parts)-1], ", "))...)
	} else {
		set(f, "title", strings.Trim(head, `"' `))
	}

	rest := strings.TrimLeft(strings.TrimSpace(text[loc[1]:]), ". ")
	if a := availableRe.FindStringIndex(rest); a != nil {
		rest = rest[:a[0]]
	}
	journalCascade.apply(f, rest)

	if !f.Has("year") && posted != "" {
		set(f, "year", posted[:4])
	}
	return types.JournalArticle
}

// parseScholarArticle reads a Google Scholar Chicago citation:
// Raz, Joseph. "The rule of law and its virtue." Law Quarterly Review 93 (1977): 195-211.
func parseScholarArticle(text string, f types.Fields) types.CitationType {
	blank(f, articleFields...)

	parts := strings.SplitN(text, `"`, 3)
	rest := text
	if len(parts) == 3 {
		f["authors"] = types.List(ParseAuthors(parts[0])...)
		set(f, "title", trimPunct(parts[1]))
		rest = strings.TrimLeft(strings.TrimSpace(parts[2]), ".,")
	}

	c := append(cascade{chicagoArticle}, journalCascade...)
	c.apply(f, rest)
	return types.JournalArticle
}

// trimPunct trims whitespace and trailing sentence punctuation.
func trimPunct(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".,;: ")
}
