// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/aglc-engine/pkg/types"
)

var (
	// bookVolumeRe matches a volume marker: Vol. 2
	// Captures: (1) volume
	bookVolumeRe = regexp.MustCompile(`(?i)\bvol\.\s*(\d+)`)

	// trailingYearRe matches the publication year at the end of a citation.
	// Captures: (1) year
	trailingYearRe = regexp.MustCompile(`,?\s*(\d{4})\s*\.?$`)

	// placeRe matches a "Place:" prefix before the publisher.
	placeRe = regexp.MustCompile(`^[^:]+:\s*`)
)

// honorifics end in a period without ending a sentence.
var honorifics = []string{"Mr", "Dr", "Ms", "Jr", "Sr", "St"}

// parseScholarBook reads a Google Scholar Chicago book citation:
// Hart, H. L. A. The Concept of Law. Oxford: Clarendon Press, 1961.
func parseScholarBook(text string, f types.Fields) types.CitationType {
	blank(f, "authors", "title", "volume", "publisher", "year")

	cut := sentenceEnd(text, 0)
	if cut < 0 {
		return types.Book
	}
	f["authors"] = types.List(ParseAuthors(text[:cut])...)

	rest := strings.TrimSpace(text[cut+1:])
	titleEnd := strings.Index(rest, ".")
	if titleEnd < 0 {
		set(f, "title", rest)
		return types.Book
	}
	set(f, "title", rest[:titleEnd])
	rest = strings.TrimSpace(rest[titleEnd+1:])

	if loc := bookVolumeRe.FindStringSubmatchIndex(rest); loc != nil {
		set(f, "volume", group(rest, loc, 1))
		rest = strings.TrimSpace(rest[:loc[0]] + " " + rest[loc[1]:])
		rest = strings.TrimLeft(whitespaceRe.ReplaceAllString(rest, " "), ". ")
	}

	if loc := trailingYearRe.FindStringSubmatchIndex(rest); loc != nil {
		set(f, "year", group(rest, loc, 1))
		publisher := strings.Trim(strings.TrimSpace(rest[:loc[0]]), ".,")
		set(f, "publisher", placeRe.ReplaceAllString(publisher, ""))
	}
	return types.Book
}

// sentenceEnd returns the index of the first ". " at or after from that
// closes a sentence rather than an initial or an honorific, or -1.
func sentenceEnd(s string, from int) int {
	for i := from; i < len(s); i++ {
		if s[i] != '.' {
			continue
		}
		if i+1 < len(s) && s[i+1] != ' ' {
			continue
		}
		// An initial ends the author list only after an inverted
		// "Lastname, F. M." name, and only at the last initial.
		if i > 0 && isInitial(s, i) && (nextIsInitial(s, i) || !strings.Contains(s[:i], ",")) {
			continue
		}
		if hasHonorific(s[:i]) {
			continue
		}
		return i
	}
	return -1
}

// isInitial reports whether the period at i follows a lone capital letter.
func isInitial(s string, i int) bool {
	prev := rune(s[i-1])
	if !unicode.IsUpper(prev) {
		return false
	}
	return i == 1 || !unicode.IsLetter(rune(s[i-2]))
}

// nextIsInitial reports whether the token after position i is another
// initial such as "L.".
func nextIsInitial(s string, i int) bool {
	rest := strings.TrimLeft(s[i+1:], " ")
	return len(rest) >= 2 && unicode.IsUpper(rune(rest[0])) && rest[1] == '.'
}

func hasHonorific(s string) bool {
	for _, h := range honorifics {
		if strings.HasSuffix(s, h) {
			return true
		}
	}
	return false
}
