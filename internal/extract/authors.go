// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

var (
	// andRe splits the final author from the rest: "A, B, and C" or "A & C".
	andRe = regexp.MustCompile(`,?\s+(?:and|&)\s+`)

	// etAlRe matches a trailing "et al" marker.
	etAlRe = regexp.MustCompile(`(?i),?\s*et\s+al\.?$`)
)

// ParseAuthors converts a database author string into display names.
//
// The first segment may be "Lastname, Firstname" optionally followed by
// further authors already in display order ("Raz, Joseph, Jane Doe").
// Every later " and " segment written "Lastname, Firstname" is flipped.
// Periods are removed from initials and "et al" is dropped.
func ParseAuthors(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ".,; ")
	s = etAlRe.ReplaceAllString(s, "")
	if s == "" {
		return nil
	}

	segments := andRe.Split(s, -1)
	var out []string

	first := strings.Split(segments[0], ",")
	if len(first) >= 2 {
		out = appendName(out, strings.TrimSpace(first[1])+" "+strings.TrimSpace(first[0]))
		for _, extra := range first[2:] {
			out = appendName(out, extra)
		}
	} else {
		out = appendName(out, segments[0])
	}

	for _, seg := range segments[1:] {
		if last, given, ok := strings.Cut(seg, ","); ok {
			seg = strings.TrimSpace(given) + " " + strings.TrimSpace(last)
		}
		out = appendName(out, seg)
	}
	return out
}

func appendName(out []string, name string) []string {
	name = strings.ReplaceAll(name, ".", " ")
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return out
	}
	return append(out, name)
}
