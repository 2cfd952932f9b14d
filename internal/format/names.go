// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import "strings"

// JoinAuthors joins contributor names the AGLC way: one name as is, two
// joined by "and", three as "A, B and C", and four or more as the first
// name followed by "et al".
func JoinAuthors(names []string) string {
	var clean []string
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			clean = append(clean, n)
		}
	}
	switch len(clean) {
	case 0:
		return ""
	case 1:
		return clean[0]
	case 2:
		return clean[0] + " and " + clean[1]
	case 3:
		return clean[0] + ", " + clean[1] + " and " + clean[2]
	default:
		return clean[0] + " et al"
	}
}

// JoinEditors joins editor names like JoinAuthors and appends "(ed)" for a
// single editor or "(eds)" for several.
func JoinEditors(names []string) string {
	joined := JoinAuthors(names)
	if joined == "" {
		return ""
	}
	if countNames(names) == 1 {
		return joined + " (ed)"
	}
	return joined + " (eds)"
}

// JoinEditorsBare joins editor names without the role suffix, for forms
// where the role is introduced by a leading "ed".
func JoinEditorsBare(names []string) string {
	return JoinAuthors(names)
}

func countNames(names []string) int {
	n := 0
	for _, s := range names {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}
