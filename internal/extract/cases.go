// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/aglc-engine/pkg/types"
)

// Case citation markers shared by the Westlaw, LexisNexis and Jade routines.
var (
	// yearTokenRe matches a bracketed year, the boundary after a case name.
	yearTokenRe = regexp.MustCompile(`[\[(]\d{4}[\])]`)

	// bcNumberRe matches a LexisNexis unreported judgment number: BC202012345
	bcNumberRe = regexp.MustCompile(`\bBC\d{6,}`)

	// pinpointRe matches a pinpoint directly after a citation: ", 42" or ", [45]"
	// Captures: (1) page or paragraph without brackets
	pinpointRe = regexp.MustCompile(`^\s*,\s*\[?(\d+(?:-\d+)?)\]?`)

	// longDateRe matches a day-month-year date: 5 March 2020
	longDateRe = regexp.MustCompile(`\b\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\b`)

	// parenGroupRe matches one innermost parenthesized group.
	// Captures: (1) contents
	parenGroupRe = regexp.MustCompile(`\(([^()]*)\)`)

	// jadeRe matches a Jade database identifier: [2023] JADE 123
	// Captures: (1) year, (2) identifier
	jadeRe = regexp.MustCompile(`\[(\d{4})\]\s*JADE\s*(\d+)`)
)

// caseFields lists the fields reported for each case citation type.
var caseFields = map[types.CitationType][]string{
	types.CaseReported:                  {"case_name", "year", "volume", "law_report_series", "starting_page", "pinpoint"},
	types.CaseUnreportedMediumNeutral:   {"case_name", "year", "unique_court_identifier", "judgment_number", "pinpoint"},
	types.CaseUnreportedNoMediumNeutral: {"case_name", "court", "judge", "full_date", "pinpoint"},
}

// caseCascade decides between a reported citation, a medium neutral
// citation and an unreported judgment, in that order.
var caseCascade = cascade{
	{
		name: "reported",
		kind: types.CaseReported,
		// (1992) 175 CLR 1, (2004) 61 NSWLR 1, (1996) 1 Qd R 1
		// Captures: (1) year, (2) volume, (3) series, (4) starting page
		re: regexp.MustCompile(`\((\d{4})\)\s*(\d+)\s+([A-Z][A-Za-z]*(?:\s+[A-Z][A-Za-z]*)*)\s+(\d+)`),
		apply: func(s string, loc []int, f types.Fields) {
			set(f, "year", "("+group(s, loc, 1)+")")
			set(f, "volume", group(s, loc, 2))
			set(f, "law_report_series", group(s, loc, 3))
			set(f, "starting_page", group(s, loc, 4))
			setPinpoint(f, s[loc[1]:])
		},
	},
	{
		name: "medium_neutral",
		kind: types.CaseUnreportedMediumNeutral,
		// [2020] NSWSC 123, [1992] HCA 23
		// Captures: (1) year, (2) court identifier, (3) judgment number
		re: regexp.MustCompile(`\[(\d{4})\]\s*([A-Z][A-Za-z]*)\s+(\d+)`),
		reject: func(s string, loc []int) bool {
			return group(s, loc, 2) == "JADE"
		},
		apply: func(s string, loc []int, f types.Fields) {
			set(f, "year", "["+group(s, loc, 1)+"]")
			set(f, "unique_court_identifier", group(s, loc, 2))
			set(f, "judgment_number", group(s, loc, 3))
			setPinpoint(f, s[loc[1]:])
		},
	},
	{
		name:  "unreported",
		kind:  types.CaseUnreportedNoMediumNeutral,
		re:    regexp.MustCompile(`^`),
		apply: func(s string, _ []int, f types.Fields) { parseUnreported(s, f) },
	},
}

func parseWestlaw(text string, f types.Fields) types.CitationType {
	return parseCase(text, f)
}

func parseLexis(text string, f types.Fields) types.CitationType {
	return parseCase(text, f)
}

// parseJade additionally records the Jade identifier, which is never
// treated as a court.
func parseJade(text string, f types.Fields) types.CitationType {
	set(f, "jade_identifier", "")
	if loc := jadeRe.FindStringSubmatchIndex(text); loc != nil {
		set(f, "jade_identifier", group(text, loc, 2))
	}
	return parseCase(text, f)
}

// parseCase splits parallel citations on ";", takes the case name from
// the first one and runs the case cascade over all of them.
func parseCase(text string, f types.Fields) types.CitationType {
	parts := splitParts(text)
	if len(parts) == 0 {
		blank(f, caseFields[types.CaseUnreportedNoMediumNeutral]...)
		return types.CaseUnreportedNoMediumNeutral
	}
	set(f, "case_name", caseName(parts[0]))

	kind, _ := caseCascade.apply(f, parts...)
	blank(f, caseFields[kind]...)
	return kind
}

func splitParts(text string) []string {
	var parts []string
	for _, p := range strings.Split(text, ";") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// caseName returns the text before the first bracketed year. Without a
// year it stops at a LexisNexis BC number or at the court details group.
func caseName(s string) string {
	end := len(s)
	switch {
	case yearTokenRe.MatchString(s):
		end = yearTokenRe.FindStringIndex(s)[0]
	case bcNumberRe.MatchString(s):
		end = bcNumberRe.FindStringIndex(s)[0]
	default:
		if loc := detailsGroup(s); loc != nil {
			end = loc[0]
		}
	}
	return strings.TrimRight(strings.TrimSpace(s[:end]), ", ")
}

// detailsGroup finds the parenthesized court details of an unreported
// judgment: the first group holding a date or a comma.
func detailsGroup(s string) []int {
	for _, loc := range parenGroupRe.FindAllStringSubmatchIndex(s, -1) {
		inner := group(s, loc, 1)
		if longDateRe.MatchString(inner) || strings.Contains(inner, ",") {
			return loc
		}
	}
	return nil
}

// parseUnreported reads "(Court, Judge, 5 March 2020)" details.
func parseUnreported(s string, f types.Fields) {
	date := longDateRe.FindString(s)
	set(f, "full_date", date)

	loc := detailsGroup(s)
	if loc == nil {
		return
	}
	var details []string
	for _, p := range strings.Split(group(s, loc, 1), ",") {
		p = strings.TrimSpace(p)
		if p == "" || p == date || strings.EqualFold(p, "unreported") {
			continue
		}
		details = append(details, p)
	}
	if len(details) > 0 {
		set(f, "court", details[0])
	}
	if len(details) > 1 {
		set(f, "judge", details[1])
	}
	setPinpoint(f, s[loc[1]:])
}

func setPinpoint(f types.Fields, rest string) {
	if m := pinpointRe.FindStringSubmatch(rest); m != nil {
		set(f, "pinpoint", m[1])
	}
}
