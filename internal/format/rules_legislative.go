// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import "github.com/pdiddy/aglc-engine/pkg/types"

// legislationRule renders an Act or delegated instrument: the title and
// year are italicized together and followed by the jurisdiction.
var legislationRule = rule{
	params: []string{"title", "year", "jurisdiction", "pinpoint", "short_title"},
	build: func(f types.Fields) []string {
		var p fragments
		p.add(
			italic(words(f.Text("title"), f.Text("year"))),
			paren(f.Text("jurisdiction")),
			f.Text("pinpoint"),
			shortTitle(f.Text("short_title"), true),
		)
		return p
	},
}

// legislativeRules covers legislation, parliamentary and government
// materials (AGLC4 Part II ch 3 and ch 7).
var legislativeRules = map[types.CitationType]rule{
	types.Legislation:          legislationRule,
	types.DelegatedLegislation: legislationRule,

	// Bills are not italicized.
	types.Bill: {
		params: []string{"title", "year", "jurisdiction", "pinpoint", "short_title"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				words(f.Text("title"), f.Text("year")),
				paren(f.Text("jurisdiction")),
				f.Text("pinpoint"),
				shortTitle(f.Text("short_title"), false),
			)
			return p
		},
	},

	types.ExplanatoryMemorandum: {
		params: []string{"explanatory_type", "bill_citation", "pinpoint", "short_title"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(f.Text("explanatory_type"), ","),
				f.Text("bill_citation"),
				f.Text("pinpoint"),
				shortTitle(f.Text("short_title"), false),
			)
			return p
		},
	},

	types.Hansard: {
		params: []string{"jurisdiction", "chamber", "full_date", "pinpoint", "name_of_speaker"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(f.Text("jurisdiction"), ","),
				"<i>Parliamentary Debates</i>,",
				suffix(f.Text("chamber"), ","),
				suffix(date(f, "full_date"), ","),
				f.Text("pinpoint"),
				paren(f.Text("name_of_speaker")),
			)
			return p
		},
	},

	types.Gazette: {
		params: []string{"authors", "title_of_notice", "jurisdiction", "gazette_title", "gazette_number", "full_date", "starting_page", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				quoted(f.Text("title_of_notice")),
				suffix(prefix("in ", f.Text("jurisdiction")), ","),
				suffix(italic(f.Text("gazette_title")), ","),
				suffix(prefix("No ", f.Text("gazette_number")), ","),
				date(f, "full_date"),
				prefix(", ", f.Text("starting_page")),
				prefix(", ", f.Text("pinpoint")),
			)
			return p
		},
	},

	types.OrderOrRuling: {
		params: []string{"instrumentality_officer", "instrument_title", "document_number", "full_date", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(f.Text("instrumentality_officer"), ","),
				italic(f.Text("instrument_title")),
				group(f.Text("document_number"), date(f, "full_date")),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	// A practice direction cites either a report series or a date after
	// the title; the title takes a comma only in the dated form.
	types.CourtPracticeDirection: {
		params: []string{"court", "practice_direction", "number_identifier", "title", "citation_report_series", "full_date", "pinpoint"},
		build: func(f types.Fields) []string {
			series := f.Text("citation_report_series")
			title := italic(f.Text("title"))
			if series == "" && f.Has("full_date") {
				title = suffix(title, ",")
			}
			var p fragments
			p.add(
				suffix(f.Text("court"), ","),
				italic(f.Text("practice_direction")),
				suffix(italic(f.Text("number_identifier")), ":"),
				title,
				series,
				date(f, "full_date"),
				prefix(", ", f.Text("pinpoint")),
			)
			return p
		},
	},

	types.DelegatedNonGovernmentLegislation: {
		params: []string{"issuing_body", "title", "full_date", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(f.Text("issuing_body"), ","),
				italic(f.Text("title")),
				paren(prefix("at ", date(f, "full_date"))),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.ConstitutionalConventionDebates: {
		params: []string{"title", "location", "full_date", "pinpoint", "name_of_speaker"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(italic(f.Text("title")), ","),
				suffix(f.Text("location"), ","),
				date(f, "full_date"),
				prefix(", ", f.Text("pinpoint")),
				paren(f.Text("name_of_speaker")),
			)
			return p
		},
	},

	types.EvidenceToParliamentaryCommittee: {
		params: []string{"committee", "legislature", "location", "full_date", "pinpoint", "name_of_speaker"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(prefix("Evidence to ", f.Text("committee")), ","),
				suffix(f.Text("legislature"), ","),
				suffix(f.Text("location"), ","),
				date(f, "full_date"),
				prefix(", ", f.Text("pinpoint")),
				paren(f.Text("name_of_speaker")),
			)
			return p
		},
	},

	types.Treaty: {
		params: []string{"title", "parties_names", "date_opened", "signature_date", "treaty_series", "date_in_force", "pinpoint", "short_title"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(italic(f.Text("title")), ","),
				suffix(JoinAuthors(f.Names("parties_names")), ","),
				suffix(prefix("opened for signature ", date(f, "date_opened")), ","),
				suffix(prefix("signed ", date(f, "signature_date")), ","),
				f.Text("treaty_series"),
				paren(prefix("entered into force ", date(f, "date_in_force"))),
				f.Text("pinpoint"),
				shortTitle(f.Text("short_title"), true),
			)
			return p
		},
	},
}
