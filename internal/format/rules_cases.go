// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import "github.com/pdiddy/aglc-engine/pkg/types"

// caseRules covers reported and unreported judgments and other court
// materials (AGLC4 Part II ch 2).
var caseRules = map[types.CitationType]rule{
	types.CaseReported: {
		params: []string{"case_name", "year", "volume", "law_report_series", "starting_page", "pinpoint", "short_title"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				italic(f.Text("case_name")),
				roundYear(f.Text("year")),
				f.Text("volume"),
				f.Text("law_report_series"),
				startingPage(f.Text("starting_page"), f.Text("pinpoint")),
				f.Text("pinpoint"),
				shortTitle(f.Text("short_title"), true),
			)
			return p
		},
	},

	types.CaseUnreportedMediumNeutral: {
		params: []string{"case_name", "year", "unique_court_identifier", "judgment_number", "pinpoint", "short_title"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				italic(f.Text("case_name")),
				squareYear(f.Text("year")),
				f.Text("unique_court_identifier"),
				startingPage(f.Text("judgment_number"), f.Text("pinpoint")),
				square(f.Text("pinpoint")),
				shortTitle(f.Text("short_title"), true),
			)
			return p
		},
	},

	types.CaseUnreportedNoMediumNeutral: {
		params: []string{"case_name", "court", "judge", "full_date", "pinpoint", "short_title"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				italic(f.Text("case_name")),
				group(f.Text("court"), f.Text("judge"), date(f, "full_date")),
				f.Text("pinpoint"),
				shortTitle(f.Text("short_title"), true),
			)
			return p
		},
	},

	types.Proceeding: {
		params: []string{"case_name", "court", "proceeding_number", "full_date"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				italic(f.Text("case_name")),
				group(f.Text("court"), f.Text("proceeding_number"), prefix("commenced ", date(f, "full_date"))),
			)
			return p
		},
	},

	types.CourtOrder: {
		params: []string{"judicial_officers", "case_name", "court", "proceeding_number", "full_date"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				prefix("Order of ", JoinAuthors(f.Names("judicial_officers"))),
				prefix("in ", italic(f.Text("case_name"))),
				group(f.Text("court"), f.Text("proceeding_number"), date(f, "full_date")),
			)
			return p
		},
	},

	types.Arbitration: {
		params: []string{"case_name", "award_description", "forum", "case_award_number", "full_date", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				italic(f.Text("case_name")),
				group(f.Text("award_description"), f.Text("forum"), f.Text("case_award_number"), date(f, "full_date")),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.TranscriptOfProceedings: {
		params: []string{"case_name", "court", "proceeding_number", "judicial_officers", "full_date", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				"Transcript of Proceedings,",
				italic(f.Text("case_name")),
				group(f.Text("court"), f.Text("proceeding_number"), JoinAuthors(f.Names("judicial_officers")), date(f, "full_date")),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.HighCourtTranscript: {
		params: []string{"case_name", "year", "number", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				"Transcript of Proceedings,",
				italic(f.Text("case_name")),
				squareYear(f.Text("year")),
				"HCATrans",
				f.Text("number"),
				prefix(", ", f.Text("pinpoint")),
			)
			return p
		},
	},

	types.Submission: {
		params: []string{"party_name", "title", "case_name", "proceeding_number", "full_date", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(f.Text("party_name"), ","),
				quoted(f.Text("title")),
				suffix(prefix("Submission in ", italic(f.Text("case_name"))), ","),
				suffix(f.Text("proceeding_number"), ","),
				date(f, "full_date"),
				prefix(", ", f.Text("pinpoint")),
			)
			return p
		},
	},
}
