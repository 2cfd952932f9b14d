// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import "github.com/pdiddy/aglc-engine/pkg/types"

var miscRules = map[types.CitationType]rule{
	types.IntellectualPropertyMaterial: {
		params: []string{"jurisdiction_code", "ip_type", "additional_info", "identification_number", "filing_date", "registration_status", "registration_date"},
		build: func(f types.Fields) []string {
			mark := italic(words(
				f.Text("jurisdiction_code"),
				f.Text("ip_type"),
				f.Text("additional_info"),
				prefix("No ", f.Text("identification_number")),
			))
			filed := prefix("filed on ", date(f, "filing_date"))
			if filed != "" {
				mark = suffix(mark, ",")
			}
			var p fragments
			p.add(
				mark,
				filed,
				paren(words(f.Text("registration_status"), prefix("on ", date(f, "registration_date")))),
			)
			return p
		},
	},

	types.ConstitutiveDocument: {
		params: []string{"document_type", "company_name", "full_date", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(italic(f.Text("document_type")), ","),
				f.Text("company_name"),
				paren(prefix("at ", date(f, "full_date"))),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.WrittenCorrespondence: {
		params: []string{"correspondence_type", "authors", "recipient", "full_date", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				f.Text("correspondence_type"),
				suffix(words(prefix("from ", authors(f, "authors")), prefix("to ", f.Text("recipient"))), ","),
				date(f, "full_date"),
				prefix(", ", f.Text("pinpoint")),
			)
			return p
		},
	},
}
