// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/aglc-engine/internal/format"
	"github.com/pdiddy/aglc-engine/pkg/types"
)

func TestExtractUnsupportedSource(t *testing.T) {
	_, err := Extract("bluebook", "anything")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedSource))

	var use *UnsupportedSourceError
	require.True(t, errors.As(err, &use))
	assert.Equal(t, types.SourceType("bluebook"), use.Source)
}

func TestExtractCases(t *testing.T) {
	tests := []struct {
		name     string
		source   types.SourceType
		text     string
		wantType types.CitationType
		want     map[string]string
	}{
		{
			name:     "westlaw medium neutral",
			source:   types.SourceWestlawCase,
			text:     "Smith v Jones [2020] NSWSC 123",
			wantType: types.CaseUnreportedMediumNeutral,
			want: map[string]string{
				"case_name":               "Smith v Jones",
				"year":                    "[2020]",
				"unique_court_identifier": "NSWSC",
				"judgment_number":         "123",
				"pinpoint":                "",
			},
		},
		{
			name:     "westlaw medium neutral with paragraph pinpoint",
			source:   types.SourceWestlawCase,
			text:     "Smith v Jones [2020] NSWSC 123, [45]",
			wantType: types.CaseUnreportedMediumNeutral,
			want: map[string]string{
				"case_name": "Smith v Jones",
				"pinpoint":  "45",
			},
		},
		{
			name:     "westlaw reported",
			source:   types.SourceWestlawCase,
			text:     "Mabo v Queensland (No 2) (1992) 175 CLR 1, 42",
			wantType: types.CaseReported,
			want: map[string]string{
				"case_name":         "Mabo v Queensland (No 2)",
				"year":              "(1992)",
				"volume":            "175",
				"law_report_series": "CLR",
				"starting_page":     "1",
				"pinpoint":          "42",
			},
		},
		{
			name:     "reported wins over medium neutral in the same text",
			source:   types.SourceWestlawCase,
			text:     "Roe v Doe [2004] HCA 37; (2004) 218 ALR 1",
			wantType: types.CaseReported,
			want: map[string]string{
				"case_name":         "Roe v Doe",
				"year":              "(2004)",
				"volume":            "218",
				"law_report_series": "ALR",
				"starting_page":     "1",
			},
		},
		{
			name:     "lexis parallel citations",
			source:   types.SourceLexisNexisCase,
			text:     "Mabo v Queensland (No 2) (1992) 175 CLR 1; 107 ALR 1; BC9202681",
			wantType: types.CaseReported,
			want: map[string]string{
				"case_name":         "Mabo v Queensland (No 2)",
				"volume":            "175",
				"law_report_series": "CLR",
			},
		},
		{
			name:     "lexis multi word series",
			source:   types.SourceLexisNexisCase,
			text:     "R v Brown (1996) 1 Qd R 1",
			wantType: types.CaseReported,
			want: map[string]string{
				"case_name":         "R v Brown",
				"law_report_series": "Qd R",
			},
		},
		{
			name:     "lexis unreported BC number",
			source:   types.SourceLexisNexisCase,
			text:     "Smith v Jones, BC202012345",
			wantType: types.CaseUnreportedNoMediumNeutral,
			want: map[string]string{
				"case_name": "Smith v Jones",
				"court":     "",
				"full_date": "",
			},
		},
		{
			name:     "unreported with court details",
			source:   types.SourceWestlawCase,
			text:     "R v Smith (Supreme Court of Victoria, Smith J, 05 March 2020), 12",
			wantType: types.CaseUnreportedNoMediumNeutral,
			want: map[string]string{
				"case_name": "R v Smith",
				"court":     "Supreme Court of Victoria",
				"judge":     "Smith J",
				"full_date": "05 March 2020",
				"pinpoint":  "12",
			},
		},
		{
			name:     "jade identifier is not a court",
			source:   types.SourceJadeCase,
			text:     "Smith v Jones [2023] JADE 456; [2023] NSWCA 12",
			wantType: types.CaseUnreportedMediumNeutral,
			want: map[string]string{
				"case_name":               "Smith v Jones",
				"year":                    "[2023]",
				"unique_court_identifier": "NSWCA",
				"judgment_number":         "12",
				"jade_identifier":         "456",
			},
		},
		{
			name:     "jade only falls back to unreported",
			source:   types.SourceJadeCase,
			text:     "Smith v Jones [2023] JADE 456",
			wantType: types.CaseUnreportedNoMediumNeutral,
			want: map[string]string{
				"case_name":       "Smith v Jones",
				"jade_identifier": "456",
			},
		},
		{
			name:     "non-breaking spaces are folded",
			source:   types.SourceWestlawCase,
			text:     "Smith v Jones\u00a0[2020]\u00a0NSWSC\u00a0123",
			wantType: types.CaseUnreportedMediumNeutral,
			want: map[string]string{
				"unique_court_identifier": "NSWSC",
				"judgment_number":         "123",
			},
		},
		{
			name:     "empty text",
			source:   types.SourceWestlawCase,
			text:     "   ",
			wantType: types.CaseUnreportedNoMediumNeutral,
			want: map[string]string{
				"case_name": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.source, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, got.Type)
			for k, v := range tt.want {
				val, ok := got.Fields[k]
				assert.True(t, ok, "field %s should be present", k)
				assert.Equal(t, v, val.Text(), "field %s", k)
			}
		})
	}
}

func TestExtractArticles(t *testing.T) {
	tests := []struct {
		name    string
		source  types.SourceType
		text    string
		authors []string
		want    map[string]string
	}{
		{
			name:    "ssrn with volume and year",
			source:  types.SourceSSRNArticle,
			text:    "Raz, Joseph, The Rule of Law and Its Virtue (January 1, 1977). Law Quarterly Review, Vol. 93, 1977, Available at SSRN: https://ssrn.com/abstract=1234567 or http://dx.doi.org/10.2139/ssrn.1234567",
			authors: []string{"Joseph Raz"},
			want: map[string]string{
				"title":       "The Rule of Law and Its Virtue",
				"journal":     "Law Quarterly Review",
				"volume":      "93",
				"year":        "1977",
				"abstract_id": "1234567",
				"url":         "https://ssrn.com/abstract=1234567",
				"doi":         "10.2139/ssrn.1234567",
				"posted_date": "1977-01-01",
			},
		},
		{
			name:    "ssrn volume journal page year",
			source:  types.SourceSSRNArticle,
			text:    "Doe, Jane and Roe, Richard A., Trade and Treaties (March 5, 2016). 24 Mich. St. Int'l L. Rev. 449-480 (2016), Available at SSRN: https://ssrn.com/abstract=42",
			authors: []string{"Jane Doe", "Richard A Roe"},
			want: map[string]string{
				"title":         "Trade and Treaties",
				"volume":        "24",
				"journal":       "Mich. St. Int'l L. Rev.",
				"starting_page": "449",
				"ending_page":   "480",
				"year":          "2016",
			},
		},
		{
			name:    "ssrn labelled volume issue pages",
			source:  types.SourceSSRNArticle,
			text:    "Lee, Ann, Courts and Change (June 2, 2019). Law & Social Inquiry, vol. 44, no 4: 957-986, 2019",
			authors: []string{"Ann Lee"},
			want: map[string]string{
				"journal":       "Law & Social Inquiry",
				"volume":        "44",
				"issue":         "4",
				"starting_page": "957",
				"ending_page":   "986",
				"year":          "2019",
			},
		},
		{
			name:    "ssrn journal and year only",
			source:  types.SourceSSRNArticle,
			text:    "Lee, Ann, Rule of Law Today (July 8, 2024). Hague Journal on The Rule of Law, 2024",
			authors: []string{"Ann Lee"},
			want: map[string]string{
				"journal": "Hague Journal on The Rule of Law",
				"volume":  "",
				"year":    "2024",
			},
		},
		{
			name:    "ssrn working paper takes year from posting date",
			source:  types.SourceSSRNArticle,
			text:    "Lee, Ann, Draft Paper (July 8, 2024). Available at SSRN: https://ssrn.com/abstract=99",
			authors: []string{"Ann Lee"},
			want: map[string]string{
				"journal": "",
				"year":    "2024",
			},
		},
		{
			name:    "scholar chicago",
			source:  types.SourceScholarArticle,
			text:    `Raz, Joseph. "The rule of law and its virtue." Law Quarterly Review 93 (1977): 195-211.`,
			authors: []string{"Joseph Raz"},
			want: map[string]string{
				"title":         "The rule of law and its virtue",
				"journal":       "Law Quarterly Review",
				"volume":        "93",
				"issue":         "",
				"year":          "1977",
				"starting_page": "195",
				"ending_page":   "211",
			},
		},
		{
			name:    "scholar chicago with curly quotes and issue",
			source:  types.SourceScholarArticle,
			text:    "Smith, John, Jane Doe, and Bob Lee. “Shared Title.” Modern Law Review 80, no. 2 (2017): 10–30.",
			authors: []string{"John Smith", "Jane Doe", "Bob Lee"},
			want: map[string]string{
				"title":         "Shared Title",
				"journal":       "Modern Law Review",
				"volume":        "80",
				"issue":         "2",
				"starting_page": "10",
				"ending_page":   "30",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.source, tt.text)
			require.NoError(t, err)
			assert.Equal(t, types.JournalArticle, got.Type)
			assert.Equal(t, tt.authors, got.Fields.Names("authors"))
			for k, v := range tt.want {
				assert.Equal(t, v, got.Fields.Text(k), "field %s", k)
			}
		})
	}
}

func TestExtractScholarBook(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		authors []string
		want    map[string]string
	}{
		{
			name:    "initials and place",
			text:    "Hart, H. L. A. The Concept of Law. Oxford: Clarendon Press, 1961.",
			authors: []string{"H L A Hart"},
			want: map[string]string{
				"title":     "The Concept of Law",
				"publisher": "Clarendon Press",
				"year":      "1961",
				"volume":    "",
			},
		},
		{
			name:    "volume",
			text:    "Raz, Joseph. Collected Essays. Vol. 2. Oxford University Press, 1979.",
			authors: []string{"Joseph Raz"},
			want: map[string]string{
				"title":     "Collected Essays",
				"volume":    "2",
				"publisher": "Oxford University Press",
				"year":      "1979",
			},
		},
		{
			name:    "no sentence break",
			text:    "unstructured text",
			authors: nil,
			want: map[string]string{
				"title": "",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(types.SourceScholarBook, tt.text)
			require.NoError(t, err)
			assert.Equal(t, types.Book, got.Type)
			assert.Equal(t, tt.authors, got.Fields.Names("authors"))
			for k, v := range tt.want {
				assert.Equal(t, v, got.Fields.Text(k), "field %s", k)
			}
		})
	}
}

func TestParseAuthors(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Joseph Raz", []string{"Joseph Raz"}},
		{"Raz, Joseph.", []string{"Joseph Raz"}},
		{"Hart, H. L. A.", []string{"H L A Hart"}},
		{"Smith, John and Doe, Jane", []string{"John Smith", "Jane Doe"}},
		{"Smith, John, Jane Doe and Bob Lee", []string{"John Smith", "Jane Doe", "Bob Lee"}},
		{"Smith, John, Jane Doe, and Bob Lee", []string{"John Smith", "Jane Doe", "Bob Lee"}},
		{"Smith, John & Doe, Jane", []string{"John Smith", "Jane Doe"}},
		{"Smith, John et al.", []string{"John Smith"}},
		{"Anderson, Sandra", []string{"Sandra Anderson"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAuthors(tt.in))
		})
	}
}

func TestCascadeShortCircuits(t *testing.T) {
	var tried []string
	mk := func(name, expr string) pattern {
		return pattern{
			name: name,
			kind: types.CitationType(name),
			re:   regexp.MustCompile(expr),
			apply: func(string, []int, types.Fields) {
				tried = append(tried, name)
			},
		}
	}
	c := cascade{mk("strict", `\d{4}`), mk("loose", `\d+`)}

	kind, ok := c.apply(types.Fields{}, "no digits", "year 2020")
	require.True(t, ok)
	assert.Equal(t, types.CitationType("strict"), kind)
	assert.Equal(t, []string{"strict"}, tried)

	kind, ok = c.apply(types.Fields{}, "page 12")
	require.True(t, ok)
	assert.Equal(t, types.CitationType("loose"), kind)

	_, ok = c.apply(types.Fields{}, "nothing")
	assert.False(t, ok)
}

func TestRunRecoversPartialFields(t *testing.T) {
	r := routine{
		fallback: types.Book,
		parse: func(text string, f types.Fields) types.CitationType {
			set(f, "title", "Partial")
			panic("malformed input")
		},
	}
	got := run(r, "text")
	assert.Equal(t, types.Book, got.Type)
	assert.Equal(t, "Partial", got.Fields.Text("title"))
}

func TestExtractThenFormat(t *testing.T) {
	got, err := Extract(types.SourceScholarArticle,
		`Raz, Joseph. "The Rule of Law and Its Virtue." Law Quarterly Review 93 (1977): 195-211.`)
	require.NoError(t, err)

	s, err := format.Format(got.Type, got.Fields)
	require.NoError(t, err)
	assert.Equal(t, "Joseph Raz, 'The Rule of Law and Its Virtue' (1977) 93 <i>Law Quarterly Review</i> 195.", s)

	got, err = Extract(types.SourceWestlawCase, "Smith v Jones [2020] NSWSC 123")
	require.NoError(t, err)
	s, err = format.Format(got.Type, got.Fields)
	require.NoError(t, err)
	assert.Equal(t, "<i>Smith v Jones</i> [2020] NSWSC 123.", s)
}

func TestSources(t *testing.T) {
	assert.Equal(t, []types.SourceType{
		types.SourceJadeCase,
		types.SourceLexisNexisCase,
		types.SourceScholarArticle,
		types.SourceScholarBook,
		types.SourceSSRNArticle,
		types.SourceWestlawCase,
	}, Sources())
}
