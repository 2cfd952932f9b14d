// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestValueEmptiness(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		empty bool
	}{
		{"zero", Value{}, true},
		{"blank scalar", String("   "), true},
		{"scalar", String("1998"), false},
		{"empty list", List(), true},
		{"list of blanks", List("", " "), true},
		{"list", List("", "A"), false},
		{"zero date", Date(time.Time{}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.value.IsEmpty())
		})
	}
}

func TestValueText(t *testing.T) {
	assert.Equal(t, "1998", String(" 1998 ").Text())
	assert.Equal(t, "A, B", List("A", " ", "B").Text())
	assert.Equal(t, []string{"A"}, String("A").Strings())
	assert.Nil(t, String("").Strings())
	assert.Equal(t, "2020-03-05", Date(time.Date(2020, 3, 5, 0, 0, 0, 0, time.UTC)).Text())
}

func TestFieldsJSON(t *testing.T) {
	data := []byte(`{"authors":["Joseph Raz"],"year":1977,"volume":"93","draft":true,"pinpoint":null}`)

	var f Fields
	require.NoError(t, json.Unmarshal(data, &f))

	assert.Equal(t, []string{"Joseph Raz"}, f.Names("authors"))
	assert.True(t, f["authors"].IsList())
	assert.Equal(t, "1977", f.Text("year"))
	assert.Equal(t, "93", f.Text("volume"))
	assert.Equal(t, "true", f.Text("draft"))
	assert.False(t, f.Has("pinpoint"))

	out, err := json.Marshal(Fields{"authors": List("A", "B"), "year": String("1977")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"authors":["A","B"],"year":"1977"}`, string(out))
}

func TestFieldsJSONRejectsObjects(t *testing.T) {
	var f Fields
	err := json.Unmarshal([]byte(`{"authors":{"first":"Joseph"}}`), &f)
	assert.Error(t, err)
}

func TestFieldsYAML(t *testing.T) {
	src := `
authors:
  - Joseph Raz
year: 1977
full_date: 2020-03-05
pinpoint:
`
	var f Fields
	require.NoError(t, yaml.Unmarshal([]byte(src), &f))

	assert.Equal(t, []string{"Joseph Raz"}, f.Names("authors"))
	assert.Equal(t, "1977", f.Text("year"))
	assert.Equal(t, "2020-03-05", f.Text("full_date"))
	assert.False(t, f.Has("pinpoint"))

	out, err := yaml.Marshal(Fields{"authors": List("A"), "year": String("1977")})
	require.NoError(t, err)
	assert.Contains(t, string(out), "- A")
	assert.Contains(t, string(out), `year: "1977"`)
}

func TestFieldsYAMLRejectsMappings(t *testing.T) {
	var f Fields
	err := yaml.Unmarshal([]byte("authors:\n  first: Joseph\n"), &f)
	assert.Error(t, err)
}

func TestFieldsSelect(t *testing.T) {
	f := Fields{
		"case_name": String("Mabo"),
		"journal":   String("Ignored"),
	}
	got := f.Select([]string{"case_name", "year"})
	assert.Equal(t, Fields{"case_name": String("Mabo")}, got)
	assert.True(t, got.AnyPopulated())
	assert.False(t, Fields{"year": String("")}.AnyPopulated())
}

func TestFieldsMerge(t *testing.T) {
	f := Fields{"year": String("1977"), "volume": String("93")}
	f.Merge(Fields{"year": String(""), "volume": String("94"), "issue": String("2")})

	assert.Equal(t, "1977", f.Text("year"))
	assert.Equal(t, "94", f.Text("volume"))
	assert.Equal(t, "2", f.Text("issue"))
}

func TestFieldsCanonicalize(t *testing.T) {
	tests := []struct {
		name string
		in   Fields
		want Fields
	}{
		{
			name: "renames aliases",
			in:   Fields{"date": String("2020-01-01"), "author": String("A"), "speaker": String("S")},
			want: Fields{"full_date": String("2020-01-01"), "authors": String("A"), "name_of_speaker": String("S")},
		},
		{
			name: "canonical value wins",
			in:   Fields{"date": String("2019-01-01"), "full_date": String("2020-01-01")},
			want: Fields{"full_date": String("2020-01-01")},
		},
		{
			name: "alias fills empty canonical",
			in:   Fields{"court_identifier": String("NSWSC"), "unique_court_identifier": String("")},
			want: Fields{"unique_court_identifier": String("NSWSC")},
		},
		{
			name: "leaves other names alone",
			in:   Fields{"case_name": String("Mabo")},
			want: Fields{"case_name": String("Mabo")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Canonicalize())
		})
	}
}

func TestParseCitationType(t *testing.T) {
	tests := []struct {
		in   string
		want CitationType
	}{
		{"journal_article", JournalArticle},
		{" Journal-Article ", JournalArticle},
		{"ACT", Legislation},
		{"hard_copy_dictionary", HardcopyDictionary},
		{"press_and_media_release", PressRelease},
		{"intellectual_property", IntellectualPropertyMaterial},
		{"mystery", CitationType("mystery")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCitationType(tt.in), tt.in)
	}
}

func TestParseSourceType(t *testing.T) {
	assert.Equal(t, SourceWestlawCase, ParseSourceType("Westlaw"))
	assert.Equal(t, SourceLexisNexisCase, ParseSourceType("lexis"))
	assert.Equal(t, SourceSSRNArticle, ParseSourceType("ssrn_article"))
	assert.Equal(t, SourceType("nope"), ParseSourceType("nope"))
}

func TestParseMarkup(t *testing.T) {
	m, ok := ParseMarkup("")
	assert.True(t, ok)
	assert.Equal(t, MarkupHTML, m)

	m, ok = ParseMarkup("md")
	assert.True(t, ok)
	assert.Equal(t, MarkupMarkdown, m)

	_, ok = ParseMarkup("rtf")
	assert.False(t, ok)
}
