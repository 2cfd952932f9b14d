// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package csl converts between CSL (Citation Style Language) items, as
// exported by Zotero, Mendeley and Pandoc, and AGLC citation types and fields.
package csl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/aglc-engine/pkg/types"
)

// ErrUnsupportedItem is returned by ToCitation for CSL types with no AGLC
// equivalent.
var ErrUnsupportedItem = errors.New("unsupported CSL item type")

// Item represents a bibliographic entry in CSL format. The field names and
// structure follow the CSL-JSON/CSL-YAML schema so that files written by
// reference managers decode directly.
type Item struct {
	ID             string `json:"id" yaml:"id"`
	Type           string `json:"type" yaml:"type"`
	Title          string `json:"title,omitempty" yaml:"title,omitempty"`
	Author         []Name `json:"author,omitempty" yaml:"author,omitempty"`
	Editor         []Name `json:"editor,omitempty" yaml:"editor,omitempty"`
	Translator     []Name `json:"translator,omitempty" yaml:"translator,omitempty"`
	ContainerTitle string `json:"container-title,omitempty" yaml:"container-title,omitempty"`
	Publisher      string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	PublisherPlace string `json:"publisher-place,omitempty" yaml:"publisher-place,omitempty"`
	Volume         string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue          string `json:"issue,omitempty" yaml:"issue,omitempty"`
	Page           string `json:"page,omitempty" yaml:"page,omitempty"`
	Edition        string `json:"edition,omitempty" yaml:"edition,omitempty"`
	Number         string `json:"number,omitempty" yaml:"number,omitempty"`
	Authority      string `json:"authority,omitempty" yaml:"authority,omitempty"`
	Jurisdiction   string `json:"jurisdiction,omitempty" yaml:"jurisdiction,omitempty"`
	Genre          string `json:"genre,omitempty" yaml:"genre,omitempty"`
	Event          string `json:"event-title,omitempty" yaml:"event-title,omitempty"`
	URL            string `json:"URL,omitempty" yaml:"URL,omitempty"`
	DOI            string `json:"DOI,omitempty" yaml:"DOI,omitempty"`
	Note           string `json:"note,omitempty" yaml:"note,omitempty"`
	Issued         *Date  `json:"issued,omitempty" yaml:"issued,omitempty"`
	Accessed       *Date  `json:"accessed,omitempty" yaml:"accessed,omitempty"`
}

// Name represents a person's name in CSL format.
type Name struct {
	Family  string `json:"family,omitempty" yaml:"family,omitempty"`
	Given   string `json:"given,omitempty" yaml:"given,omitempty"`
	Literal string `json:"literal,omitempty" yaml:"literal,omitempty"`
}

// String returns the name in "Given Family" order.
func (n Name) String() string {
	if n.Literal != "" {
		return strings.TrimSpace(n.Literal)
	}
	return strings.TrimSpace(strings.TrimSpace(n.Given) + " " + strings.TrimSpace(n.Family))
}

// Date represents a date in CSL format using date-parts, or a raw string.
type Date struct {
	DateParts [][]int `json:"date-parts,omitempty" yaml:"date-parts,omitempty"`
	Raw       string  `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// ISO returns the date as YYYY-MM-DD, YYYY-MM or YYYY depending on how many
// parts are known. A raw date is parsed leniently; "" means no usable date.
func (d *Date) ISO() string {
	if d == nil {
		return ""
	}
	if len(d.DateParts) > 0 && len(d.DateParts[0]) > 0 {
		p := d.DateParts[0]
		switch {
		case len(p) >= 3:
			return fmt.Sprintf("%04d-%02d-%02d", p[0], p[1], p[2])
		case len(p) == 2:
			return fmt.Sprintf("%04d-%02d", p[0], p[1])
		default:
			return strconv.Itoa(p[0])
		}
	}
	raw := strings.TrimSpace(d.Raw)
	if raw == "" {
		return ""
	}
	if _, err := strconv.Atoi(raw); err == nil {
		return raw
	}
	if t, err := dateparse.ParseAny(raw); err == nil {
		return t.Format("2006-01-02")
	}
	return raw
}

// Year returns the four-digit year of the date, or "".
func (d *Date) Year() string {
	iso := d.ISO()
	if len(iso) >= 4 {
		if _, err := strconv.Atoi(iso[:4]); err == nil {
			return iso[:4]
		}
	}
	return ""
}

// dateOf builds a Date from an AGLC field value: a bare year, an ISO date or
// anything dateparse understands. It returns nil when s holds no date.
func dateOf(s string) *Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if y, err := strconv.Atoi(s); err == nil {
		return &Date{DateParts: [][]int{{y}}}
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return &Date{DateParts: [][]int{{t.Year(), int(t.Month())}}}
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return &Date{DateParts: [][]int{{t.Year(), int(t.Month()), t.Day()}}}
	}
	return &Date{Raw: s}
}

// Read decodes a CSL file. CSL-JSON is a subset of YAML, so one decoder reads
// both; a single item is accepted as well as a list.
func Read(r io.Reader) ([]Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading CSL: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var items []Item
	if err := yaml.Unmarshal(data, &items); err == nil {
		return items, nil
	}
	var one Item
	if err := yaml.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("parsing CSL: %w", err)
	}
	return []Item{one}, nil
}

// WriteYAML writes items to w as a CSL-YAML list.
func WriteYAML(w io.Writer, items []Item) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	enc.SetIndent(2)
	return enc.Encode(items)
}

// WriteJSON writes items to w as an indented CSL-JSON array.
func WriteJSON(w io.Writer, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// ToCitation maps a CSL item to an AGLC citation type and its fields.
func ToCitation(item Item) (types.CitationType, types.Fields, error) {
	f := types.Fields{}
	set := func(name, value string) {
		if v := strings.TrimSpace(value); v != "" {
			f.Set(name, v)
		}
	}
	names := func(name string, ns []Name) {
		var out []string
		for _, n := range ns {
			if s := n.String(); s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			f[name] = types.List(out...)
		}
	}
	year := item.Issued.Year()
	date := item.Issued.ISO()

	var t types.CitationType
	switch item.Type {
	case "article-journal", "article":
		t = types.JournalArticle
		names("authors", item.Author)
		set("title", item.Title)
		set("year", year)
		set("volume", item.Volume)
		set("issue", item.Issue)
		set("journal", item.ContainerTitle)
		set("starting_page", firstPage(item.Page))

	case "book":
		switch {
		case len(item.Translator) > 0:
			t = types.TranslatedBook
			names("translator", item.Translator)
		case len(item.Editor) > 0:
			t = types.BookWithEditor
			names("editors", item.Editor)
		default:
			t = types.Book
			set("volume", item.Volume)
		}
		names("authors", item.Author)
		set("title", item.Title)
		set("publisher", item.Publisher)
		set("edition", item.Edition)
		set("year", year)

	case "chapter":
		t = types.BookChapter
		names("authors", item.Author)
		names("editors", item.Editor)
		set("chapter_title", item.Title)
		set("book_title", item.ContainerTitle)
		set("publisher", item.Publisher)
		set("edition", item.Edition)
		set("year", year)
		set("volume", item.Volume)
		set("starting_page", firstPage(item.Page))

	case "legal_case":
		set("case_name", item.Title)
		switch {
		case item.ContainerTitle != "":
			t = types.CaseReported
			set("year", year)
			set("volume", item.Volume)
			set("law_report_series", item.ContainerTitle)
			set("starting_page", firstPage(item.Page))
		case item.Authority != "" && item.Number != "":
			t = types.CaseUnreportedMediumNeutral
			set("year", year)
			set("unique_court_identifier", item.Authority)
			set("judgment_number", item.Number)
		default:
			t = types.CaseUnreportedNoMediumNeutral
			set("court", item.Authority)
			set("full_date", date)
		}

	case "legislation", "bill":
		t = types.Legislation
		if item.Type == "bill" {
			t = types.Bill
		}
		set("title", strings.TrimSuffix(strings.TrimSpace(item.Title), " "+year))
		set("year", year)
		set("jurisdiction", item.Jurisdiction)

	case "treaty":
		t = types.Treaty
		set("title", item.Title)
		set("signature_date", date)
		set("treaty_series", item.ContainerTitle)

	case "report":
		t = types.Report
		names("authors", item.Author)
		set("title", item.Title)
		set("document_type", item.Genre)
		set("document_number", item.Number)
		set("full_date", date)

	case "article-newspaper":
		names("authors", item.Author)
		set("title", item.Title)
		set("newspaper", item.ContainerTitle)
		set("full_date", date)
		if item.URL != "" {
			t = types.OnlineNewspaper
			set("url", item.URL)
		} else {
			t = types.PrintedNewspaper
			set("place", item.PublisherPlace)
			set("starting_page", firstPage(item.Page))
		}

	case "webpage", "post-weblog":
		t = types.InternetMaterial
		names("authors", item.Author)
		set("document_title", item.Title)
		set("web_page_title", item.ContainerTitle)
		set("full_date", date)
		set("url", item.URL)

	case "speech":
		t = types.Speech
		names("authors", item.Author)
		set("title", item.Title)
		set("speech_or_lecture", item.Genre)
		set("institution_forum", item.Event)
		set("full_date", date)

	case "post":
		t = types.SocialMediaPost
		if len(item.Author) > 0 {
			set("username", item.Author[0].String())
		}
		set("title", item.Title)
		set("platform", item.ContainerTitle)
		set("full_date", date)
		set("url", item.URL)

	case "motion_picture", "broadcast":
		t = types.FilmTelevisionMedia
		set("episode_title", item.Title)
		set("film_series_title", item.ContainerTitle)
		set("studio_producer", item.Publisher)
		set("year", year)

	case "entry-dictionary":
		set("title", item.ContainerTitle)
		set("entry_title", item.Title)
		if item.URL != "" || item.Accessed != nil {
			t = types.OnlineDictionary
			set("retrieval_date", item.Accessed.ISO())
		} else {
			t = types.HardcopyDictionary
			set("edition", item.Edition)
			set("year", year)
		}

	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedItem, item.Type)
	}
	return t, f, nil
}

// cslTypes maps AGLC types back to the closest CSL type. Types not listed
// export as "document".
var cslTypes = map[types.CitationType]string{
	types.JournalArticle:                "article-journal",
	types.Symposium:                     "article-journal",
	types.Book:                          "book",
	types.BookWithEditor:                "book",
	types.TranslatedBook:                "book",
	types.Audiobook:                     "book",
	types.BookChapter:                   "chapter",
	types.CaseReported:                  "legal_case",
	types.CaseUnreportedMediumNeutral:   "legal_case",
	types.CaseUnreportedNoMediumNeutral: "legal_case",
	types.Legislation:                   "legislation",
	types.Bill:                          "bill",
	types.Treaty:                        "treaty",
	types.Report:                        "report",
	types.ResearchPaper:                 "report",
	types.OnlineNewspaper:               "article-newspaper",
	types.PrintedNewspaper:              "article-newspaper",
	types.Periodical:                    "article-magazine",
	types.InternetMaterial:              "webpage",
	types.Speech:                        "speech",
	types.SocialMediaPost:               "post",
	types.FilmTelevisionMedia:           "motion_picture",
	types.OnlineDictionary:              "entry-dictionary",
	types.HardcopyDictionary:            "entry-dictionary",
	types.Interview:                     "interview",
}

// FromEntry converts a library entry to a CSL item. Fields the CSL schema has
// no variable for are dropped.
func FromEntry(e types.LibraryEntry) Item {
	f := e.Fields
	item := Item{
		ID:     e.ID,
		Type:   cslTypes[e.Type],
		Title:  first(f, "title", "case_name", "chapter_title", "document_title", "episode_title", "entry_title"),
		Author: toNames(f.Names("authors")),
		Editor: toNames(f.Names("editors")),

		Translator:     toNames(f.Names("translator")),
		ContainerTitle: first(f, "journal", "law_report_series", "book_title", "newspaper", "web_page_title", "platform", "film_series_title", "periodical_name"),
		Publisher:      first(f, "publisher", "studio_producer"),
		PublisherPlace: f.Text("place"),
		Volume:         f.Text("volume"),
		Issue:          f.Text("issue"),
		Page:           f.Text("starting_page"),
		Edition:        f.Text("edition"),
		Number:         first(f, "judgment_number", "document_number", "number"),
		Authority:      first(f, "unique_court_identifier", "court"),
		Jurisdiction:   f.Text("jurisdiction"),
		Genre:          first(f, "document_type", "speech_or_lecture"),
		Event:          f.Text("institution_forum"),
		URL:            f.Text("url"),
		Note:           e.Notes,
		Issued:         dateOf(first(f, "full_date", "signature_date", "year")),
		Accessed:       dateOf(f.Text("retrieval_date")),
	}
	if item.Type == "" {
		item.Type = "document"
	}
	if user := f.Text("username"); user != "" && len(item.Author) == 0 {
		item.Author = []Name{{Literal: user}}
	}
	return item
}

func first(f types.Fields, names ...string) string {
	for _, n := range names {
		if v := f.Text(n); v != "" {
			return v
		}
	}
	return ""
}

func toNames(names []string) []Name {
	var out []Name
	for _, n := range names {
		if cn := parseAuthorName(n); cn != (Name{}) {
			out = append(out, cn)
		}
	}
	return out
}

// parseAuthorName splits a full name string into CSL family/given parts.
// It splits on the last space: everything before is given, the last token
// is family. Single-token names use the literal field.
func parseAuthorName(name string) Name {
	name = strings.TrimSpace(name)
	if name == "" {
		return Name{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return Name{Literal: name}
	}
	return Name{
		Given:  strings.TrimSpace(name[:idx]),
		Family: name[idx+1:],
	}
}

// firstPage returns the first page of a CSL page range such as "195-211".
func firstPage(page string) string {
	page = strings.TrimSpace(page)
	if i := strings.IndexAny(page, "-\u2013\u2014"); i >= 0 {
		return strings.TrimSpace(page[:i])
	}
	return page
}
