// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import "github.com/pdiddy/aglc-engine/pkg/types"

// publication renders the (publisher, edition, year) tuple of a book.
func publication(f types.Fields) string {
	return group(f.Text("publisher"), edition(f.Text("edition")), f.Text("year"))
}

// titleParts joins a number and a name, as in "190 Health".
func titleParts(f types.Fields, number, name string) string {
	return words(f.Text(number), f.Text(name))
}

// secondaryRules covers journal articles, books, reports, reference works,
// news and other secondary sources (AGLC4 Part IV).
var secondaryRules = map[types.CitationType]rule{
	types.JournalArticle: {
		params: []string{"authors", "title", "year", "volume", "issue", "journal", "starting_page", "pinpoint", "short_title"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				quoted(f.Text("title")),
				roundYear(f.Text("year")),
				volumeIssue(f.Text("volume"), f.Text("issue")),
				italic(f.Text("journal")),
				startingPage(f.Text("starting_page"), f.Text("pinpoint")),
				f.Text("pinpoint"),
				shortTitle(f.Text("short_title"), false),
			)
			return p
		},
	},

	types.Symposium: {
		params: []string{"title", "year", "volume", "issue", "journal", "starting_page", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				"Symposium,",
				quoted(f.Text("title")),
				roundYear(f.Text("year")),
				volumeIssue(f.Text("volume"), f.Text("issue")),
				italic(f.Text("journal")),
				startingPage(f.Text("starting_page"), f.Text("pinpoint")),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.Book: {
		params: []string{"authors", "title", "publisher", "edition", "year", "volume", "pinpoint", "short_title"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				italic(f.Text("title")),
				publication(f),
				prefix("vol ", f.Text("volume")),
				f.Text("pinpoint"),
				shortTitle(f.Text("short_title"), true),
			)
			return p
		},
	},

	types.BookChapter: {
		params: []string{"authors", "chapter_title", "editors", "book_title", "publisher", "edition", "year", "volume", "starting_page", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				quoted(f.Text("chapter_title")),
				suffix(prefix("in ", JoinEditors(f.Names("editors"))), ","),
				italic(f.Text("book_title")),
				publication(f),
				prefix("vol ", f.Text("volume")),
				startingPage(f.Text("starting_page"), f.Text("pinpoint")),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.BookWithEditor: {
		params: []string{"authors", "title", "editors", "publisher", "edition", "year", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				suffix(italic(f.Text("title")), ","),
				prefix("ed ", JoinEditorsBare(f.Names("editors"))),
				publication(f),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.TranslatedBook: {
		params: []string{"authors", "title", "translator", "publisher", "edition", "year", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				suffix(italic(f.Text("title")), ","),
				prefix("tr ", JoinAuthors(f.Names("translator"))),
				publication(f),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.Audiobook: {
		params: []string{"authors", "title", "publisher", "year", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				italic(f.Text("title")),
				group("Audiobook", f.Text("publisher"), f.Text("year")),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.Report: {
		params: []string{"authors", "title", "document_type", "series_no", "document_number", "full_date", "pinpoint", "short_title"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				italic(f.Text("title")),
				group(f.Text("document_type"), f.Text("series_no"), f.Text("document_number"), date(f, "full_date")),
				f.Text("pinpoint"),
				shortTitle(f.Text("short_title"), true),
			)
			return p
		},
	},

	types.ResearchPaper: {
		params: []string{"authors", "title", "document_type", "document_number", "institution", "full_date", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				quoted(f.Text("title")),
				group(
					words(f.Text("document_type"), prefix("No ", f.Text("document_number"))),
					f.Text("institution"),
					date(f, "full_date"),
				),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.OnlineDictionary: {
		params: []string{"title", "retrieval_date", "entry_title", "definition_number", "short_title"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				italic(f.Text("title")),
				paren(prefix("online at ", date(f, "retrieval_date"))),
				quoted(f.Text("entry_title")),
				paren(prefix("def ", f.Text("definition_number"))),
				shortTitle(f.Text("short_title"), true),
			)
			return p
		},
	},

	types.HardcopyDictionary: {
		params: []string{"title", "edition", "year", "entry_title", "definition_number", "short_title"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				italic(f.Text("title")),
				group(edition(f.Text("edition")), f.Text("year")),
				quoted(f.Text("entry_title")),
				paren(prefix("def ", f.Text("definition_number"))),
				shortTitle(f.Text("short_title"), true),
			)
			return p
		},
	},

	types.OnlineLegalEncyclopedia: {
		params: []string{"publisher", "title", "retrieval_date", "title_number", "title_name", "chapter_number", "chapter_name", "paragraph", "short_title"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(f.Text("publisher"), ","),
				italic(f.Text("title")),
				paren(prefix("online at ", date(f, "retrieval_date"))),
				suffix(titleParts(f, "title_number", "title_name"), ","),
				quoted(titleParts(f, "chapter_number", "chapter_name")),
				square(f.Text("paragraph")),
				shortTitle(f.Text("short_title"), true),
			)
			return p
		},
	},

	types.HardcopyLegalEncyclopedia: {
		params: []string{"publisher", "title", "volume", "full_date", "title_number", "title_name", "chapter_number", "chapter_name", "paragraph", "short_title"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(f.Text("publisher"), ","),
				suffix(italic(f.Text("title")), ","),
				prefix("vol ", f.Text("volume")),
				paren(prefix("at ", date(f, "full_date"))),
				suffix(titleParts(f, "title_number", "title_name"), ","),
				quoted(titleParts(f, "chapter_number", "chapter_name")),
				square(f.Text("paragraph")),
				shortTitle(f.Text("short_title"), true),
			)
			return p
		},
	},

	types.OnlineLooseleaf: {
		params: []string{"authors", "publisher", "title", "retrieval_date", "pinpoint", "short_title"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				suffix(f.Text("publisher"), ","),
				italic(f.Text("title")),
				paren(prefix("online at ", date(f, "retrieval_date"))),
				f.Text("pinpoint"),
				shortTitle(f.Text("short_title"), true),
			)
			return p
		},
	},

	// A hardcopy looseleaf is dated by its service number when one is
	// given, otherwise by the date.
	types.HardcopyLooseleaf: {
		params: []string{"authors", "publisher", "title", "volume", "service_number", "full_date", "pinpoint"},
		build: func(f types.Fields) []string {
			at := f.Text("service_number")
			if at == "" {
				at = date(f, "full_date")
			}
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				suffix(f.Text("publisher"), ","),
				italic(f.Text("title")),
				prefix("vol ", f.Text("volume")),
				paren(prefix("at ", at)),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.OnlineNewspaper: {
		params: []string{"authors", "title", "newspaper", "full_date", "pinpoint", "url", "short_title"},
		build: func(f types.Fields) []string {
			online := ""
			if f.Has("newspaper") || f.Has("full_date") {
				online = group("online", date(f, "full_date"))
			}
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				suffix(quoted(f.Text("title")), ","),
				italic(f.Text("newspaper")),
				online,
				square(f.Text("pinpoint")),
				url(f.Text("url")),
				shortTitle(f.Text("short_title"), false),
			)
			return p
		},
	},

	types.PrintedNewspaper: {
		params: []string{"authors", "title", "newspaper", "place", "full_date", "starting_page", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				suffix(quoted(f.Text("title")), ","),
				italic(f.Text("newspaper")),
				group(f.Text("place"), date(f, "full_date")),
				startingPage(f.Text("starting_page"), f.Text("pinpoint")),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.InternetMaterial: {
		params: []string{"authors", "document_title", "web_page_title", "document_type", "full_date", "pinpoint", "url", "short_title"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				suffix(quoted(f.Text("document_title")), ","),
				italic(f.Text("web_page_title")),
				group(f.Text("document_type"), date(f, "full_date")),
				f.Text("pinpoint"),
				url(f.Text("url")),
				shortTitle(f.Text("short_title"), false),
			)
			return p
		},
	},

	types.Speech: {
		params: []string{"authors", "title", "speech_or_lecture", "institution_forum", "full_date", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				quoted(f.Text("title")),
				group(f.Text("speech_or_lecture"), f.Text("institution_forum"), date(f, "full_date")),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.PressRelease: {
		params: []string{"authors", "title", "release_type", "document_number", "body", "full_date", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				quoted(f.Text("title")),
				group(f.Text("release_type"), f.Text("document_number"), f.Text("body"), date(f, "full_date")),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.Periodical: {
		params: []string{"authors", "title", "periodical_name", "date_month_season", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				quoted(f.Text("title")),
				paren(f.Text("date_month_season")),
				italic(f.Text("periodical_name")),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.Interview: {
		params: []string{"format", "interviewee", "interviewer", "interview_forum", "full_date"},
		build: func(f types.Fields) []string {
			kind := f.Text("format")
			if kind == "" {
				kind = "Interview"
			}
			var p fragments
			p.add(
				kind,
				prefix("with ", f.Text("interviewee")),
				group(f.Text("interviewer"), f.Text("interview_forum"), date(f, "full_date")),
			)
			return p
		},
	},

	types.FilmTelevisionMedia: {
		params: []string{"episode_title", "film_series_title", "version_details", "studio_producer", "year", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(quoted(f.Text("episode_title")), ","),
				italic(f.Text("film_series_title")),
				group(f.Text("version_details"), f.Text("studio_producer"), f.Text("year")),
				f.Text("pinpoint"),
			)
			return p
		},
	},

	types.SocialMediaPost: {
		params: []string{"username", "title", "platform", "full_date", "time", "url"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(f.Text("username"), ","),
				quoted(f.Text("title")),
				group(f.Text("platform"), date(f, "full_date"), f.Text("time")),
				url(f.Text("url")),
			)
			return p
		},
	},

	types.WrittenSubmission: {
		params: []string{"authors", "number", "body", "name_of_inquiry", "full_date", "pinpoint"},
		build: func(f types.Fields) []string {
			var p fragments
			p.add(
				suffix(authors(f, "authors"), ","),
				words("Submission", prefix("No ", f.Text("number")), prefix("to ", f.Text("body"))) + ",",
				italic(f.Text("name_of_inquiry")),
				paren(date(f, "full_date")),
				f.Text("pinpoint"),
			)
			return p
		},
	},
}
