// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared vocabulary for aglc-engine: citation and
// source tags, field values, extraction results and configuration.
package types

import "strings"

// CitationType identifies one of the AGLC4 source kinds the formatter can
// render. The set is closed; unknown tags are rejected at dispatch.
type CitationType string

// Cases and judicial materials.
const (
	CaseReported                  CitationType = "case_reported"
	CaseUnreportedMediumNeutral   CitationType = "case_unreported_medium_neutral"
	CaseUnreportedNoMediumNeutral CitationType = "case_unreported_no_medium_neutral"
	Proceeding                    CitationType = "proceeding"
	CourtOrder                    CitationType = "court_order"
	Arbitration                   CitationType = "arbitration"
	TranscriptOfProceedings       CitationType = "transcript_of_proceedings"
	HighCourtTranscript           CitationType = "high_court_transcript"
	Submission                    CitationType = "submission"
)

// Legislative materials.
const (
	Legislation                       CitationType = "legislation"
	Bill                              CitationType = "bill"
	ExplanatoryMemorandum             CitationType = "explanatory_memorandum"
	Hansard                           CitationType = "hansard"
	DelegatedLegislation              CitationType = "delegated_legislation"
	Gazette                           CitationType = "gazette"
	OrderOrRuling                     CitationType = "order_or_ruling"
	CourtPracticeDirection            CitationType = "court_practice_direction"
	DelegatedNonGovernmentLegislation CitationType = "delegated_non_government_legislation"
	ConstitutionalConventionDebates   CitationType = "constitutional_convention_debates"
	EvidenceToParliamentaryCommittee  CitationType = "evidence_to_parliamentary_committee"
)

// International materials.
const (
	Treaty CitationType = "treaty"
)

// Secondary sources.
const (
	JournalArticle            CitationType = "journal_article"
	Symposium                 CitationType = "symposium"
	Book                      CitationType = "book"
	BookChapter               CitationType = "book_chapter"
	BookWithEditor            CitationType = "book_with_editor"
	TranslatedBook            CitationType = "translated_book"
	Audiobook                 CitationType = "audiobook"
	Report                    CitationType = "report"
	ResearchPaper             CitationType = "research_paper"
	OnlineDictionary          CitationType = "online_dictionary"
	HardcopyDictionary        CitationType = "hardcopy_dictionary"
	OnlineLegalEncyclopedia   CitationType = "online_legal_encyclopedia"
	HardcopyLegalEncyclopedia CitationType = "hardcopy_legal_encyclopedia"
	OnlineLooseleaf           CitationType = "online_looseleaf"
	HardcopyLooseleaf         CitationType = "hardcopy_looseleaf"
	OnlineNewspaper           CitationType = "online_newspaper"
	PrintedNewspaper          CitationType = "printed_newspaper"
	InternetMaterial          CitationType = "internet_material"
	Speech                    CitationType = "speech"
	PressRelease              CitationType = "press_release"
	Periodical                CitationType = "periodical"
	Interview                 CitationType = "interview"
	FilmTelevisionMedia       CitationType = "film_television_media"
	SocialMediaPost           CitationType = "social_media_post"
	WrittenSubmission         CitationType = "written_submission"
)

// Miscellaneous materials.
const (
	IntellectualPropertyMaterial CitationType = "intellectual_property_material"
	ConstitutiveDocument         CitationType = "constitutive_document"
	WrittenCorrespondence        CitationType = "written_correspondence"
)

// citationTypeAliases maps tags used by older clients to the canonical tag.
var citationTypeAliases = map[string]CitationType{
	"act":                          Legislation,
	"statute":                      Legislation,
	"hard_copy_dictionary":         HardcopyDictionary,
	"hard_copy_legal_encyclopedia": HardcopyLegalEncyclopedia,
	"hard_copy_looseleaf":          HardcopyLooseleaf,
	"online_looseleaf_author":      OnlineLooseleaf,
	"press_and_media_release":      PressRelease,
	"intellectual_property":        IntellectualPropertyMaterial,
	"internet_materials_author":    InternetMaterial,
	"internet_materials":           InternetMaterial,
}

// ParseCitationType normalizes s into a CitationType. Case and surrounding
// whitespace are ignored, hyphens and spaces read as underscores, and legacy
// aliases resolve to their canonical tag. Unknown tags come back unchanged so
// the formatter can report them.
func ParseCitationType(s string) CitationType {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if t, ok := citationTypeAliases[key]; ok {
		return t
	}
	return CitationType(key)
}

// SourceType identifies the origin of pasted citation text for extraction.
type SourceType string

const (
	SourceWestlawCase    SourceType = "westlaw_case"
	SourceLexisNexisCase SourceType = "lexisnexis_case"
	SourceJadeCase       SourceType = "jade_case"
	SourceSSRNArticle    SourceType = "ssrn_article"
	SourceScholarArticle SourceType = "scholar_article"
	SourceScholarBook    SourceType = "scholar_book"
)

// ParseSourceType normalizes s into a SourceType. Short names such as
// "westlaw" or "ssrn" map to their full tag.
func ParseSourceType(s string) SourceType {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	switch key {
	case "westlaw":
		return SourceWestlawCase
	case "lexis", "lexisnexis":
		return SourceLexisNexisCase
	case "jade":
		return SourceJadeCase
	case "ssrn":
		return SourceSSRNArticle
	case "scholar", "google_scholar":
		return SourceScholarArticle
	}
	return SourceType(key)
}

// ExtractionResult is the outcome of parsing one pasted citation: the
// citation type it was recognised as and the fields that were recovered.
// Fields that a matched pattern did not capture are present but empty.
type ExtractionResult struct {
	Type   CitationType `json:"type" yaml:"type"`
	Fields Fields       `json:"fields" yaml:"fields"`
}
