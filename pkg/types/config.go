// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Markup selects how italics in a formatted citation are rendered.
type Markup string

const (
	// MarkupHTML keeps <i>...</i> tags. This is the formatter's native output.
	MarkupHTML     Markup = "html"
	MarkupMarkdown Markup = "markdown"
	MarkupPlain    Markup = "plain"
)

// ParseMarkup returns the Markup named by s, defaulting to MarkupHTML for an
// empty string. ok is false for unknown names.
func ParseMarkup(s string) (m Markup, ok bool) {
	switch Markup(s) {
	case "", MarkupHTML:
		return MarkupHTML, true
	case MarkupMarkdown, "md":
		return MarkupMarkdown, true
	case MarkupPlain, "text":
		return MarkupPlain, true
	}
	return "", false
}

// OutputFormat selects the serialization used for batch reports and exports.
type OutputFormat string

const (
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

// FormatConfig holds settings for rendering citations.
type FormatConfig struct {
	// Markup selects html, markdown or plain italics (default html).
	Markup Markup `json:"markup" yaml:"markup"`

	// Canonicalize renames aliased field names before formatting.
	Canonicalize bool `json:"canonicalize" yaml:"canonicalize"`
}

// LibraryConfig holds settings for the local citation library.
type LibraryConfig struct {
	// Dir is the directory holding library.db (default "library").
	Dir string `json:"dir" yaml:"dir"`

	// Project tags new entries and scopes listings when set.
	Project string `json:"project,omitempty" yaml:"project,omitempty"`

	// MaxResults is the default maximum number of list or search results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// BatchConfig holds settings for batch runs.
type BatchConfig struct {
	FormatConfig `yaml:",inline"`

	// Output selects the report serialization: yaml or json.
	Output OutputFormat `json:"output" yaml:"output"`
}
