// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// LibraryEntry is a citation saved in the local library. The formatted
// string is stored next to the fields that produced it.
type LibraryEntry struct {
	// ID is a random UUID assigned when the entry is added.
	ID string `json:"id" yaml:"id"`

	// Project groups entries, for example by paper or chapter.
	Project string `json:"project,omitempty" yaml:"project,omitempty"`

	// Type is the citation type the fields are formatted with.
	Type CitationType `json:"type" yaml:"type"`

	// Fields are the values supplied or extracted for the citation.
	Fields Fields `json:"fields" yaml:"fields"`

	// Formatted is the HTML citation produced when the entry was last
	// added or reformatted.
	Formatted string `json:"formatted" yaml:"formatted"`

	// Notes is free text kept with the entry.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Tags are lowercase labels used to filter listings.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}
