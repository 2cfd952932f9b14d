// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

// Value is a single field value: either a scalar string or an ordered list
// of strings (authors, editors, judicial officers). The zero Value is empty.
type Value struct {
	scalar string
	list   []string
	isList bool
}

// String returns a scalar Value.
func String(s string) Value {
	return Value{scalar: s}
}

// List returns a list Value holding items in order.
func List(items ...string) Value {
	return Value{list: append([]string(nil), items...), isList: true}
}

// Date returns a scalar Value holding t as YYYY-MM-DD.
func Date(t time.Time) Value {
	if t.IsZero() {
		return Value{}
	}
	return Value{scalar: t.Format("2006-01-02")}
}

// IsList reports whether v was built or decoded as a list.
func (v Value) IsList() bool {
	return v.isList
}

// IsEmpty reports whether v carries no usable text: an empty or blank
// scalar, or a list without a non-blank item.
func (v Value) IsEmpty() bool {
	if v.isList {
		for _, item := range v.list {
			if strings.TrimSpace(item) != "" {
				return false
			}
		}
		return true
	}
	return strings.TrimSpace(v.scalar) == ""
}

// Text returns the trimmed scalar. A list renders as its non-blank items
// joined with ", ".
func (v Value) Text() string {
	if v.isList {
		return strings.Join(v.Strings(), ", ")
	}
	return strings.TrimSpace(v.scalar)
}

// Strings returns the non-blank items of a list, trimmed. A non-empty scalar
// is returned as a one-element slice.
func (v Value) Strings() []string {
	if !v.isList {
		if s := strings.TrimSpace(v.scalar); s != "" {
			return []string{s}
		}
		return nil
	}
	var out []string
	for _, item := range v.list {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// MarshalJSON encodes a list as a JSON array and anything else as a string.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isList {
		items := v.list
		if items == nil {
			items = []string{}
		}
		return json.Marshal(items)
	}
	return json.Marshal(v.scalar)
}

// UnmarshalJSON accepts strings, numbers, booleans, null and arrays of
// scalars.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decoding field value: %w", err)
	}
	switch x := raw.(type) {
	case nil:
		*v = Value{}
	case []any:
		items := make([]string, 0, len(x))
		for _, item := range x {
			s, err := scalarText(item)
			if err != nil {
				return err
			}
			items = append(items, s)
		}
		*v = List(items...)
	default:
		s, err := scalarText(x)
		if err != nil {
			return err
		}
		*v = String(s)
	}
	return nil
}

func scalarText(x any) (string, error) {
	switch s := x.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	case json.Number:
		return s.String(), nil
	case bool:
		return fmt.Sprint(s), nil
	default:
		return "", fmt.Errorf("unsupported field value of type %T", x)
	}
}

// MarshalYAML encodes a list as a sequence and anything else as a scalar.
func (v Value) MarshalYAML() (any, error) {
	if v.isList {
		items := v.list
		if items == nil {
			items = []string{}
		}
		return items, nil
	}
	return v.scalar, nil
}

// UnmarshalYAML accepts scalars (strings, numbers, dates, null) and
// sequences of scalars. Scalars keep their literal text, so a YAML date such
// as 2020-03-05 stays "2020-03-05".
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*v = Value{}
			return nil
		}
		*v = String(node.Value)
	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))
		for _, child := range node.Content {
			if child.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: list items must be scalars", child.Line)
			}
			if child.Tag == "!!null" {
				items = append(items, "")
				continue
			}
			items = append(items, child.Value)
		}
		*v = List(items...)
	default:
		return fmt.Errorf("line %d: field value must be a scalar or a list", node.Line)
	}
	return nil
}

// Fields is the bag of named values describing one citation. Absent and
// empty entries are treated the same way everywhere.
type Fields map[string]Value

// Text returns the trimmed text of the named field, or "".
func (f Fields) Text(name string) string {
	return f[name].Text()
}

// Names returns the non-blank items of the named field.
func (f Fields) Names(name string) []string {
	return f[name].Strings()
}

// Has reports whether the named field is populated.
func (f Fields) Has(name string) bool {
	return !f[name].IsEmpty()
}

// Set stores a scalar value under name.
func (f Fields) Set(name, value string) {
	f[name] = String(value)
}

// Select returns a new bag holding only the listed names that are present
// in f. Everything else is dropped.
func (f Fields) Select(names []string) Fields {
	out := make(Fields, len(names))
	for _, name := range names {
		if v, ok := f[name]; ok {
			out[name] = v
		}
	}
	return out
}

// AnyPopulated reports whether at least one entry carries text.
func (f Fields) AnyPopulated() bool {
	for _, v := range f {
		if !v.IsEmpty() {
			return true
		}
	}
	return false
}

// Clone returns a shallow copy of f.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Merge copies the populated entries of other into f, replacing what was
// there.
func (f Fields) Merge(other Fields) {
	for k, v := range other {
		if !v.IsEmpty() {
			f[k] = v
		}
	}
}

// fieldAliases maps older or duplicated field names to the canonical name
// the formatter declares.
var fieldAliases = map[string]string{
	"date":                 "full_date",
	"author":               "authors",
	"court_identifier":     "unique_court_identifier",
	"speaker":              "name_of_speaker",
	"treaty_title":         "title",
	"translation_title":    "title",
	"entry_force_date":     "date_in_force",
	"date_of_retrieval":    "retrieval_date",
	"place_of_publication": "place",
	"submission_number":    "number",
	"paper_number":         "document_number",
	"status_change_date":   "registration_date",
}

// CanonicalFieldName returns the canonical name for name.
func CanonicalFieldName(name string) string {
	if canon, ok := fieldAliases[name]; ok {
		return canon
	}
	return name
}

// Canonicalize returns a copy of f with aliased names renamed to their
// canonical form. A populated canonical entry is never overwritten by an
// alias.
func (f Fields) Canonicalize() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		if _, aliased := fieldAliases[k]; !aliased {
			out[k] = v
		}
	}
	for k, v := range f {
		canon, aliased := fieldAliases[k]
		if !aliased || v.IsEmpty() {
			continue
		}
		if out.Has(canon) {
			continue
		}
		out[canon] = v
	}
	return out
}
