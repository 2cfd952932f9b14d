// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format renders structured citation fields into AGLC4 citation
// strings. Each citation type has one rule declaring the fields it consumes
// and how they are assembled; the dispatcher filters input to those fields,
// joins the rule's fragments and applies a single normalization pass.
//
// Rendering is pure and the rule registry is read-only after package
// initialization, so Format is safe for concurrent use.
package format

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/aglc-engine/pkg/types"
)

// ErrUnsupportedType is matched by errors.Is for every UnsupportedTypeError.
var ErrUnsupportedType = errors.New("unsupported citation type")

// UnsupportedTypeError reports a citation type with no registered rule.
type UnsupportedTypeError struct {
	Type types.CitationType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported citation type: %q", string(e.Type))
}

// Is lets errors.Is match ErrUnsupportedType.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// Builder assembles the ordered fragments of one citation type.
type Builder interface {
	// Params lists the field names the builder consumes, in render order.
	Params() []string

	// Build returns the citation fragments for f. Empty fragments are
	// allowed and dropped by the dispatcher.
	Build(f types.Fields) []string
}

// rule is the Builder implementation used by every registered type.
type rule struct {
	params []string
	build  func(f types.Fields) []string
}

func (r rule) Params() []string {
	return append([]string(nil), r.params...)
}

func (r rule) Build(f types.Fields) []string {
	return r.build(f)
}

// registry maps each citation type to its rule. It is populated once from
// the rule tables in the rules_*.go files.
var registry = func() map[types.CitationType]Builder {
	m := make(map[types.CitationType]Builder)
	for _, table := range []map[types.CitationType]rule{
		caseRules,
		legislativeRules,
		secondaryRules,
		miscRules,
	} {
		for t, r := range table {
			m[t] = r
		}
	}
	return m
}()

// Lookup returns the builder registered for t.
func Lookup(t types.CitationType) (Builder, error) {
	b, ok := registry[t]
	if !ok {
		return nil, &UnsupportedTypeError{Type: t}
	}
	return b, nil
}

// Registered returns every supported citation type in lexical order.
func Registered() []types.CitationType {
	out := make([]types.CitationType, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Params returns the declared field list for t.
func Params(t types.CitationType) ([]string, error) {
	b, err := Lookup(t)
	if err != nil {
		return nil, err
	}
	return b.Params(), nil
}

// Format renders fields as an AGLC4 citation of type t. Fields the type
// does not declare are ignored. When none of the declared fields carries a
// value the result is the empty string. Italics are emitted as <i>...</i>.
func Format(t types.CitationType, fields types.Fields) (string, error) {
	b, err := Lookup(t)
	if err != nil {
		return "", err
	}

	selected := fields.Select(b.Params())
	if !selected.AnyPopulated() {
		return "", nil
	}

	var parts []string
	for _, frag := range b.Build(selected) {
		if frag = strings.TrimSpace(frag); frag != "" {
			parts = append(parts, frag)
		}
	}
	return Normalize(strings.Join(parts, " ")), nil
}

// FormatWith canonicalizes field names when cfg asks for it, formats, and
// renders italics in the configured markup.
func FormatWith(cfg types.FormatConfig, t types.CitationType, fields types.Fields) (string, error) {
	if cfg.Canonicalize {
		fields = fields.Canonicalize()
	}
	s, err := Format(t, fields)
	if err != nil {
		return "", err
	}
	return Render(s, cfg.Markup), nil
}

var (
	// spaceRe matches runs of horizontal whitespace.
	spaceRe = regexp.MustCompile(`[ \t]{2,}`)

	// commaRunRe matches repeated commas left by adjacent guarded fragments.
	commaRunRe = regexp.MustCompile(`,(\s*,)+`)
)

// Normalize applies the post-processing shared by every citation type:
// whitespace before a comma is removed, repeated commas collapse, leading
// and trailing commas are dropped and a single terminating period is
// appended. The empty string stays empty. Normalize is idempotent.
func Normalize(s string) string {
	s = spaceRe.ReplaceAllString(s, " ")
	for strings.Contains(s, " ,") {
		s = strings.ReplaceAll(s, " ,", ",")
	}
	s = commaRunRe.ReplaceAllString(s, ",")
	s = strings.Trim(s, " ,")
	if s == "" {
		return ""
	}
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
