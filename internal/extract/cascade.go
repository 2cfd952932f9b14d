// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"

	"github.com/pdiddy/aglc-engine/pkg/types"
)

// pattern is one step of a cascade. kind is the citation type a match
// implies; reject, when set, discards individual matches (for example a
// court identifier that is really a database name).
type pattern struct {
	name   string
	kind   types.CitationType
	re     *regexp.Regexp
	reject func(s string, loc []int) bool
	apply  func(s string, loc []int, f types.Fields)
}

// find returns the submatch indices of the first acceptable match in s.
func (p pattern) find(s string) []int {
	if p.reject == nil {
		return p.re.FindStringSubmatchIndex(s)
	}
	for _, loc := range p.re.FindAllStringSubmatchIndex(s, -1) {
		if !p.reject(s, loc) {
			return loc
		}
	}
	return nil
}

// cascade is an ordered list of patterns tried from most to least
// specific.
type cascade []pattern

// match tries each pattern in order against every part and stops at the
// first hit. A later pattern is never tried once an earlier one matched,
// even if the earlier match is in a later part.
func (c cascade) match(parts ...string) (pattern, string, []int, bool) {
	for _, p := range c {
		for _, s := range parts {
			if loc := p.find(s); loc != nil {
				return p, s, loc, true
			}
		}
	}
	return pattern{}, "", nil, false
}

// apply runs the cascade and applies the winning pattern to f.
func (c cascade) apply(f types.Fields, parts ...string) (types.CitationType, bool) {
	p, s, loc, ok := c.match(parts...)
	if !ok {
		return "", false
	}
	if p.apply != nil {
		p.apply(s, loc, f)
	}
	return p.kind, true
}
