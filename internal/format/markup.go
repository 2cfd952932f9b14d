// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"strings"

	"github.com/pdiddy/aglc-engine/pkg/types"
)

var (
	markdownItalics = strings.NewReplacer("<i>", "*", "</i>", "*")
	plainItalics    = strings.NewReplacer("<i>", "", "</i>", "")
)

// Render converts the <i>...</i> markup of a formatted citation into m.
// MarkupHTML and unknown values return s unchanged.
func Render(s string, m types.Markup) string {
	switch m {
	case types.MarkupMarkdown:
		return markdownItalics.Replace(s)
	case types.MarkupPlain:
		return plainItalics.Replace(s)
	default:
		return s
	}
}
