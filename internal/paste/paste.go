// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paste turns clipboard content copied out of legal databases into
// the plain text the extractor reads. Westlaw and LexisNexis copy citations
// as rich text, so the HTML flavour is walked and its visible text kept.
package paste

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Converter reads one clipboard flavour and returns plain text.
type Converter interface {
	Convert(r io.Reader) (string, error)
}

// HTML converts an HTML fragment or document.
type HTML struct{}

// Plain passes text through unchanged apart from line endings.
type Plain struct{}

// Convert implements Converter.
func (HTML) Convert(r io.Reader) (string, error) {
	return Text(r)
}

// Convert implements Converter.
func (Plain) Convert(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading paste: %w", err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// For picks the converter for s: HTML when it looks like markup, plain
// text otherwise.
func For(s string) Converter {
	if LooksLikeHTML(s) {
		return HTML{}
	}
	return Plain{}
}

var (
	tagRe = regexp.MustCompile(`(?i)<(?:html|body|div|span|p|br|i|em|b|strong|a|table|td|meta|!doctype)\b[^>]*>`)

	blankLinesRe = regexp.MustCompile(`\n{2,}`)
	spaceRunRe   = regexp.MustCompile(`[ \t\x{00A0}]+`)
)

// LooksLikeHTML reports whether s contains at least one common HTML tag.
func LooksLikeHTML(s string) bool {
	return tagRe.MatchString(s)
}

// skipped elements never contribute visible text.
var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Iframe:   true,
	atom.Head:     true,
}

// block elements end a line.
var block = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Li: true,
	atom.Tr: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true, atom.Blockquote: true,
	atom.Table: true, atom.Ul: true, atom.Ol: true,
}

// Text parses HTML from r and returns its visible text. Inline runs are
// joined with their original spacing, block elements become line breaks
// and each line is trimmed.
func Text(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipped[n.DataAtom] {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && block[n.DataAtom] {
			buf.WriteString("\n")
		}
	}
	walk(doc)

	return tidy(buf.String()), nil
}

func tidy(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(spaceRunRe.ReplaceAllString(l, " "))
	}
	s = blankLinesRe.ReplaceAllString(strings.Join(lines, "\n"), "\n")
	return strings.Trim(s, "\n")
}
