// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paste

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "inline italics keep spacing",
			in:   `<i>Smith v Jones</i> [2020] NSWSC 123`,
			want: "Smith v Jones [2020] NSWSC 123",
		},
		{
			name: "span runs",
			in:   `<span>Mabo v Queensland (No 2)</span><span> (1992) 175 CLR 1</span>`,
			want: "Mabo v Queensland (No 2) (1992) 175 CLR 1",
		},
		{
			name: "blocks become lines",
			in:   `<div>First line</div><div>Second   line</div>`,
			want: "First line\nSecond line",
		},
		{
			name: "script and style skipped",
			in:   `<html><head><style>p{}</style></head><body><script>x()</script><p>Visible</p></body></html>`,
			want: "Visible",
		},
		{
			name: "entities decoded",
			in:   `<p>Law &amp; Social Inquiry&nbsp;44</p>`,
			want: "Law & Social Inquiry 44",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Text(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"<i>Smith v Jones</i>", true},
		{`<SPAN style="x">a</SPAN>`, true},
		{"<!DOCTYPE html><html></html>", true},
		{"Smith v Jones [2020] NSWSC 123", false},
		{"a < b and c > d", false},
	}
	for _, tt := range tests {
		if got := LooksLikeHTML(tt.in); got != tt.want {
			t.Errorf("LooksLikeHTML(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFor(t *testing.T) {
	assert.IsType(t, HTML{}, For("<p>x</p>"))
	assert.IsType(t, Plain{}, For("x"))
}

func TestPlainConvert(t *testing.T) {
	got, err := Plain{}.Convert(strings.NewReader("a\r\nb"))
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestPlainConvertReadError(t *testing.T) {
	_, err := Plain{}.Convert(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading paste")
}
