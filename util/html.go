package util

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags reduces rendered HTML to its text content, for excerpts.
func StripTags(input string) string {

	var buf strings.Builder
	var tokenizer = html.NewTokenizer(strings.NewReader(input))

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(buf.String()), " ")
		case html.TextToken:
			buf.Write(tokenizer.Text())
			buf.WriteByte(' ')
		}
	}
}

// Excerpt strips tags and truncates, for article teasers.
func Excerpt(renderedHTML string, maxRunes int) string {
	return Trunc(StripTags(renderedHTML), maxRunes)
}
