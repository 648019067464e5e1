package filter

import (
	"strings"

	"golang.org/x/net/html"
)

const (
	// summaryLimit is counted in runes to match feeds with non-ASCII text.
	summaryLimit = 300
	ellipsis     = "..."
)

// Summarize strips HTML markup from content, collapses whitespace to
// single spaces, and cuts the result to 300 characters with a trailing
// ellipsis. The cut is a raw character cut, not word-boundary aware.
func Summarize(content string) string {
	text := stripTags(content)

	runes := []rune(text)
	if len(runes) > summaryLimit {
		return string(runes[:summaryLimit]) + ellipsis
	}
	return text
}

// stripTags walks the token stream and keeps text nodes only. The
// tokenizer never fails on malformed markup; it just stops at EOF.
func stripTags(content string) string {
	tz := html.NewTokenizer(strings.NewReader(content))

	var parts []string
	for {
		switch tz.Next() {
		case html.ErrorToken:
			return strings.Join(parts, " ")
		case html.TextToken:
			parts = append(parts, strings.Fields(string(tz.Text()))...)
		}
	}
}
