// Package filter decides which feed entries are worth a card: keyword
// relevance over title+summary, and HTML-stripped summaries capped at a
// fixed length.
package filter

import "strings"

// Relevant reports whether the lower-cased "title summary" concatenation
// contains any keyword as a substring. The first matching keyword wins;
// there is no stemming or weighting.
func Relevant(keywords []string, title, summary string) bool {
	text := strings.ToLower(title + " " + summary)
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
