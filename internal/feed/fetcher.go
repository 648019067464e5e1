package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// Fetcher retrieves the current entries of a feed source.
type Fetcher interface {
	Fetch(ctx context.Context, src Source) ([]Entry, error)
}

// HTTPFetcher fetches feeds over HTTP and parses them with gofeed.
type HTTPFetcher struct {
	parser *gofeed.Parser
}

// NewHTTPFetcher creates a fetcher whose requests are bounded by timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	p := gofeed.NewParser()
	p.Client = &http.Client{Timeout: timeout}
	return &HTTPFetcher{parser: p}
}

// Fetch downloads and parses the source's feed. Entries keep the feed's
// native order; Summary falls back to the item content when the feed has
// no description.
func (f *HTTPFetcher) Fetch(ctx context.Context, src Source) ([]Entry, error) {
	parsed, err := f.parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", src.Name, err)
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		summary := item.Description
		if summary == "" {
			summary = item.Content
		}
		entries = append(entries, Entry{
			Title:   item.Title,
			Link:    item.Link,
			Summary: summary,
		})
	}

	return entries, nil
}
