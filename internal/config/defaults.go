package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultMaxEntriesPerFeed = 5
	DefaultRequestTimeout    = 10 * time.Second
)

// DefaultFeeds returns the built-in Microsoft news feeds, polled when the
// config file does not name its own.
func DefaultFeeds() []FeedConfig {
	return []FeedConfig{
		{Name: "Microsoft Tech Community", URL: "https://techcommunity.microsoft.com/rss-feeds"},
		{Name: "Power Platform Blog", URL: "https://powerplatform.microsoft.com/en-us/blog/feed/"},
		{Name: "Microsoft 365 Blog", URL: "https://www.microsoft.com/en-us/microsoft-365/blog/feed/"},
		{Name: "Azure Blog", URL: "https://azure.microsoft.com/en-us/blog/feed/"},
		{Name: "Microsoft Learn", URL: "https://docs.microsoft.com/api/search/rss?search=Power%20Platform&locale=en-us"},
		{Name: "Dynamics 365 Blog", URL: "https://cloudblogs.microsoft.com/dynamics365/feed/"},
	}
}

// DefaultKeywords returns the built-in relevance keywords. Matching is
// case-insensitive substring containment, so keep these lower-case.
func DefaultKeywords() []string {
	return []string{
		"power platform", "copilot", "power apps", "power automate",
		"power bi", "dynamics 365", "m365", "microsoft 365",
		"ai", "agent", "automation", "low-code", "no-code",
		"sharepoint", "teams", "azure", "microsoft",
	}
}

func (c *ScoutConfig) applyDefaults() {
	if len(c.Feeds) == 0 {
		c.Feeds = DefaultFeeds()
	}
	if len(c.Keywords) == 0 {
		c.Keywords = DefaultKeywords()
	}
	if c.Aggregator.MaxEntriesPerFeed == 0 {
		c.Aggregator.MaxEntriesPerFeed = DefaultMaxEntriesPerFeed
	}
	if c.Aggregator.RequestTimeout == 0 {
		c.Aggregator.RequestTimeout = DefaultRequestTimeout
	}
}
