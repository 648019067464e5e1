// Package feed defines the syndicated feed types and the gofeed-backed
// fetcher used to poll them.
package feed

// Source names one feed to poll. Sources are fixed for the life of a run.
type Source struct {
	Name string
	URL  string
}

// Entry is a single syndicated item. Link doubles as the entry's unique
// identifier for deduplication.
type Entry struct {
	Title   string
	Link    string
	Summary string
}
