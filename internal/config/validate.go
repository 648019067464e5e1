package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
// It runs before any network activity; a missing Planka credential or
// identifier aborts the process here.
func (c *ScoutConfig) Validate() error {
	if c.Planka.URL == "" {
		return errors.New("planka.url is required")
	}
	if c.Planka.Token == "" {
		return errors.New("planka.token is required")
	}
	if c.Planka.BoardID == "" {
		return errors.New("planka.board_id is required")
	}
	if c.Planka.TodoListID == "" {
		return errors.New("planka.todo_list_id is required")
	}

	if len(c.Feeds) == 0 {
		return errors.New("at least one feed is required")
	}
	for i, f := range c.Feeds {
		if err := f.validate(fmt.Sprintf("feeds[%d]", i)); err != nil {
			return err
		}
	}

	if len(c.Keywords) == 0 {
		return errors.New("at least one keyword is required")
	}

	if c.Aggregator.MaxEntriesPerFeed < 1 {
		return errors.New("aggregator.max_entries_per_feed must be >= 1")
	}
	if c.Aggregator.RequestTimeout <= 0 {
		return errors.New("aggregator.request_timeout must be positive")
	}

	return nil
}

func (f *FeedConfig) validate(prefix string) error {
	if f.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if f.URL == "" {
		return fmt.Errorf("%s.url is required", prefix)
	}
	if !strings.HasPrefix(f.URL, "http://") && !strings.HasPrefix(f.URL, "https://") {
		return fmt.Errorf("%s.url must be an http(s) URL, got %q", prefix, f.URL)
	}
	return nil
}
