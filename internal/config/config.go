package config

import "time"

// ScoutConfig is the root configuration for a scout run.
type ScoutConfig struct {
	Planka     PlankaConfig     `yaml:"planka"`
	Feeds      []FeedConfig     `yaml:"feeds"`
	Keywords   []string         `yaml:"keywords"`
	Aggregator AggregatorConfig `yaml:"aggregator"`
}

// PlankaConfig holds the Planka board service settings.
type PlankaConfig struct {
	URL        string `yaml:"url"`
	Token      string `yaml:"token"`
	BoardID    string `yaml:"board_id"`
	TodoListID string `yaml:"todo_list_id"`
}

// FeedConfig names one syndicated feed to poll.
type FeedConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// AggregatorConfig holds pipeline settings.
type AggregatorConfig struct {
	MaxEntriesPerFeed int           `yaml:"max_entries_per_feed"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
}
