package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfigueroa/m365scout/internal/aggregator"
	"github.com/nfigueroa/m365scout/internal/config"
	"github.com/nfigueroa/m365scout/internal/feed"
	"github.com/nfigueroa/m365scout/internal/planka"
	"github.com/nfigueroa/m365scout/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/scout.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting scout",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration. Missing Planka credentials or identifiers abort
	// here, before any network activity.
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"planka_url", cfg.Planka.URL,
		"board_id", cfg.Planka.BoardID,
		"feeds", len(cfg.Feeds),
		"keywords", len(cfg.Keywords),
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	client := planka.NewClient(
		cfg.Planka.URL,
		cfg.Planka.Token,
		planka.WithTimeout(cfg.Aggregator.RequestTimeout),
		planka.WithLogger(logger),
	)

	sources := make([]feed.Source, 0, len(cfg.Feeds))
	for _, f := range cfg.Feeds {
		sources = append(sources, feed.Source{Name: f.Name, URL: f.URL})
	}

	agg := aggregator.New(
		aggregator.Config{
			BoardID:           cfg.Planka.BoardID,
			TodoListID:        cfg.Planka.TodoListID,
			Keywords:          cfg.Keywords,
			MaxEntriesPerFeed: cfg.Aggregator.MaxEntriesPerFeed,
			Timeout:           cfg.Aggregator.RequestTimeout,
		},
		sources,
		feed.NewHTTPFetcher(cfg.Aggregator.RequestTimeout),
		client,
		logger,
	)

	created := agg.Run(ctx)

	logger.Info("scout finished", "new_cards", created)
}
