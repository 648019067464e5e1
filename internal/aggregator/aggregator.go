package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nfigueroa/m365scout/internal/feed"
	"github.com/nfigueroa/m365scout/internal/filter"
	"github.com/nfigueroa/m365scout/internal/planka"
)

// cardTitleLimit caps how much of the entry title ends up in the card name.
const cardTitleLimit = 80

// BoardClient is the subset of the Planka API the pipeline needs.
type BoardClient interface {
	GetBoard(ctx context.Context, boardID string) (*planka.BoardResponse, error)
	CreateCard(ctx context.Context, listID string, card planka.CardCreate) (*planka.Card, error)
}

// Config holds pipeline settings.
type Config struct {
	BoardID           string
	TodoListID        string
	Keywords          []string
	MaxEntriesPerFeed int           // only the first N entries per feed are considered
	Timeout           time.Duration // per external call
}

// Aggregator runs the one-shot aggregation pipeline.
type Aggregator struct {
	cfg     Config
	sources []feed.Source
	fetcher feed.Fetcher
	board   BoardClient
	logger  *slog.Logger

	// Links handled during this run. Lives and dies with the process;
	// cross-run dedup relies on the board existence check.
	seen map[string]struct{}

	now func() time.Time
}

// New creates an Aggregator over the given sources.
func New(cfg Config, sources []feed.Source, fetcher feed.Fetcher, board BoardClient, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxEntriesPerFeed <= 0 {
		cfg.MaxEntriesPerFeed = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Aggregator{
		cfg:     cfg,
		sources: sources,
		fetcher: fetcher,
		board:   board,
		logger:  logger,
		seen:    make(map[string]struct{}),
		now:     time.Now,
	}
}

// Run processes every source once, in configured order, and returns the
// number of new cards created. Per-source and per-entry failures degrade to
// a skip and never abort the run.
func (a *Aggregator) Run(ctx context.Context) int {
	runID := uuid.NewString()
	start := time.Now()

	a.logger.Info("run started", "run_id", runID, "sources", len(a.sources))

	var created int
	for _, src := range a.sources {
		created += a.processSource(ctx, src)
	}

	a.logger.Info("run complete",
		"run_id", runID,
		"new_cards", created,
		"duration", time.Since(start),
	)
	return created
}

// processSource fetches one feed and pushes its leading entries through the
// pipeline. A fetch failure is logged and yields zero entries.
func (a *Aggregator) processSource(ctx context.Context, src feed.Source) int {
	a.logger.Info("fetching feed", "source", src.Name, "url", src.URL)

	fetchCtx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	entries, err := a.fetcher.Fetch(fetchCtx, src)
	cancel()
	if err != nil {
		a.logger.Warn("failed to fetch feed", "source", src.Name, "err", err)
		return 0
	}

	if len(entries) > a.cfg.MaxEntriesPerFeed {
		entries = entries[:a.cfg.MaxEntriesPerFeed]
	}

	var created int
	for _, entry := range entries {
		if a.processEntry(ctx, src, entry) {
			created++
		}
	}
	return created
}

// processEntry reports whether a new card was published for the entry.
// Irrelevant entries and failed publishes are dropped without recording
// the link, so a later source (or run) can pick them up again.
func (a *Aggregator) processEntry(ctx context.Context, src feed.Source, entry feed.Entry) bool {
	if _, ok := a.seen[entry.Link]; ok {
		return false
	}

	if a.cardExists(ctx, entry.Link) {
		a.seen[entry.Link] = struct{}{}
		return false
	}

	if !filter.Relevant(a.cfg.Keywords, entry.Title, entry.Summary) {
		return false
	}

	if !a.publish(ctx, src, entry, filter.Summarize(entry.Summary)) {
		return false
	}

	a.seen[entry.Link] = struct{}{}
	return true
}

// cardExists reports whether the board already has a card whose description
// contains the link. Any failure counts as "not found"; a transient error
// here can therefore produce a duplicate card.
func (a *Aggregator) cardExists(ctx context.Context, link string) bool {
	checkCtx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	board, err := a.board.GetBoard(checkCtx, a.cfg.BoardID)
	if err != nil {
		a.logger.Warn("failed to check existing cards", "err", err)
		return false
	}

	for _, card := range board.Included.Cards {
		if strings.Contains(card.Description, link) {
			return true
		}
	}
	return false
}

// publish creates a card for the entry and reports success. Failures are
// logged and never retried.
func (a *Aggregator) publish(ctx context.Context, src feed.Source, entry feed.Entry, summary string) bool {
	title := []rune(entry.Title)
	if len(title) > cardTitleLimit {
		title = title[:cardTitleLimit]
	}

	card := planka.CardCreate{
		Name: fmt.Sprintf("[%s] %s", src.Name, string(title)),
		Description: fmt.Sprintf("%s\n\nSource: %s\nFound: %s",
			summary, entry.Link, a.now().UTC().Format("2006-01-02 15:04")),
		ListID:   a.cfg.TodoListID,
		Position: 1,
	}

	pubCtx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	created, err := a.board.CreateCard(pubCtx, a.cfg.TodoListID, card)
	if err != nil {
		a.logger.Warn("failed to create card", "name", card.Name, "err", err)
		return false
	}

	a.logger.Info("created card", "id", created.ID, "name", created.Name, "source", src.Name)
	return true
}
