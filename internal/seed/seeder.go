package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

// cardBulkRepo defines the catalog write needed for seeding.
type cardBulkRepo interface {
	BulkInsert(ctx context.Context, cards []domain.Card) (int, error)
}

// cacheInvalidator drops the cached catalog after new cards land.
type cacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Result holds the outcome of a seed run.
type Result struct {
	Total    int
	Inserted int
	Skipped  int
	Duration time.Duration
}

// Seeder writes decks to the catalog.
type Seeder struct {
	log   *slog.Logger
	repo  cardBulkRepo
	cache cacheInvalidator
	cfg   Config
	now   func() time.Time
}

// NewSeeder creates a Seeder. cache may be nil.
func NewSeeder(log *slog.Logger, repo cardBulkRepo, cache cacheInvalidator, cfg Config) *Seeder {
	return &Seeder{
		log:   log.With("component", "seed"),
		repo:  repo,
		cache: cache,
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Run inserts the deck in batches. Codes already in the catalog are skipped,
// so re-running is safe. Existing users are not back-filled with new cards.
func (s *Seeder) Run(ctx context.Context, deck *Deck) (Result, error) {
	start := time.Now()
	cards := deck.ToCards(s.now())
	res := Result{Total: len(cards)}

	if s.cfg.DryRun {
		s.log.InfoContext(ctx, "dry run, nothing written", slog.Int("cards", len(cards)))
		res.Skipped = len(cards)
		res.Duration = time.Since(start)
		return res, nil
	}

	inserted, err := batchProcess(cards, s.cfg.BatchSize, func(batch []domain.Card) (int, error) {
		return s.repo.BulkInsert(ctx, batch)
	})
	res.Inserted = inserted
	res.Skipped = res.Total - inserted
	res.Duration = time.Since(start)
	if err != nil {
		return res, fmt.Errorf("seed.Run: insert cards: %w", err)
	}

	if inserted > 0 && s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.WarnContext(ctx, "catalog cache invalidation failed", slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "seed completed",
		slog.Int("total", res.Total),
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
		slog.Duration("duration", res.Duration))

	return res, nil
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
