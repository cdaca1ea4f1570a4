package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

// ListCards returns catalog cards matching filter. The unfiltered listing is
// served from the cache when one is configured; cache failures only degrade
// to a database read.
func (s *Service) ListCards(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error) {
	unfiltered := filter.Code == nil && (filter.Search == nil || *filter.Search == "")

	if unfiltered && s.cache != nil {
		cards, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.WarnContext(ctx, "catalog cache read failed", slog.String("error", err.Error()))
		} else if ok {
			return cards, nil
		}
	}

	cards, err := s.cards.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListCards: %w", err)
	}

	if unfiltered && s.cache != nil && len(cards) > 0 {
		if err := s.cache.Set(ctx, cards); err != nil {
			s.log.WarnContext(ctx, "catalog cache write failed", slog.String("error", err.Error()))
		}
	}

	return cards, nil
}
