package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

// ProvisionUser creates one PENDING assignment per catalog card for a newly
// created user and returns them joined with their cards.
// An empty catalog fails with domain.ErrConfiguration and creates nothing.
// Callers run it in the same transaction as the user insert.
func (s *Service) ProvisionUser(ctx context.Context, user *domain.User) ([]domain.UserCard, error) {
	cards, err := s.cards.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ProvisionUser: list cards: %w", err)
	}

	if len(cards) == 0 {
		s.log.ErrorContext(ctx, "card catalog is empty, cannot provision user",
			slog.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("catalog.ProvisionUser: card catalog is empty, seed it first: %w", domain.ErrConfiguration)
	}

	cardIDs := make([]uuid.UUID, len(cards))
	for i, c := range cards {
		cardIDs[i] = c.ID
	}

	if _, err := s.userCards.CreateForUser(ctx, user.ID, cardIDs, s.now()); err != nil {
		return nil, fmt.Errorf("catalog.ProvisionUser: create user cards: %w", err)
	}

	userCards, err := s.userCards.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("catalog.ProvisionUser: reload user cards: %w", err)
	}

	s.log.InfoContext(ctx, "user provisioned",
		slog.String("user_id", user.ID.String()),
		slog.Int("cards", len(userCards)))

	return userCards, nil
}
