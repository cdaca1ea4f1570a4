// Package catalog implements catalog reads and per-user provisioning.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

// cardRepo defines the catalog repository interface needed by the catalog service.
type cardRepo interface {
	List(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error)
	ListAll(ctx context.Context) ([]domain.Card, error)
}

// userCardRepo defines the assignment repository interface needed by the catalog service.
type userCardRepo interface {
	CreateForUser(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID, now time.Time) (int, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.UserCard, error)
}

// catalogCache caches the unfiltered catalog listing.
type catalogCache interface {
	Get(ctx context.Context) ([]domain.Card, bool, error)
	Set(ctx context.Context, cards []domain.Card) error
}

// Service implements catalog listing and user provisioning.
type Service struct {
	log       *slog.Logger
	cards     cardRepo
	userCards userCardRepo
	cache     catalogCache
	now       func() time.Time
}

// NewService creates a new catalog service. cache may be nil.
func NewService(logger *slog.Logger, cards cardRepo, userCards userCardRepo, cache catalogCache) *Service {
	return &Service{
		log:       logger.With("service", "catalog"),
		cards:     cards,
		userCards: userCards,
		cache:     cache,
		now:       func() time.Time { return time.Now().UTC() },
	}
}
