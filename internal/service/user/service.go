// Package user implements user projections and the reconciliation of
// client-submitted assignment edits.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (*domain.User, error)
}

// userCardRepo defines the assignment repository interface needed by user service.
type userCardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UserCard, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.UserCard, error)
	GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.UserCard, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.UserCardUpdate) (*domain.UserCard, error)
}

// Service implements user read projections and reconciliation.
type Service struct {
	log       *slog.Logger
	users     userRepo
	userCards userCardRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, userCards userCardRepo) *Service {
	return &Service{
		log:       logger.With("service", "user"),
		users:     users,
		userCards: userCards,
	}
}
