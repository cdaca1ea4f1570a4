package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

// GetUser returns a user with every assignment and its card.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}

	userCards, err := s.userCards.GetByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: user cards: %w", err)
	}
	if userCards == nil {
		userCards = []domain.UserCard{}
	}
	user.UserCards = userCards

	return user, nil
}

// GetUserByRawID parses id first; a malformed id is reported as not found.
func (s *Service) GetUserByRawID(ctx context.Context, id string) (*domain.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: user %q: %w", id, domain.ErrNotFound)
	}
	return s.GetUser(ctx, uid)
}

// ListUsers returns all active users with their assignments and cards.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	if len(users) == 0 {
		return []domain.User{}, nil
	}

	ids := make([]uuid.UUID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	loader := newUserCardsLoader(s.userCards)
	userCards, errs := loader.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("user.ListUsers: user cards: %w", err)
		}
	}

	for i := range users {
		users[i].UserCards = userCards[i]
	}

	return users, nil
}
