package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email. No assignments are created.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCard inserts a catalog card with a unique code.
func SeedCard(t *testing.T, pool *pgxpool.Pool) domain.Card {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.Card{
		ID:        uuid.New(),
		Code:      "TEST-" + suffix,
		Title:     "Test Card " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO cards (id, code, title, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		card.ID, card.Code, card.Title, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard: %v", err)
	}

	return card
}

// SeedUserCard assigns card to user in PENDING state.
func SeedUserCard(t *testing.T, pool *pgxpool.Pool, userID, cardID uuid.UUID) domain.UserCard {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	uc := domain.UserCard{
		ID:        uuid.New(),
		UserID:    userID,
		CardID:    cardID,
		Status:    domain.CardStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO user_cards (id, user_id, card_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uc.ID, uc.UserID, uc.CardID, string(uc.Status), uc.CreatedAt, uc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUserCard: %v", err)
	}

	return uc
}
