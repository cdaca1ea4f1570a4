package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is an entry of the catalog. Cards are seeded out-of-band and are
// read-only for the application.
type Card struct {
	ID          uuid.UUID
	Code        string
	Title       string
	Description *string
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserCard is a user's assignment of one catalog card.
type UserCard struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CardID    uuid.UUID
	Status    CardStatus
	Comment   *string
	SignedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Card is the joined catalog row. Zero when not loaded.
	Card Card
}

// UserCardUpdate is a partial update of an assignment.
// Status is always applied; Comment and SignedAt only when Set.
type UserCardUpdate struct {
	Status   CardStatus
	Comment  Optional[string]
	SignedAt Optional[time.Time]
}

// CardFilter narrows a catalog listing. nil fields are ignored.
type CardFilter struct {
	Code   *string
	Search *string
}
