package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated collector.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Image     *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	// UserCards holds the user's assignments when loaded.
	UserCards []UserCard
}

// UserUpdate holds optional profile fields. nil means "leave unchanged".
type UserUpdate struct {
	Name  *string
	Email *string
	Image *string
}

// IsEmpty reports whether no field is set.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Image == nil
}
