package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

const (
	maxNameLen    = 255
	maxImageLen   = 2048
	maxCommentLen = 1000
	maxEdits      = 500
)

// UpdateUserInput is a client-submitted update of a user and a batch of
// assignment edits. IDs are kept as received so unknown or malformed ids can
// be reported as not-found (user) or skipped (assignment).
type UpdateUserInput struct {
	ID        string
	Name      *string
	Email     *string
	Image     *string
	UserCards []UserCardEdit
}

// UserCardEdit is a partial update of one assignment. Status is required;
// Comment and SignedAt are applied only when Set.
type UserCardEdit struct {
	ID       string
	Status   domain.CardStatus
	Comment  domain.Optional[string]
	SignedAt domain.Optional[string]
}

// Validate checks the shape of the input. It does not touch storage.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		switch {
		case name == "":
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		case len(name) > maxNameLen:
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Email != nil && !validEmail(*i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if i.Image != nil && len(*i.Image) > maxImageLen {
		errs = append(errs, domain.FieldError{Field: "image", Message: "too long"})
	}

	if len(i.UserCards) > maxEdits {
		errs = append(errs, domain.FieldError{Field: "userCards", Message: fmt.Sprintf("at most %d items", maxEdits)})
	}

	for idx, e := range i.UserCards {
		if strings.TrimSpace(e.ID) == "" {
			errs = append(errs, domain.FieldError{Field: domain.ItemField("userCards", idx, "id"), Message: "required"})
		}
		if !e.Status.IsValid() {
			errs = append(errs, domain.FieldError{Field: domain.ItemField("userCards", idx, "status"), Message: "must be PENDING or SIGNED"})
		}
		if e.Comment.Set && e.Comment.Value != nil && len(*e.Comment.Value) > maxCommentLen {
			errs = append(errs, domain.FieldError{Field: domain.ItemField("userCards", idx, "comment"), Message: "too long"})
		}
		if e.SignedAt.Set && e.SignedAt.Value != nil {
			if _, err := parseSignedAt(*e.SignedAt.Value); err != nil {
				errs = append(errs, domain.FieldError{Field: domain.ItemField("userCards", idx, "signedAt"), Message: "must be an RFC 3339 timestamp"})
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// userUpdate converts the optional profile fields. Email is normalized.
func (i UpdateUserInput) userUpdate() domain.UserUpdate {
	upd := domain.UserUpdate{Image: i.Image}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		upd.Name = &name
	}
	if i.Email != nil {
		email := domain.NormalizeEmail(*i.Email)
		upd.Email = &email
	}
	return upd
}

// update converts an edit into a storage patch. A malformed signedAt is a
// validation error.
func (e UserCardEdit) update() (domain.UserCardUpdate, error) {
	upd := domain.UserCardUpdate{
		Status:  e.Status,
		Comment: e.Comment,
	}
	if e.SignedAt.Set {
		if e.SignedAt.Value == nil {
			upd.SignedAt = domain.Null[time.Time]()
		} else {
			ts, err := parseSignedAt(*e.SignedAt.Value)
			if err != nil {
				return domain.UserCardUpdate{}, domain.NewValidationError("signedAt", "must be an RFC 3339 timestamp")
			}
			upd.SignedAt = domain.Some(ts)
		}
	}
	return upd, nil
}

func parseSignedAt(s string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC(), nil
}

func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
