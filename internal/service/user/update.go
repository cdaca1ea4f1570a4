package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
	"github.com/heartmarshall/signdeck-backend/pkg/ctxutil"
)

// UpdateUser applies the optional profile fields, then every assignment edit
// in order, and returns the re-read user with all assignments.
//
// The caller must be signed in as the user being updated; an unknown or
// malformed id is not-found before it is forbidden. Edits that name a
// missing assignment, or one owned by another user, are skipped with a
// warning. Edits are not atomic as a batch: a storage failure aborts the
// remaining edits and keeps the ones already applied.
func (s *Service) UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sessionID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	userID, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUser: user %s: %w", input.ID, domain.ErrNotFound)
	}
	if userID != sessionID {
		if _, err := s.users.GetByID(ctx, userID); err != nil {
			return nil, fmt.Errorf("user.UpdateUser: %w", err)
		}
		return nil, fmt.Errorf("user.UpdateUser: user %s is not the session user: %w", input.ID, domain.ErrForbidden)
	}

	if _, err := s.users.Update(ctx, userID, input.userUpdate()); err != nil {
		return nil, fmt.Errorf("user.UpdateUser: %w", err)
	}

	applied := 0
	for _, edit := range input.UserCards {
		ok, err := s.applyEdit(ctx, userID, edit)
		if err != nil {
			s.log.ErrorContext(ctx, "user card update failed, stopping batch",
				slog.String("user_id", userID.String()),
				slog.String("user_card_id", edit.ID),
				slog.Int("applied", applied),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("user.UpdateUser: user card %s: %w", edit.ID, err)
		}
		if ok {
			applied++
		}
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUser: reload: %w", err)
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("user_id", userID.String()),
		slog.Int("edits", len(input.UserCards)),
		slog.Int("applied", applied),
		slog.Int("skipped", len(input.UserCards)-applied))

	return user, nil
}

// applyEdit reports whether the edit was applied. Only storage faults are
// returned as errors.
func (s *Service) applyEdit(ctx context.Context, userID uuid.UUID, edit UserCardEdit) (bool, error) {
	log := s.log.With(ctxutil.LogAttrs(ctx)...).With(
		slog.String("user_id", userID.String()),
		slog.String("user_card_id", edit.ID))

	id, err := uuid.Parse(edit.ID)
	if err != nil {
		log.WarnContext(ctx, "user card not found, skipping")
		return false, nil
	}

	current, err := s.userCards.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		log.WarnContext(ctx, "user card not found, skipping")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if current.UserID != userID {
		log.WarnContext(ctx, "user card belongs to another user, skipping")
		return false, nil
	}

	upd, err := edit.update()
	if err != nil {
		return false, err
	}

	if _, err := s.userCards.Update(ctx, id, upd); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.WarnContext(ctx, "user card disappeared before update, skipping")
			return false, nil
		}
		return false, err
	}

	return true, nil
}
