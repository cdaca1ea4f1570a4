package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

// ValidateToken checks an access token and returns the session user id.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, domain.ErrUnauthorized
	}

	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "access token rejected", "error", err)
		return uuid.Nil, fmt.Errorf("auth.ValidateToken: %w", domain.ErrUnauthorized)
	}

	return claims.UserID, nil
}
