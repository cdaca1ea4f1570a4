package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/signdeck-backend/internal/auth"
	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

// Login verifies an authorization code with the provider and signs the
// resulting identity in.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// Step 1: Validate input
	if err := input.Validate(s.cfg.AllowedProviders()); err != nil {
		return nil, err
	}

	verifier, ok := s.verifiers[input.Provider]
	if !ok {
		return nil, domain.NewValidationError("provider", "unsupported provider")
	}

	// Step 2: Verify OAuth code with provider
	identity, err := verifier.VerifyCode(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("auth.Login oauth verification: %w", err)
	}

	// Step 3: Find or register
	result, err := s.SignIn(ctx, identity)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user logged in via oauth",
		slog.String("user_id", result.User.ID.String()),
		slog.String("provider", input.Provider),
		slog.Bool("created", result.Created))

	return result, nil
}

// SignIn finds the user by normalized email or registers a new one. A new
// user and its assignments are created in one transaction; if provisioning
// fails the user is not created either.
func (s *Service) SignIn(ctx context.Context, identity *auth.OAuthIdentity) (*AuthResult, error) {
	if identity == nil || strings.TrimSpace(identity.Email) == "" {
		return nil, fmt.Errorf("auth.SignIn: identity without email: %w", domain.ErrUnauthorized)
	}
	email := domain.NormalizeEmail(identity.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.SignIn get user by email: %w", err)
	}

	created := false
	if user == nil {
		user, created, err = s.register(ctx, identity, email)
		if err != nil {
			return nil, err
		}
	}

	// A registration carries its fresh assignments; everyone else is re-read.
	if !created {
		cards, err := s.userCards.GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("auth.SignIn load user cards: %w", err)
		}
		if cards == nil {
			cards = []domain.UserCard{}
		}
		user.UserCards = cards
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn issue token: %w", err)
	}

	return &AuthResult{AccessToken: token, User: user, Created: created}, nil
}

// register creates the user and provisions it. A concurrent registration of
// the same email loses the unique constraint race and reuses the winner.
func (s *Service) register(ctx context.Context, identity *auth.OAuthIdentity, email string) (*domain.User, bool, error) {
	var createdUser *domain.User

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now()
		newUser := &domain.User{
			ID:        uuid.New(),
			Name:      displayName(identity, email),
			Email:     email,
			Image:     identity.AvatarURL,
			CreatedAt: now,
			UpdatedAt: now,
		}

		user, err := s.users.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		userCards, err := s.catalog.ProvisionUser(txCtx, user)
		if err != nil {
			return fmt.Errorf("provision user: %w", err)
		}
		user.UserCards = userCards

		createdUser = user
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			user, retryErr := s.users.GetByEmail(ctx, email)
			if retryErr == nil {
				return user, false, nil
			}
		}
		return nil, false, fmt.Errorf("auth.SignIn register user: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", createdUser.ID.String()),
		slog.Int("cards", len(createdUser.UserCards)))

	return createdUser, true, nil
}

// displayName prefers the provider's name and falls back to a handle derived
// from the email.
func displayName(identity *auth.OAuthIdentity, email string) string {
	if name := identity.DisplayName(); name != "" {
		return name
	}
	return domain.SanitizeUsername(email)
}
