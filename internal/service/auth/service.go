// Package auth implements sign-in: provider code verification, first-login
// registration with catalog provisioning, and session tokens.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/signdeck-backend/internal/auth"
	"github.com/heartmarshall/signdeck-backend/internal/config"
	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// userCardReader loads the assignments of a returning user.
type userCardReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.UserCard, error)
}

// provisioner creates the initial assignments of a new user.
type provisioner interface {
	ProvisionUser(ctx context.Context, user *domain.User) ([]domain.UserCard, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// oauthVerifier exchanges a provider authorization code for an identity.
type oauthVerifier interface {
	VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
	ValidateAccessToken(token string) (auth.Claims, error)
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	userCards userCardReader
	catalog   provisioner
	tx        txManager
	verifiers map[string]oauthVerifier
	jwt       jwtManager
	cfg       config.AuthConfig
	now       func() time.Time
}

// NewService creates a new auth service instance. google may be nil when the
// provider is not configured.
func NewService(
	logger *slog.Logger,
	users userRepo,
	userCards userCardReader,
	catalog provisioner,
	tx txManager,
	google oauthVerifier,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	verifiers := make(map[string]oauthVerifier)
	if google != nil {
		verifiers["google"] = google
	}

	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		userCards: userCards,
		catalog:   catalog,
		tx:        tx,
		verifiers: verifiers,
		jwt:       jwt,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}
