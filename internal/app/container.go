package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/signdeck-backend/internal/adapter/cache"
	"github.com/heartmarshall/signdeck-backend/internal/adapter/postgres"
	cardrepo "github.com/heartmarshall/signdeck-backend/internal/adapter/postgres/card"
	userrepo "github.com/heartmarshall/signdeck-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/signdeck-backend/internal/adapter/postgres/usercard"
	"github.com/heartmarshall/signdeck-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/signdeck-backend/internal/auth"
	"github.com/heartmarshall/signdeck-backend/internal/config"
	authsvc "github.com/heartmarshall/signdeck-backend/internal/service/auth"
	"github.com/heartmarshall/signdeck-backend/internal/service/catalog"
	usersvc "github.com/heartmarshall/signdeck-backend/internal/service/user"
)

// Container holds the wired adapters and services shared by the HTTP server
// and the operator CLI.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	Pool  *pgxpool.Pool
	Cache *cache.CatalogCache
	Tx    *postgres.TxManager

	Cards     *cardrepo.Repo
	Users     *userrepo.Repo
	UserCards *usercard.Repo

	Catalog *catalog.Service
	User    *usersvc.Service
	Auth    *authsvc.Service
}

// NewContainer connects to the database and the optional cache and wires
// every service. Call Close when done.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	c := &Container{
		Config:    cfg,
		Logger:    logger,
		Pool:      pool,
		Cache:     cache.New(cfg.Cache),
		Tx:        postgres.NewTxManager(pool),
		Cards:     cardrepo.New(pool),
		Users:     userrepo.New(pool),
		UserCards: usercard.New(pool),
	}

	if c.Cache.Enabled() {
		if err := c.Cache.Ping(ctx); err != nil {
			logger.WarnContext(ctx, "catalog cache unreachable, continuing without it until it recovers",
				slog.String("addr", cfg.Cache.RedisAddr),
				slog.String("error", err.Error()))
		}
	}

	c.Catalog = catalog.NewService(logger, c.Cards, c.UserCards, c.Cache)
	c.User = usersvc.NewService(logger, c.Users, c.UserCards)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	if cfg.Auth.IsProviderAllowed("google") {
		verifier := google.NewVerifier(cfg.Auth, google.DefaultEndpoints, logger)
		c.Auth = authsvc.NewService(logger, c.Users, c.UserCards, c.Catalog, c.Tx, verifier, jwtManager, cfg.Auth)
	} else {
		c.Auth = authsvc.NewService(logger, c.Users, c.UserCards, c.Catalog, c.Tx, nil, jwtManager, cfg.Auth)
	}

	return c, nil
}

// Close releases the database pool and the cache client.
func (c *Container) Close() {
	if err := c.Cache.Close(); err != nil {
		c.Logger.Warn("close catalog cache", slog.String("error", err.Error()))
	}
	c.Pool.Close()
}
