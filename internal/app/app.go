package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/signdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/signdeck-backend/internal/config"
	"github.com/heartmarshall/signdeck-backend/internal/transport/middleware"
	"github.com/heartmarshall/signdeck-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires the
// services, serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("cache", cfg.Cache.Enabled()),
		slog.Any("providers", cfg.Auth.AllowedProviders()),
	)

	if cfg.Database.AutoMigrate {
		results, err := postgres.Migrate(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", len(results)))
	}

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newHandler(c, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}

// newHandler builds the REST router and wraps it in the middleware stack.
// limiter may be nil.
func newHandler(c *Container, limiter *middleware.RateLimiter) http.Handler {
	cfg := c.Config
	logger := c.Logger

	handlers := rest.Handlers{
		Cards:  rest.NewCardHandler(c.Catalog, logger),
		Users:  rest.NewUserHandler(c.User, logger),
		Auth:   rest.NewAuthHandler(c.Auth, logger),
		Health: rest.NewHealthHandler(c.Pool, c.Cache, BuildVersion()),
	}

	var mux *http.ServeMux
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics := middleware.NewMetrics(reg)
		mux = rest.NewRouter(handlers, metrics)
		mux.Handle("GET "+cfg.Metrics.Path, metrics.Handler())
	} else {
		mux = rest.NewRouter(handlers, nil)
	}

	var rateLimit middleware.Middleware
	if limiter != nil {
		rateLimit = limiter.Middleware()
	}

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimit,
		middleware.Auth(c.Auth),
	)(mux)
}
