//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/signdeck-backend/internal/adapter/cache"
	"github.com/heartmarshall/signdeck-backend/internal/adapter/postgres"
	cardrepo "github.com/heartmarshall/signdeck-backend/internal/adapter/postgres/card"
	"github.com/heartmarshall/signdeck-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/signdeck-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/signdeck-backend/internal/adapter/postgres/usercard"
	authpkg "github.com/heartmarshall/signdeck-backend/internal/auth"
	"github.com/heartmarshall/signdeck-backend/internal/config"
	authsvc "github.com/heartmarshall/signdeck-backend/internal/service/auth"
	"github.com/heartmarshall/signdeck-backend/internal/service/catalog"
	usersvc "github.com/heartmarshall/signdeck-backend/internal/service/user"
	"github.com/heartmarshall/signdeck-backend/internal/transport/middleware"
	"github.com/heartmarshall/signdeck-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// codeVerifier treats the authorization code as the local part of the email,
// so every test picks its own identity.
type codeVerifier struct{}

func (codeVerifier) VerifyCode(_ context.Context, code string) (*authpkg.OAuthIdentity, error) {
	name := "E2E " + code
	return &authpkg.OAuthIdentity{
		Email:   code + "@example.com",
		Name:    &name,
		Subject: "google-" + code,
	}, nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper). The catalog cache is off.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServer(t, testhelper.SetupTestDB(t))
}

// setupIsolatedServer is setupTestServer on a database of its own, for
// tests that count every card or every user.
func setupIsolatedServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServer(t, testhelper.SetupIsolatedDB(t))
}

func newTestServer(t *testing.T, pool *pgxpool.Pool) *testServer {
	t.Helper()

	logger := testLogger(t)

	authCfg := config.AuthConfig{
		JWTSecret:          strings.Repeat("e2e-secret-", 4),
		JWTIssuer:          "signdeck-e2e",
		AccessTokenTTL:     time.Hour,
		GoogleClientID:     "e2e-client",
		GoogleClientSecret: "e2e-secret",
	}

	cards := cardrepo.New(pool)
	users := userrepo.New(pool)
	userCards := usercard.New(pool)
	catalogCache := cache.New(config.CacheConfig{})

	catalogSvc := catalog.NewService(logger, cards, userCards, catalogCache)
	userSvc := usersvc.NewService(logger, users, userCards)
	jwt := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, userCards, catalogSvc, postgres.NewTxManager(pool), codeVerifier{}, jwt, authCfg)

	mux := rest.NewRouter(rest.Handlers{
		Cards:  rest.NewCardHandler(catalogSvc, logger),
		Users:  rest.NewUserHandler(userSvc, logger),
		Auth:   rest.NewAuthHandler(authService, logger),
		Health: rest.NewHealthHandler(pool, catalogCache, "e2e"),
	}, nil)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.Auth(authService),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

func testLogger(t *testing.T) *slog.Logger {
	return slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
}

// do sends a JSON request and decodes a JSON response into out (if non-nil).
func (ts *testServer) do(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type cardJSON struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
}

type userCardJSON struct {
	ID       string     `json:"id"`
	UserID   string     `json:"userId"`
	CardID   string     `json:"cardId"`
	Status   string     `json:"status"`
	Comment  *string    `json:"comment"`
	SignedAt *time.Time `json:"signedAt"`
	Card     cardJSON   `json:"card"`
}

type userJSON struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	UserCards []userCardJSON `json:"userCards"`
}

type authJSON struct {
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
	User        userJSON `json:"user"`
}

type errorJSON struct {
	Error  string `json:"error"`
	Fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}

// login signs in as code@example.com and returns the session.
func (ts *testServer) login(t *testing.T, code string) (int, authJSON) {
	t.Helper()

	var res authJSON
	status := ts.do(t, http.MethodPost, "/auth/login", "", map[string]string{"provider": "google", "code": code}, &res)
	return status, res
}
