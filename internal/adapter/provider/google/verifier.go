// Package google exchanges Google OAuth authorization codes for identities.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/signdeck-backend/internal/auth"
	"github.com/heartmarshall/signdeck-backend/internal/config"
	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

// Endpoints are the Google OAuth URLs. Overridden in tests.
type Endpoints struct {
	Token    string
	Userinfo string
}

// DefaultEndpoints are the production Google endpoints.
var DefaultEndpoints = Endpoints{
	Token:    "https://oauth2.googleapis.com/token",
	Userinfo: "https://www.googleapis.com/oauth2/v2/userinfo",
}

// errUnavailable marks a provider outage, as opposed to a rejected code.
var errUnavailable = errors.New("oauth: google unavailable")

const retryBackoff = 500 * time.Millisecond

// Verifier exchanges Google OAuth authorization codes for user identity.
type Verifier struct {
	clientID     string
	clientSecret string
	redirectURI  string
	endpoints    Endpoints
	httpClient   *http.Client
	log          *slog.Logger
}

// NewVerifier creates a Google OAuth verifier from the auth config.
func NewVerifier(cfg config.AuthConfig, endpoints Endpoints, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSecret,
		redirectURI:  cfg.GoogleRedirectURI,
		endpoints:    endpoints,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		log:          logger.With("adapter", "google_oauth"),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	Error       string `json:"error"`
}

type userinfoResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// VerifyCode exchanges an authorization code for a verified identity.
// Rejected or unverified codes wrap domain.ErrUnauthorized.
func (v *Verifier) VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("oauth: empty code: %w", domain.ErrUnauthorized)
	}

	accessToken, err := v.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	info, err := v.fetchUserinfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if !info.VerifiedEmail {
		return nil, fmt.Errorf("oauth: email not verified: %w", domain.ErrUnauthorized)
	}

	identity := &auth.OAuthIdentity{
		Email:   info.Email,
		Subject: info.ID,
	}
	if info.Name != "" {
		identity.Name = &info.Name
	}
	if info.Picture != "" {
		identity.AvatarURL = &info.Picture
	}

	v.log.DebugContext(ctx, "google oauth success", slog.Any("identity", identity))
	return identity, nil
}

func (v *Verifier) exchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"client_id":     {v.clientID},
		"client_secret": {v.clientSecret},
		"redirect_uri":  {v.redirectURI},
	}.Encode()

	newReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoints.Token, strings.NewReader(form))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	}

	status, body, err := v.do(ctx, newReq)
	if err != nil {
		v.log.ErrorContext(ctx, "google token exchange failed", slog.String("error", err.Error()))
		return "", errUnavailable
	}

	var resp tokenResponse
	_ = json.Unmarshal(body, &resp)

	switch {
	case status == http.StatusBadRequest || status == http.StatusUnauthorized:
		v.log.WarnContext(ctx, "google rejected code", slog.Int("status", status), slog.String("error", resp.Error))
		return "", fmt.Errorf("oauth: invalid or expired code: %w", domain.ErrUnauthorized)
	case status != http.StatusOK:
		v.log.ErrorContext(ctx, "google token exchange failed", slog.Int("status", status))
		return "", errUnavailable
	case resp.AccessToken == "":
		return "", fmt.Errorf("oauth: token response without access_token")
	}

	return resp.AccessToken, nil
}

func (v *Verifier) fetchUserinfo(ctx context.Context, accessToken string) (*userinfoResponse, error) {
	newReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoints.Userinfo, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)
		return req, nil
	}

	status, body, err := v.do(ctx, newReq)
	if err != nil {
		v.log.ErrorContext(ctx, "google userinfo failed", slog.String("error", err.Error()))
		return nil, errUnavailable
	}
	if status != http.StatusOK {
		v.log.ErrorContext(ctx, "google userinfo failed", slog.Int("status", status))
		return nil, errUnavailable
	}

	var info userinfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("oauth: decode userinfo: %w", err)
	}
	if info.ID == "" || info.Email == "" {
		return nil, fmt.Errorf("oauth: userinfo missing id or email")
	}
	return &info, nil
}

// do sends a request built by newReq, retrying once after a network error
// or a 5xx response.
func (v *Verifier) do(ctx context.Context, newReq func() (*http.Request, error)) (int, []byte, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return 0, nil, ctx.Err()
			}
		}

		req, err := newReq()
		if err != nil {
			return 0, nil, err
		}

		resp, err := v.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			continue
		}
		return resp.StatusCode, body, nil
	}
	return 0, nil, lastErr
}
