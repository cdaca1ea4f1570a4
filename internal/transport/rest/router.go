package rest

import (
	"net/http"
)

// Handlers groups every REST handler served by the router.
type Handlers struct {
	Cards  *CardHandler
	Users  *UserHandler
	Auth   *AuthHandler
	Health *HealthHandler
}

// instrumenter wraps a route handler for metrics; nil disables it.
type instrumenter interface {
	Instrument(route string, next http.Handler) http.Handler
}

// NewRouter registers all routes on a fresh ServeMux. Unmatched paths fall
// through to a JSON 404.
func NewRouter(h Handlers, metrics instrumenter) *http.ServeMux {
	mux := http.NewServeMux()

	handle := func(pattern string, fn http.HandlerFunc) {
		var handler http.Handler = fn
		if metrics != nil {
			handler = metrics.Instrument(pattern, handler)
		}
		mux.Handle(pattern, handler)
	}

	handle("GET /live", h.Health.Live)
	handle("GET /ready", h.Health.Ready)
	handle("GET /health", h.Health.Health)

	handle("GET /cards", h.Cards.List)

	handle("GET /users", h.Users.List)
	handle("GET /users/{id}", h.Users.Get)
	handle("PATCH /users", h.Users.Update)
	handle("GET /me", h.Users.Me)

	handle("POST /auth/login", h.Auth.Login)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})

	return mux
}
