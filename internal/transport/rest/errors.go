package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
	"github.com/heartmarshall/signdeck-backend/pkg/ctxutil"
)

const (
	msgUnexpected    = "Unexpected Error"
	msgConfiguration = "Service is not configured, contact the operator"
)

// respondError maps a service error onto the HTTP surface. notFound is the
// body used for domain.ErrNotFound; an empty value falls back to "Not Found".
// Only 5xx responses log the underlying error.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, notFound string) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		resp := errorResponse{Error: ve.Error(), Fields: make([]fieldErrorDTO, len(ve.Errors))}
		for i, fe := range ve.Errors {
			resp.Fields[i] = fieldErrorDTO{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		if notFound == "" {
			notFound = "Not Found"
		}
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "Already Exists")
	case errors.Is(err, domain.ErrConfiguration):
		log.With(ctxutil.LogAttrs(r.Context())...).ErrorContext(r.Context(), "service misconfigured",
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgConfiguration)
	default:
		log.With(ctxutil.LogAttrs(r.Context())...).ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path))
		writeError(w, http.StatusInternalServerError, msgUnexpected)
	}
}

func userNotFound(id string) string {
	return "User not found with ID: " + id
}
