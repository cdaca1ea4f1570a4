package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

type cardService interface {
	ListCards(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error)
}

// CardHandler serves the card catalog.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "card")}
}

// List handles GET /cards. Optional query parameters: code (exact) and q
// (title substring).
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.CardFilter
	query := r.URL.Query()
	if code := strings.TrimSpace(query.Get("code")); code != "" {
		filter.Code = &code
	}
	if q := strings.TrimSpace(query.Get("q")); q != "" {
		filter.Search = &q
	}

	cards, err := h.svc.ListCards(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err, "")
		return
	}

	writeJSON(w, http.StatusOK, toCardsResponse(cards))
}
