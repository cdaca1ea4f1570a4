package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
	"github.com/heartmarshall/signdeck-backend/internal/service/user"
	"github.com/heartmarshall/signdeck-backend/pkg/ctxutil"
)

type userService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByRawID(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, input user.UpdateUserInput) (*domain.User, error)
}

// UserHandler serves user projections and the batched assignment update.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		respondError(w, r, h.log, err, "")
		return
	}

	writeJSON(w, http.StatusOK, toUsersResponse(users))
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	u, err := h.svc.GetUserByRawID(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, userNotFound(id))
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Me handles GET /me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		respondError(w, r, h.log, domain.ErrUnauthorized, "")
		return
	}

	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, userNotFound(id.String()))
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Update handles PATCH /users.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserCards == nil {
		respondError(w, r, h.log, domain.NewValidationError("userCards", "required"), "")
		return
	}

	input := user.UpdateUserInput{
		ID:        req.ID,
		Name:      req.Name,
		Email:     req.Email,
		Image:     req.Image,
		UserCards: make([]user.UserCardEdit, len(*req.UserCards)),
	}
	for i, e := range *req.UserCards {
		input.UserCards[i] = user.UserCardEdit{
			ID:       e.ID,
			Status:   domain.CardStatus(e.Status),
			Comment:  e.Comment.Optional,
			SignedAt: e.SignedAt.Optional,
		}
	}

	u, err := h.svc.UpdateUser(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err, userNotFound(req.ID))
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}
