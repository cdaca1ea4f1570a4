package rest

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

type cardResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type userCardResponse struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	CardID    string       `json:"cardId"`
	Status    string       `json:"status"`
	Comment   *string      `json:"comment"`
	SignedAt  *time.Time   `json:"signedAt"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Card      cardResponse `json:"card"`
}

type userResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Image     *string            `json:"image"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	DeletedAt *time.Time         `json:"deletedAt"`
	UserCards []userCardResponse `json:"userCards"`
}

func toCardResponse(c domain.Card) cardResponse {
	return cardResponse{
		ID:          c.ID.String(),
		Code:        c.Code,
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCardsResponse(cards []domain.Card) []cardResponse {
	out := make([]cardResponse, len(cards))
	for i, c := range cards {
		out[i] = toCardResponse(c)
	}
	return out
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		DeletedAt: u.DeletedAt,
		UserCards: make([]userCardResponse, len(u.UserCards)),
	}
	for i, uc := range u.UserCards {
		resp.UserCards[i] = userCardResponse{
			ID:        uc.ID.String(),
			UserID:    uc.UserID.String(),
			CardID:    uc.CardID.String(),
			Status:    uc.Status.String(),
			Comment:   uc.Comment,
			SignedAt:  uc.SignedAt,
			CreatedAt: uc.CreatedAt,
			UpdatedAt: uc.UpdatedAt,
			Card:      toCardResponse(uc.Card),
		}
	}
	return resp
}

func toUsersResponse(users []domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	return out
}

// optional distinguishes an absent JSON field from an explicit null.
type optional[T any] struct {
	domain.Optional[T]
}

func (o *optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

type updateUserRequest struct {
	ID        string                 `json:"id"`
	Name      *string                `json:"name"`
	Email     *string                `json:"email"`
	Image     *string                `json:"image"`
	UserCards *[]userCardEditRequest `json:"userCards"`
}

type userCardEditRequest struct {
	ID       string           `json:"id"`
	Status   string           `json:"status"`
	Comment  optional[string] `json:"comment"`
	SignedAt optional[string] `json:"signedAt"`
}

type loginRequest struct {
	Provider string `json:"provider"`
	Code     string `json:"code"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	User        userResponse `json:"user"`
}
