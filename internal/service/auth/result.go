package auth

import "github.com/heartmarshall/signdeck-backend/internal/domain"

// AuthResult is returned by Login and SignIn.
type AuthResult struct {
	AccessToken string
	User        *domain.User
	// Created is true when this sign-in registered the user.
	Created bool
}
