package service

import (
	"context"

	"portfolio-backend/internal/domains/admin/model"
)

// Service exposes admin authentication operations.
type Service interface {
	// Login verifies credentials and issues a short-lived access
	// token. Returns model.ErrInvalidCredentials for both unknown
	// usernames and wrong passwords.
	Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error)

	// EnsureAdmin provisions the admin account from configuration on
	// startup when it does not exist yet. A no-op when no initial
	// password is configured.
	EnsureAdmin(ctx context.Context, username, initialPassword string) error
}
