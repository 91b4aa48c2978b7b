package repository

import (
	"context"
	"time"

	"portfolio-backend/internal/domains/admin/model"
)

// Repository is the data access contract for admin accounts.
type Repository interface {
	// GetByUsername returns model.ErrNotFound when no account exists.
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)

	// Create inserts a new account; usernames are unique.
	Create(ctx context.Context, user *model.AdminUser) error

	// TouchLastLogin records a successful login time.
	TouchLastLogin(ctx context.Context, username string, at time.Time) error
}
