package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/admin/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, created_at, last_login
		FROM admin_users
		WHERE username = $1
	`, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("get admin user: %w", err)
	}
	return &user, nil
}

func (r *postgresRepository) Create(ctx context.Context, user *model.AdminUser) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO admin_users (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, user.ID, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	return nil
}

func (r *postgresRepository) TouchLastLogin(ctx context.Context, username string, at time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE admin_users SET last_login = $1 WHERE username = $2`, at, username)
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}
