package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/contact/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO contact_messages (id, name, email, subject, message, status, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
		msg.Status,
		msg.IPAddress,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, skip, limit int) ([]model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, subject, message, status, ip_address, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	messages := []model.ContactMessage{}
	for rows.Next() {
		var msg model.ContactMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Subject,
			&msg.Message,
			&msg.Status,
			&msg.IPAddress,
			&msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}

	return messages, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.MessageStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_messages SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return false, fmt.Errorf("update contact message status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM contact_messages WHERE created_at >= $1`, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count contact messages: %w", err)
	}
	return count, nil
}
