package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact/model"
)

// Repository is the data access contract for contact messages.
type Repository interface {
	// Create inserts a message and returns nothing beyond the error;
	// the caller already owns the full record.
	Create(ctx context.Context, msg *model.ContactMessage) error

	// List returns messages newest-first with skip/limit pagination.
	List(ctx context.Context, skip, limit int) ([]model.ContactMessage, error)

	// UpdateStatus patches the status of one message. Returns false
	// when no message matched the id.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.MessageStatus) (bool, error)

	// CountSince counts messages created at or after the cutoff; used
	// by the analytics stats report.
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
