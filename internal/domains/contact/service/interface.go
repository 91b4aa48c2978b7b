package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact/model"
)

// Service exposes contact message business operations.
type Service interface {
	// Submit stores a new message with status unread.
	Submit(ctx context.Context, req *model.CreateRequest, ipAddress *string) (*model.ContactMessage, error)

	// List returns messages newest-first with skip/limit pagination.
	List(ctx context.Context, skip, limit int) ([]model.ContactMessage, error)

	// UpdateStatus changes a message's status. Returns
	// model.ErrNotFound when the id does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.MessageStatus) error

	// CountSince counts messages created at or after the cutoff; it
	// satisfies the analytics report's contact counter.
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
