package repository

import (
	"context"
	"time"

	"portfolio-backend/internal/domains/analytics/model"
)

// Repository is the data access contract for analytics events.
type Repository interface {
	// Create appends one event.
	Create(ctx context.Context, event *model.AnalyticsEvent) error

	// Stats aggregates events with created_at >= since: total page and
	// section views, per-section counts for section views, the most
	// recent events of any kind, and download count. The contact
	// submission count is filled in by the service layer.
	Stats(ctx context.Context, since time.Time, recentLimit int) (*model.Stats, error)

	// DeleteOlderThan prunes events created before the cutoff and
	// returns how many were removed.
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}
