package service

import (
	"context"
	"time"

	"portfolio-backend/internal/domains/analytics/model"
)

// Enqueuer hands events to the background worker. Implemented by the
// asynq queue client; nil when no queue is configured.
type Enqueuer interface {
	EnqueueTrackEvent(ctx context.Context, event *model.AnalyticsEvent) error
}

// ContactCounter is the slice of the contact repository the stats
// report needs.
type ContactCounter interface {
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// Service is the analytics business logic contract.
type Service interface {
	// Track records one event best-effort. It never returns an error:
	// a tracking failure must not degrade the primary request.
	Track(ctx context.Context, event *model.AnalyticsEvent)

	// Stats computes the windowed aggregate report over the last
	// `days` days.
	Stats(ctx context.Context, days int) (*model.Stats, error)
}
