package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/analytics/model"
	"portfolio-backend/internal/domains/analytics/repository"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

const (
	recentActivityLimit = 10
	statsCacheTTL       = time.Minute
	trackTimeout        = 5 * time.Second
)

type analyticsService struct {
	repo     repository.Repository
	contacts ContactCounter
	enqueuer Enqueuer
	cache    cache.Cache
}

// NewAnalyticsService builds the service. enqueuer and cache may be nil;
// tracking then inserts directly and stats skips caching.
func NewAnalyticsService(repo repository.Repository, contacts ContactCounter, enqueuer Enqueuer, cache cache.Cache) Service {
	return &analyticsService{
		repo:     repo,
		contacts: contacts,
		enqueuer: enqueuer,
		cache:    cache,
	}
}

func (s *analyticsService) Track(ctx context.Context, event *model.AnalyticsEvent) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	if s.enqueuer != nil {
		err := s.enqueuer.EnqueueTrackEvent(ctx, event)
		if err == nil {
			return
		}
		logger.Error("analytics enqueue failed, falling back to direct insert", err)
	}

	// Direct insert, detached from the request lifecycle so a slow or
	// failing store never delays the primary response.
	go func() {
		insertCtx, cancel := context.WithTimeout(context.Background(), trackTimeout)
		defer cancel()

		if err := s.repo.Create(insertCtx, event); err != nil {
			logger.Error("analytics event insert failed", err)
		}
	}()
}

func (s *analyticsService) Stats(ctx context.Context, days int) (*model.Stats, error) {
	if days <= 0 {
		days = 30
	}

	cacheKey := fmt.Sprintf("analytics:stats:%d", days)
	if s.cache != nil {
		var cached model.Stats
		found, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			logger.Error("stats cache read failed", err)
		}
		if found {
			return &cached, nil
		}
	}

	// Events with created_at >= cutoff are inside the window.
	since := time.Now().UTC().Add(-time.Duration(days) * 24 * time.Hour)

	stats, err := s.repo.Stats(ctx, since, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("compute stats: %w", err)
	}

	contactCount, err := s.contacts.CountSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("count contact submissions: %w", err)
	}
	stats.ContactSubmissions = contactCount

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, stats, statsCacheTTL); err != nil {
			logger.Error("stats cache write failed", err)
		}
	}

	return stats, nil
}
