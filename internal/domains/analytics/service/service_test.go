package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/analytics/model"
)

type fakeRepo struct {
	mu        sync.Mutex
	events    []*model.AnalyticsEvent
	lastSince time.Time
	stats     *model.Stats
	statsErr  error
}

func (f *fakeRepo) Create(ctx context.Context, event *model.AnalyticsEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeRepo) Stats(ctx context.Context, since time.Time, recentLimit int) (*model.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSince = since
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	if f.stats != nil {
		return f.stats, nil
	}
	return &model.Stats{SectionViews: map[string]int64{}, RecentActivity: []model.ActivityEntry{}}, nil
}

func (f *fakeRepo) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeRepo) created() []*model.AnalyticsEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.AnalyticsEvent, len(f.events))
	copy(out, f.events)
	return out
}

type fakeCounter struct {
	count int64
	since time.Time
}

func (f *fakeCounter) CountSince(ctx context.Context, since time.Time) (int64, error) {
	f.since = since
	return f.count, nil
}

type fakeEnqueuer struct {
	mu     sync.Mutex
	events []*model.AnalyticsEvent
	err    error
}

func (f *fakeEnqueuer) EnqueueTrackEvent(ctx context.Context, event *model.AnalyticsEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func TestTrackEnqueuesEvent(t *testing.T) {
	repo := &fakeRepo{}
	enqueuer := &fakeEnqueuer{}
	svc := NewAnalyticsService(repo, &fakeCounter{}, enqueuer, nil)

	svc.Track(context.Background(), &model.AnalyticsEvent{EventType: model.EventPageView})

	require.Len(t, enqueuer.events, 1)
	event := enqueuer.events[0]
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
	assert.Empty(t, repo.created(), "enqueued events should not be inserted directly")
}

func TestTrackFallsBackToDirectInsert(t *testing.T) {
	repo := &fakeRepo{}
	enqueuer := &fakeEnqueuer{err: errors.New("redis down")}
	svc := NewAnalyticsService(repo, &fakeCounter{}, enqueuer, nil)

	svc.Track(context.Background(), &model.AnalyticsEvent{EventType: model.EventDownload})

	// The fallback insert is detached from the caller.
	require.Eventually(t, func() bool {
		return len(repo.created()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, model.EventDownload, repo.created()[0].EventType)
}

func TestTrackAssignsIdentityOnce(t *testing.T) {
	enqueuer := &fakeEnqueuer{}
	svc := NewAnalyticsService(&fakeRepo{}, &fakeCounter{}, enqueuer, nil)

	id := uuid.New()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.Track(context.Background(), &model.AnalyticsEvent{
		ID:        id,
		EventType: model.EventContact,
		CreatedAt: at,
	})

	require.Len(t, enqueuer.events, 1)
	assert.Equal(t, id, enqueuer.events[0].ID)
	assert.Equal(t, at, enqueuer.events[0].CreatedAt)
}

func TestStatsWindowCutoff(t *testing.T) {
	repo := &fakeRepo{}
	counter := &fakeCounter{count: 7}
	svc := NewAnalyticsService(repo, counter, nil, nil)

	before := time.Now().UTC()
	stats, err := svc.Stats(context.Background(), 30)
	require.NoError(t, err)

	expected := before.Add(-30 * 24 * time.Hour)
	assert.WithinDuration(t, expected, repo.lastSince, 5*time.Second)
	assert.Equal(t, repo.lastSince, counter.since, "contact count must use the same cutoff")
	assert.Equal(t, int64(7), stats.ContactSubmissions)
}

// edgeRepo ages its events relative to the cutoff it receives, so the
// inclusive lower bound of the window can be tested exactly.
type edgeRepo struct {
	offsets []time.Duration
}

func (f *edgeRepo) Create(ctx context.Context, event *model.AnalyticsEvent) error { return nil }

func (f *edgeRepo) Stats(ctx context.Context, since time.Time, recentLimit int) (*model.Stats, error) {
	stats := &model.Stats{SectionViews: map[string]int64{}, RecentActivity: []model.ActivityEntry{}}
	for _, off := range f.offsets {
		if !since.Add(off).Before(since) {
			stats.TotalViews++
		}
	}
	return stats, nil
}

func (f *edgeRepo) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

func TestStatsWindowEdgeIsInclusive(t *testing.T) {
	repo := &edgeRepo{offsets: []time.Duration{-time.Second, 0, time.Second}}
	svc := NewAnalyticsService(repo, &fakeCounter{}, nil, nil)

	stats, err := svc.Stats(context.Background(), 30)
	require.NoError(t, err)

	// A view recorded exactly at the cutoff counts. One just before
	// does not.
	assert.Equal(t, int64(2), stats.TotalViews)
}

func TestStatsDefaultsToThirtyDays(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewAnalyticsService(repo, &fakeCounter{}, nil, nil)

	_, err := svc.Stats(context.Background(), 0)
	require.NoError(t, err)

	expected := time.Now().UTC().Add(-30 * 24 * time.Hour)
	assert.WithinDuration(t, expected, repo.lastSince, 5*time.Second)
}

func TestStatsMergesContactCount(t *testing.T) {
	repo := &fakeRepo{stats: &model.Stats{
		TotalViews:   12,
		SectionViews: map[string]int64{"skills": 4},
		Downloads:    3,
	}}
	svc := NewAnalyticsService(repo, &fakeCounter{count: 5}, nil, nil)

	stats, err := svc.Stats(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(12), stats.TotalViews)
	assert.Equal(t, int64(4), stats.SectionViews["skills"])
	assert.Equal(t, int64(3), stats.Downloads)
	assert.Equal(t, int64(5), stats.ContactSubmissions)
}

func TestStatsRepositoryError(t *testing.T) {
	repo := &fakeRepo{statsErr: errors.New("db down")}
	svc := NewAnalyticsService(repo, &fakeCounter{}, nil, nil)

	_, err := svc.Stats(context.Background(), 30)
	assert.Error(t, err)
}
