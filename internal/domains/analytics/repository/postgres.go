package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/analytics/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, event *model.AnalyticsEvent) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO analytics_events (id, event_type, section, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		event.ID,
		event.EventType,
		event.Section,
		event.IPAddress,
		event.UserAgent,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}

func (r *postgresRepository) Stats(ctx context.Context, since time.Time, recentLimit int) (*model.Stats, error) {
	stats := &model.Stats{
		SectionViews:   map[string]int64{},
		RecentActivity: []model.ActivityEntry{},
	}

	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM analytics_events
		WHERE event_type IN ($1, $2) AND created_at >= $3
	`, model.EventPageView, model.EventSectionView, since).Scan(&stats.TotalViews)
	if err != nil {
		return nil, fmt.Errorf("count views: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT section, COUNT(*) AS count
		FROM analytics_events
		WHERE event_type = $1 AND created_at >= $2 AND section IS NOT NULL
		GROUP BY section
	`, model.EventSectionView, since)
	if err != nil {
		return nil, fmt.Errorf("group section views: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var section string
		var count int64
		if err := rows.Scan(&section, &count); err != nil {
			return nil, fmt.Errorf("scan section views: %w", err)
		}
		stats.SectionViews[section] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate section views: %w", err)
	}

	recentRows, err := r.pool.Query(ctx, `
		SELECT event_type, section, created_at
		FROM analytics_events
		WHERE created_at >= $1
		ORDER BY created_at DESC
		LIMIT $2
	`, since, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	defer recentRows.Close()

	for recentRows.Next() {
		var entry model.ActivityEntry
		if err := recentRows.Scan(&entry.EventType, &entry.Section, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("scan recent activity: %w", err)
		}
		stats.RecentActivity = append(stats.RecentActivity, entry)
	}
	if err := recentRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent activity: %w", err)
	}

	err = r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM analytics_events
		WHERE event_type = $1 AND created_at >= $2
	`, model.EventDownload, since).Scan(&stats.Downloads)
	if err != nil {
		return nil, fmt.Errorf("count downloads: %w", err)
	}

	return stats, nil
}

func (r *postgresRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM analytics_events WHERE created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("delete old analytics events: %w", err)
	}
	return tag.RowsAffected(), nil
}
