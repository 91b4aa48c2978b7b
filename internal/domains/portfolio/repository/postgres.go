package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/portfolio/model"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

// singletonID is the fixed key of the one portfolio row.
const singletonID = 1

const cacheKey = "portfolio:singleton"

const cacheTTL = 5 * time.Minute

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository stores the portfolio as a JSONB document in a
// single-row table. The cache is optional; pass nil to disable it.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) Get(ctx context.Context) (*model.PortfolioData, error) {
	// Cache-aside: serve from Redis when possible.
	if r.cache != nil {
		var cached model.PortfolioData
		found, err := r.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			logger.Error("portfolio cache read failed", err)
		}
		if found {
			return &cached, nil
		}
	}

	var doc []byte
	err := r.pool.QueryRow(ctx,
		`SELECT document FROM portfolio_data WHERE id = $1`, singletonID,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get portfolio: %w", err)
	}

	var data model.PortfolioData
	if err := json.Unmarshal(doc, &data); err != nil {
		return nil, fmt.Errorf("decode portfolio document: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKey, &data, cacheTTL); err != nil {
			logger.Error("portfolio cache write failed", err)
		}
	}

	return &data, nil
}

func (r *postgresRepository) Upsert(ctx context.Context, data *model.PortfolioData) error {
	doc, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode portfolio document: %w", err)
	}

	// Single atomic statement keyed on the fixed singleton id: concurrent
	// first-time writers cannot produce two documents.
	_, err = r.pool.Exec(ctx, `
		INSERT INTO portfolio_data (id, document, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE
		SET document = EXCLUDED.document, updated_at = now()
	`, singletonID, doc)
	if err != nil {
		return fmt.Errorf("upsert portfolio: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, cacheKey); err != nil {
			logger.Error("portfolio cache invalidation failed", err)
		}
	}

	return nil
}
