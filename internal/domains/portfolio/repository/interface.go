package repository

import (
	"context"

	"portfolio-backend/internal/domains/portfolio/model"
)

// Repository is the data access contract for the portfolio singleton.
type Repository interface {
	// Get returns the persisted document or model.ErrNotFound.
	Get(ctx context.Context) (*model.PortfolioData, error)

	// Upsert atomically replaces the document, inserting it when none
	// exists. Never creates a second document.
	Upsert(ctx context.Context, data *model.PortfolioData) error
}
