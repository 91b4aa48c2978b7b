package service

import (
	"context"

	"portfolio-backend/internal/domains/portfolio/model"
)

// Service is the portfolio business logic contract.
type Service interface {
	// Get returns the persisted document, falling back to the built-in
	// default when none exists.
	Get(ctx context.Context) (*model.PortfolioData, error)

	// Replace validates and stores the document wholesale.
	Replace(ctx context.Context, data *model.PortfolioData) error
}
