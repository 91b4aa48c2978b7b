package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/internal/domains/portfolio/model"
	"portfolio-backend/internal/domains/portfolio/repository"
)

type portfolioService struct {
	repo repository.Repository
}

func NewPortfolioService(repo repository.Repository) Service {
	return &portfolioService{repo: repo}
}

func (s *portfolioService) Get(ctx context.Context) (*model.PortfolioData, error) {
	data, err := s.repo.Get(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return model.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get portfolio: %w", err)
	}
	return data, nil
}

func (s *portfolioService) Replace(ctx context.Context, data *model.PortfolioData) error {
	if err := data.Validate(); err != nil {
		return err
	}

	if err := s.repo.Upsert(ctx, data); err != nil {
		return fmt.Errorf("replace portfolio: %w", err)
	}
	return nil
}
