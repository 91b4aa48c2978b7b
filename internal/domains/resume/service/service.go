package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	portfolioservice "portfolio-backend/internal/domains/portfolio/service"
	"portfolio-backend/internal/infrastructure/pdf"
	"portfolio-backend/internal/infrastructure/storage"
)

type resumeService struct {
	portfolio portfolioservice.Service
	renderer  pdf.Renderer
	storage   storage.FileStorage
}

func NewResumeService(portfolio portfolioservice.Service, renderer pdf.Renderer, fileStorage storage.FileStorage) Service {
	return &resumeService{
		portfolio: portfolio,
		renderer:  renderer,
		storage:   fileStorage,
	}
}

func (s *resumeService) Generate(ctx context.Context) (int64, error) {
	data, err := s.portfolio.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("load portfolio document: %w", err)
	}

	html, err := buildResumeHTML(data)
	if err != nil {
		return 0, fmt.Errorf("render resume html: %w", err)
	}

	pdfBytes, err := s.renderer.RenderHTML(ctx, html)
	if err != nil {
		return 0, fmt.Errorf("print resume pdf: %w", err)
	}

	if err := s.storage.Save(ctx, bytes.NewReader(pdfBytes)); err != nil {
		return 0, fmt.Errorf("store resume pdf: %w", err)
	}
	return int64(len(pdfBytes)), nil
}

func (s *resumeService) Upload(ctx context.Context, r io.Reader) error {
	return s.storage.Save(ctx, r)
}

func (s *resumeService) Open(ctx context.Context) (io.ReadCloser, int64, error) {
	return s.storage.Open(ctx)
}

func (s *resumeService) Filename(ctx context.Context) string {
	name := "Resume"
	if data, err := s.portfolio.Get(ctx); err == nil && data.Personal.Name != "" {
		name = data.Personal.Name
	}
	return strings.ReplaceAll(name, " ", "_") + "_Resume.pdf"
}
