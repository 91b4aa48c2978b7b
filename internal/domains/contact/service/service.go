package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact/model"
	"portfolio-backend/internal/domains/contact/repository"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type contactService struct {
	repo repository.Repository
}

func NewContactService(repo repository.Repository) Service {
	return &contactService{repo: repo}
}

func (s *contactService) Submit(ctx context.Context, req *model.CreateRequest, ipAddress *string) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    model.StatusUnread,
		IPAddress: ipAddress,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *contactService) List(ctx context.Context, skip, limit int) ([]model.ContactMessage, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.List(ctx, skip, limit)
}

func (s *contactService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.MessageStatus) error {
	matched, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !matched {
		return model.ErrNotFound
	}
	return nil
}

func (s *contactService) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return s.repo.CountSince(ctx, since)
}
