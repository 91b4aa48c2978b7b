package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/admin/model"
	"portfolio-backend/internal/domains/admin/repository"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"
)

const bcryptCost = 12

type adminService struct {
	repo       repository.Repository
	jwtManager *jwt.Manager
}

func NewAdminService(repo repository.Repository, jwtManager *jwt.Manager) Service {
	return &adminService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *adminService) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// Same failure as a wrong password so callers cannot
			// probe for valid usernames.
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(user.Username)
	if err != nil {
		return nil, err
	}

	// Best effort; a failed timestamp update must not fail the login.
	go func(username string) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.TouchLastLogin(ctx, username, time.Now().UTC()); err != nil {
			logger.Error("failed to record admin last login", err)
		}
	}(user.Username)

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.jwtManager.AccessTTL().Seconds()),
	}, nil
}

func (s *adminService) EnsureAdmin(ctx context.Context, username, initialPassword string) error {
	if username == "" || initialPassword == "" {
		logger.Warn("admin provisioning skipped, no initial credentials configured", nil)
		return nil
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(initialPassword), bcryptCost)
	if err != nil {
		return err
	}

	user := &model.AdminUser{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	logger.Info("admin account provisioned", map[string]interface{}{
		"username": username,
	})
	return nil
}
