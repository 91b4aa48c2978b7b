package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/admin/model"
	"portfolio-backend/internal/domains/admin/service"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/jwt"
)

type memRepo struct {
	mu    sync.Mutex
	users map[string]*model.AdminUser
}

func newMemRepo() *memRepo {
	return &memRepo{users: make(map[string]*model.AdminUser)}
}

func (m *memRepo) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[username]
	if !ok {
		return nil, model.ErrNotFound
	}
	stored := *user
	return &stored, nil
}

func (m *memRepo) Create(ctx context.Context, user *model.AdminUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *user
	m.users[user.Username] = &stored
	return nil
}

func (m *memRepo) TouchLastLogin(ctx context.Context, username string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[username]; ok {
		user.LastLogin = &at
	}
	return nil
}

func setupRouter(t *testing.T) (*gin.Engine, *memRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newMemRepo()
	manager := jwt.NewManager("test-secret", time.Hour)
	svc := service.NewAdminService(repo, manager)
	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "s3cret-pass"))

	h := NewAdminHandler(svc)
	r := gin.New()
	r.POST("/admin/login", h.Login)
	r.GET("/admin/verify", middleware.AdminAuth(manager), h.Verify)
	return r, repo
}

func login(r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req, _ := http.NewRequest(http.MethodPost, "/admin/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	r, _ := setupRouter(t)

	w := login(r, "admin", "s3cret-pass")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool                `json:"success"`
		Data    model.TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.Data.AccessToken)
	assert.Equal(t, "bearer", envelope.Data.TokenType)
	assert.Equal(t, 3600, envelope.Data.ExpiresIn)
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := setupRouter(t)

	w := login(r, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	r, _ := setupRouter(t)

	w := login(r, "nobody", "s3cret-pass")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyWithValidToken(t *testing.T) {
	r, _ := setupRouter(t)

	w := login(r, "admin", "s3cret-pass")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data model.TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	req, _ := http.NewRequest(http.MethodGet, "/admin/verify", nil)
	req.Header.Set("Authorization", "Bearer "+envelope.Data.AccessToken)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var verify struct {
		Data struct {
			Valid    bool   `json:"valid"`
			Username string `json:"username"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verify))
	assert.True(t, verify.Data.Valid)
	assert.Equal(t, "admin", verify.Data.Username)
}

func TestVerifyRejectsMissingAndBadTokens(t *testing.T) {
	r, _ := setupRouter(t)

	cases := map[string]string{
		"missing":       "",
		"not bearer":    "Basic abc123",
		"garbage token": "Bearer not-a-token",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/admin/verify", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	repo := newMemRepo()
	manager := jwt.NewManager("test-secret", time.Hour)
	svc := service.NewAdminService(repo, manager)

	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "first-pass"))
	first, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)

	// A second run must not overwrite the existing account.
	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "second-pass"))
	second, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, first.PasswordHash, second.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(second.PasswordHash), []byte("first-pass")))
}

func TestEnsureAdminSkipsWithoutPassword(t *testing.T) {
	repo := newMemRepo()
	manager := jwt.NewManager("test-secret", time.Hour)
	svc := service.NewAdminService(repo, manager)

	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin", ""))
	_, err := repo.GetByUsername(context.Background(), "admin")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
