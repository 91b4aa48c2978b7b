package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analyticsmodel "portfolio-backend/internal/domains/analytics/model"
	"portfolio-backend/internal/domains/portfolio/model"
	"portfolio-backend/internal/domains/portfolio/service"
)

type memRepo struct {
	mu   sync.Mutex
	data *model.PortfolioData
}

func (m *memRepo) Get(ctx context.Context) (*model.PortfolioData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, model.ErrNotFound
	}
	stored := *m.data
	return &stored, nil
}

func (m *memRepo) Upsert(ctx context.Context, data *model.PortfolioData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *data
	m.data = &stored
	return nil
}

type fakeAnalytics struct {
	mu     sync.Mutex
	events []*analyticsmodel.AnalyticsEvent
}

func (f *fakeAnalytics) Track(ctx context.Context, event *analyticsmodel.AnalyticsEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakeAnalytics) Stats(ctx context.Context, days int) (*analyticsmodel.Stats, error) {
	return &analyticsmodel.Stats{}, nil
}

func setupRouter() (*gin.Engine, *memRepo, *fakeAnalytics) {
	gin.SetMode(gin.TestMode)
	repo := &memRepo{}
	analytics := &fakeAnalytics{}
	h := NewPortfolioHandler(service.NewPortfolioService(repo), analytics)

	r := gin.New()
	r.GET("/portfolio", h.Get)
	r.PUT("/portfolio", h.Update)
	return r, repo, analytics
}

func decodeData(t *testing.T, body []byte) *model.PortfolioData {
	t.Helper()
	var envelope struct {
		Success bool                `json:"success"`
		Data    model.PortfolioData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.True(t, envelope.Success)
	return &envelope.Data
}

func TestGetFallsBackToDefault(t *testing.T) {
	r, _, analytics := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/portfolio", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w.Body.Bytes())
	assert.Equal(t, model.Default().Personal.Name, data.Personal.Name)
	assert.NotEmpty(t, data.Skills)

	require.Len(t, analytics.events, 1)
	assert.Equal(t, analyticsmodel.EventPageView, analytics.events[0].EventType)
}

func TestGetFallbackIsIdempotent(t *testing.T) {
	r, repo, _ := setupRouter()

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/portfolio", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	// Serving the default never persists it.
	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUpdateRoundTrip(t *testing.T) {
	r, _, _ := setupRouter()

	updated := model.Default()
	updated.Personal.Name = "Jane Smith"
	updated.Personal.Title = "Engineering Manager"

	body, _ := json.Marshal(updated)
	req, _ := http.NewRequest(http.MethodPut, "/portfolio", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest(http.MethodGet, "/portfolio", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w.Body.Bytes())
	assert.Equal(t, "Jane Smith", data.Personal.Name)
	assert.Equal(t, "Engineering Manager", data.Personal.Title)
}

func TestUpdateRejectsInvalidDocument(t *testing.T) {
	r, repo, _ := setupRouter()

	invalid := model.Default()
	invalid.Personal.Email = "not-an-email"

	body, _ := json.Marshal(invalid)
	req, _ := http.NewRequest(http.MethodPut, "/portfolio", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestConcurrentFirstUpdatesKeepSingleDocument(t *testing.T) {
	repo := &memRepo{}
	svc := service.NewPortfolioService(repo)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data := model.Default()
			data.Personal.Tagline = string(rune('a' + i))
			_ = svc.Replace(context.Background(), data)
		}(i)
	}
	wg.Wait()

	// Whatever write won, exactly one well-formed document exists.
	data, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.NoError(t, data.Validate())
}

func TestUpdateRejectsMissingSections(t *testing.T) {
	r, _, _ := setupRouter()

	invalid := model.Default()
	invalid.Skills = nil

	body, _ := json.Marshal(invalid)
	req, _ := http.NewRequest(http.MethodPut, "/portfolio", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
