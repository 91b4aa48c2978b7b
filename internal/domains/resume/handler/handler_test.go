package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analyticsmodel "portfolio-backend/internal/domains/analytics/model"
	portfoliomodel "portfolio-backend/internal/domains/portfolio/model"
	portfolioservice "portfolio-backend/internal/domains/portfolio/service"
	"portfolio-backend/internal/domains/resume/service"
	"portfolio-backend/internal/infrastructure/storage"
)

type memPortfolioRepo struct {
	data *portfoliomodel.PortfolioData
}

func (m *memPortfolioRepo) Get(ctx context.Context) (*portfoliomodel.PortfolioData, error) {
	if m.data == nil {
		return nil, portfoliomodel.ErrNotFound
	}
	return m.data, nil
}

func (m *memPortfolioRepo) Upsert(ctx context.Context, data *portfoliomodel.PortfolioData) error {
	m.data = data
	return nil
}

type fakeRenderer struct{}

func (fakeRenderer) RenderHTML(ctx context.Context, html string) ([]byte, error) {
	return []byte("%PDF-1.4 rendered"), nil
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

func setupRouter(t *testing.T) (*gin.Engine, *fakeAnalytics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	portfolioSvc := portfolioservice.NewPortfolioService(&memPortfolioRepo{})
	svc := service.NewResumeService(portfolioSvc, fakeRenderer{}, store)
	analytics := &fakeAnalytics{}
	h := NewResumeHandler(svc, analytics)

	r := gin.New()
	r.GET("/resume/download", h.Download)
	r.POST("/resume/upload", h.Upload)
	r.POST("/resume/generate", h.Generate)
	return r, analytics
}

func uploadPDF(t *testing.T, r *gin.Engine, contentType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="resume.pdf"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, _ := http.NewRequest(http.MethodPost, "/resume/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDownloadWithoutResume(t *testing.T) {
	r, analytics := setupRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/resume/download", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, analytics.events, "missing resume must not count as a download")
}

func TestGenerateThenDownload(t *testing.T) {
	r, analytics := setupRouter(t)

	req, _ := http.NewRequest(http.MethodPost, "/resume/generate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest(http.MethodGet, "/resume/download", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Satish_Kumar_Resume.pdf")
	assert.Equal(t, "%PDF-1.4 rendered", w.Body.String())

	require.Len(t, analytics.events, 1)
	event := analytics.events[0]
	assert.Equal(t, analyticsmodel.EventDownload, event.EventType)
	require.NotNil(t, event.Section)
	assert.Equal(t, "resume", *event.Section)
}

func TestUploadThenDownload(t *testing.T) {
	r, _ := setupRouter(t)

	w := uploadPDF(t, r, "application/pdf", []byte("%PDF-1.4 uploaded"))
	require.Equal(t, http.StatusOK, w.Code)

	req, _ := http.NewRequest(http.MethodGet, "/resume/download", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4 uploaded", w.Body.String())
}

func TestUploadRejectsNonPDF(t *testing.T) {
	r, _ := setupRouter(t)

	w := uploadPDF(t, r, "text/plain", []byte("not a pdf"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing stored.
	req, _ := http.NewRequest(http.MethodGet, "/resume/download", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadWithoutFile(t *testing.T) {
	r, _ := setupRouter(t)

	req, _ := http.NewRequest(http.MethodPost, "/resume/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
