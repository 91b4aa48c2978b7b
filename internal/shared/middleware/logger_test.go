package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestLoggerUsesCapturedClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLog(t)

	r := gin.New()
	r.Use(Logger(), ClientIPMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req, _ := http.NewRequest(http.MethodGet, "/ping?tab=projects", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "203.0.113.9", entry["ip"])
	assert.Equal(t, "tab=projects", entry["query"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, float64(len("pong")), entry["bytes"])
	assert.Equal(t, "info", entry["level"])
}

func TestLoggerEscalatesServerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLog(t)

	r := gin.New()
	r.Use(Logger())
	r.GET("/boom", func(c *gin.Context) { c.String(http.StatusInternalServerError, "boom") })

	req, _ := http.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
}

func TestClientIPPrefersMiddlewareValue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	r.Use(ClientIPMiddleware())
	r.GET("/", func(c *gin.Context) {
		got = ClientIP(c)
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.7")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "198.51.100.7", got)
}

func TestClientIPWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		got = ClientIP(c)
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "192.0.2.44")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "192.0.2.44", got)
}
