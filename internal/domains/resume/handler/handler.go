package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	analyticsmodel "portfolio-backend/internal/domains/analytics/model"
	analyticsservice "portfolio-backend/internal/domains/analytics/service"
	"portfolio-backend/internal/domains/resume/service"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

// ResumeHandler handles HTTP requests for the resume PDF.
type ResumeHandler struct {
	service   service.Service
	analytics analyticsservice.Service
}

func NewResumeHandler(service service.Service, analytics analyticsservice.Service) *ResumeHandler {
	return &ResumeHandler{service: service, analytics: analytics}
}

// Download handles GET /resume/download: streams the stored PDF and
// records a download event.
func (h *ResumeHandler) Download(c *gin.Context) {
	reader, size, err := h.service.Open(c.Request.Context())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.NotFound(c, "resume not found")
			return
		}
		logger.Error("failed to open resume", err)
		response.InternalServerError(c, "failed to open resume")
		return
	}
	defer reader.Close()

	section := "resume"
	h.analytics.Track(c.Request.Context(), &analyticsmodel.AnalyticsEvent{
		EventType: analyticsmodel.EventDownload,
		Section:   &section,
		IPAddress: strPtr(middleware.ClientIP(c)),
		UserAgent: strPtr(utils.UserAgent(c)),
	})

	filename := h.service.Filename(c.Request.Context())
	c.DataFromReader(http.StatusOK, size, "application/pdf", reader, map[string]string{
		"Content-Disposition": `attachment; filename="` + filename + `"`,
	})
}

// Upload handles POST /resume/upload (admin only). Only PDF uploads
// are accepted.
func (h *ResumeHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fileHeader.Header.Get("Content-Type") != "application/pdf" {
		response.BadRequest(c, "only PDF files are allowed")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("failed to read uploaded resume", err)
		response.InternalServerError(c, "failed to read upload")
		return
	}
	defer file.Close()

	if err := h.service.Upload(c.Request.Context(), file); err != nil {
		logger.Error("failed to store uploaded resume", err)
		response.InternalServerError(c, "failed to store resume")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":  "Resume uploaded successfully",
		"filename": fileHeader.Filename,
	})
}

// Generate handles POST /resume/generate (admin only): renders the
// live portfolio document to PDF and stores it.
func (h *ResumeHandler) Generate(c *gin.Context) {
	size, err := h.service.Generate(c.Request.Context())
	if err != nil {
		logger.Error("failed to generate resume", err)
		response.InternalServerError(c, "failed to generate resume")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Resume generated successfully",
		"bytes":   size,
	})
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
