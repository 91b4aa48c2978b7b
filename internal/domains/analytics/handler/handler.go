package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/analytics/model"
	"portfolio-backend/internal/domains/analytics/service"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

// AnalyticsHandler handles HTTP requests for tracking and reporting.
type AnalyticsHandler struct {
	service service.Service
}

func NewAnalyticsHandler(service service.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Track handles POST /analytics/track: records one arbitrary-kind event
// with caller IP and user agent.
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var req model.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	event := &model.AnalyticsEvent{
		EventType: model.EventType(req.EventType),
		IPAddress: strPtr(middleware.ClientIP(c)),
		UserAgent: strPtr(utils.UserAgent(c)),
	}
	if req.Section != "" {
		event.Section = &req.Section
	}

	h.service.Track(c.Request.Context(), event)

	response.Success(c, http.StatusOK, gin.H{"message": "Event tracked successfully"})
}

// Stats handles GET /analytics/stats?days=30 (admin only).
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	days := 30
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(c, "days must be a positive integer")
			return
		}
		days = parsed
	}

	stats, err := h.service.Stats(c.Request.Context(), days)
	if err != nil {
		logger.Error("failed to compute analytics stats", err)
		response.InternalServerError(c, "failed to compute stats")
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
