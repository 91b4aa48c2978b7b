package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	analyticsmodel "portfolio-backend/internal/domains/analytics/model"
	analyticsservice "portfolio-backend/internal/domains/analytics/service"
	"portfolio-backend/internal/domains/portfolio/model"
	"portfolio-backend/internal/domains/portfolio/service"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

// PortfolioHandler handles HTTP requests for the portfolio document.
type PortfolioHandler struct {
	service   service.Service
	analytics analyticsservice.Service
}

func NewPortfolioHandler(service service.Service, analytics analyticsservice.Service) *PortfolioHandler {
	return &PortfolioHandler{service: service, analytics: analytics}
}

// Get handles GET /portfolio: returns the document (or the built-in
// default when none is stored) and records a page view.
func (h *PortfolioHandler) Get(c *gin.Context) {
	h.analytics.Track(c.Request.Context(), &analyticsmodel.AnalyticsEvent{
		EventType: analyticsmodel.EventPageView,
		IPAddress: strPtr(middleware.ClientIP(c)),
		UserAgent: strPtr(utils.UserAgent(c)),
	})

	data, err := h.service.Get(c.Request.Context())
	if err != nil {
		logger.Error("failed to load portfolio document", err)
		response.InternalServerError(c, "failed to load portfolio data")
		return
	}

	response.Success(c, http.StatusOK, data)
}

// Update handles PUT /portfolio (admin only): replaces the document
// wholesale after validation.
func (h *PortfolioHandler) Update(c *gin.Context) {
	var data model.PortfolioData
	if err := c.ShouldBindJSON(&data); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := data.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	if err := h.service.Replace(c.Request.Context(), &data); err != nil {
		logger.Error("failed to update portfolio document", err)
		response.InternalServerError(c, "failed to update portfolio data")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Portfolio data updated successfully"})
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
