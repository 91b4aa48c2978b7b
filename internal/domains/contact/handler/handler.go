package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	analyticsmodel "portfolio-backend/internal/domains/analytics/model"
	analyticsservice "portfolio-backend/internal/domains/analytics/service"
	"portfolio-backend/internal/domains/contact/model"
	"portfolio-backend/internal/domains/contact/service"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// ContactHandler handles HTTP requests for contact messages.
type ContactHandler struct {
	service   service.Service
	analytics analyticsservice.Service
}

func NewContactHandler(service service.Service, analytics analyticsservice.Service) *ContactHandler {
	return &ContactHandler{service: service, analytics: analytics}
}

// Submit handles POST /contact: validates and stores a new message.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	ip := middleware.ClientIP(c)
	msg, err := h.service.Submit(c.Request.Context(), &req, &ip)
	if err != nil {
		logger.Error("failed to store contact message", err)
		response.InternalServerError(c, "failed to submit message")
		return
	}

	h.analytics.Track(c.Request.Context(), &analyticsmodel.AnalyticsEvent{
		EventType: analyticsmodel.EventContact,
		IPAddress: &ip,
	})

	response.Success(c, http.StatusOK, gin.H{
		"message": "Message sent successfully",
		"id":      msg.ID,
	})
}

// List handles GET /contact (admin only) with skip/limit pagination.
func (h *ContactHandler) List(c *gin.Context) {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		response.BadRequest(c, "skip must be a non-negative integer")
		return
	}
	limit, err := queryInt(c, "limit", 50)
	if err != nil {
		response.BadRequest(c, "limit must be a non-negative integer")
		return
	}

	messages, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		logger.Error("failed to list contact messages", err)
		response.InternalServerError(c, "failed to list messages")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, messages, &response.Meta{
		Skip:  skip,
		Limit: limit,
	})
}

// UpdateStatus handles PUT /contact/:id (admin only).
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, model.MessageStatus(req.Status)); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			response.NotFound(c, "message not found")
			return
		}
		logger.Error("failed to update contact message status", err)
		response.InternalServerError(c, "failed to update message")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Message status updated"})
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return 0, errors.New("invalid query value")
	}
	return parsed, nil
}
