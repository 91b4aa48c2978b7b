package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/admin/model"
	"portfolio-backend/internal/domains/admin/service"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// AdminHandler handles HTTP requests for admin authentication.
type AdminHandler struct {
	service service.Service
}

func NewAdminHandler(service service.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// Login handles POST /admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid username or password")
			return
		}
		logger.Error("admin login failed", err)
		response.InternalServerError(c, "login failed")
		return
	}

	response.Success(c, http.StatusOK, token)
}

// Verify handles GET /admin/verify: confirms the bearer token is valid
// and echoes the authenticated username.
func (h *AdminHandler) Verify(c *gin.Context) {
	username := c.GetString(middleware.ContextAdminKey)
	response.Success(c, http.StatusOK, gin.H{
		"valid":    true,
		"username": username,
	})
}
