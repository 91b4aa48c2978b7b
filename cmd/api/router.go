package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		middleware.ClientIPMiddleware(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/", rootHandler(c))

		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupPortfolioRoutes(v1, c)
		setupContactRoutes(v1, c)
		setupAnalyticsRoutes(v1, c)
		setupResumeRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// PORTFOLIO ROUTES
// ========================================
func setupPortfolioRoutes(v1 *gin.RouterGroup, c *container.Container) {
	portfolio := v1.Group("/portfolio")
	{
		portfolio.GET("", c.PortfolioHandler.Get)
		portfolio.PUT("", middleware.AdminAuth(c.JWTManager), c.PortfolioHandler.Update)
	}
}

// ========================================
// CONTACT ROUTES
// ========================================
func setupContactRoutes(v1 *gin.RouterGroup, c *container.Container) {
	contact := v1.Group("/contact")
	{
		contact.POST("", c.ContactHandler.Submit)
		contact.GET("", middleware.AdminAuth(c.JWTManager), c.ContactHandler.List)
		contact.PUT("/:id", middleware.AdminAuth(c.JWTManager), c.ContactHandler.UpdateStatus)
	}
}

// ========================================
// ANALYTICS ROUTES
// ========================================
func setupAnalyticsRoutes(v1 *gin.RouterGroup, c *container.Container) {
	analytics := v1.Group("/analytics")
	{
		analytics.POST("/track", c.AnalyticsHandler.Track)
		analytics.GET("/stats", middleware.AdminAuth(c.JWTManager), c.AnalyticsHandler.Stats)
	}
}

// ========================================
// RESUME ROUTES
// ========================================
func setupResumeRoutes(v1 *gin.RouterGroup, c *container.Container) {
	resume := v1.Group("/resume")
	{
		resume.GET("/download", c.ResumeHandler.Download)
		resume.POST("/upload", middleware.AdminAuth(c.JWTManager), c.ResumeHandler.Upload)
		resume.POST("/generate", middleware.AdminAuth(c.JWTManager), c.ResumeHandler.Generate)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	{
		admin.POST("/login", c.AdminHandler.Login)
		admin.GET("/verify", middleware.AdminAuth(c.JWTManager), c.AdminHandler.Verify)
	}
}

// ========================================
// ROOT AND HEALTH CHECK HANDLERS
// ========================================
func rootHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": appCtx.Config.App.Name + " v1.0.0",
			"status":  "active",
		})
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"services":  gin.H{},
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Redis is best effort, a dead cache does not degrade health.
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
