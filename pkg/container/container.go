package container

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/config"
	infraCache "portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/pdf"
	"portfolio-backend/internal/infrastructure/queue"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"

	adminHandler "portfolio-backend/internal/domains/admin/handler"
	adminRepo "portfolio-backend/internal/domains/admin/repository"
	adminService "portfolio-backend/internal/domains/admin/service"
	analyticsHandler "portfolio-backend/internal/domains/analytics/handler"
	analyticsRepo "portfolio-backend/internal/domains/analytics/repository"
	analyticsService "portfolio-backend/internal/domains/analytics/service"
	contactHandler "portfolio-backend/internal/domains/contact/handler"
	contactRepo "portfolio-backend/internal/domains/contact/repository"
	contactService "portfolio-backend/internal/domains/contact/service"
	portfolioHandler "portfolio-backend/internal/domains/portfolio/handler"
	portfolioRepo "portfolio-backend/internal/domains/portfolio/repository"
	portfolioService "portfolio-backend/internal/domains/portfolio/service"
	resumeHandler "portfolio-backend/internal/domains/resume/handler"
	resumeService "portfolio-backend/internal/domains/resume/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds the full dependency graph of the application.
// Everything in here is a singleton for the process lifetime.
type Container struct {
	// Infrastructure layer, shared across all domains.
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	Storage     storage.FileStorage
	QueueClient *queue.Client

	// Repository layer.
	PortfolioRepo portfolioRepo.Repository
	ContactRepo   contactRepo.Repository
	AnalyticsRepo analyticsRepo.Repository
	AdminRepo     adminRepo.Repository

	// Service layer.
	PortfolioService portfolioService.Service
	ContactService   contactService.Service
	AnalyticsService analyticsService.Service
	AdminService     adminService.Service
	ResumeService    resumeService.Service

	// Handler layer.
	PortfolioHandler *portfolioHandler.PortfolioHandler
	ContactHandler   *contactHandler.ContactHandler
	AnalyticsHandler *analyticsHandler.AnalyticsHandler
	AdminHandler     *adminHandler.AdminHandler
	ResumeHandler    *resumeHandler.ResumeHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the dependency graph in order: config,
// infrastructure, repositories, services, handlers. A failure in any
// required step aborts startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	if err := db.Bootstrap(ctx); err != nil {
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	c.DB = db
	logger.Info("database connected", nil)

	// Redis failure is non-critical; the cache interface degrades to
	// pass-through misses on a dead connection.
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		logger.Warn("redis connection failed, continuing without cache", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		logger.Info("redis connected", nil)
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTTL)

	fileStorage, err := buildStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}
	c.Storage = fileStorage

	c.QueueClient = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	// First-run provisioning of the admin account.
	if err := c.AdminService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.InitialPassword); err != nil {
		return nil, fmt.Errorf("failed to provision admin account: %w", err)
	}

	logger.Info("container initialized", nil)
	return c, nil
}

func buildStorage(cfg *config.Config) (storage.FileStorage, error) {
	switch cfg.Storage.Driver {
	case "minio":
		return storage.NewMinIOStorage(cfg.Storage)
	default:
		return storage.NewLocalStorage(cfg.Storage.Dir)
	}
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.PortfolioRepo = portfolioRepo.NewPostgresRepository(pool, c.Cache)
	c.ContactRepo = contactRepo.NewPostgresRepository(pool)
	c.AnalyticsRepo = analyticsRepo.NewPostgresRepository(pool)
	c.AdminRepo = adminRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.PortfolioService = portfolioService.NewPortfolioService(c.PortfolioRepo)
	c.ContactService = contactService.NewContactService(c.ContactRepo)

	// Contact service satisfies the stats report's contact counter,
	// analytics never imports the contact domain directly.
	c.AnalyticsService = analyticsService.NewAnalyticsService(
		c.AnalyticsRepo,
		c.ContactService,
		c.QueueClient,
		c.Cache,
	)

	c.AdminService = adminService.NewAdminService(c.AdminRepo, c.JWTManager)
	c.ResumeService = resumeService.NewResumeService(
		c.PortfolioService,
		pdf.NewChromedpRenderer(),
		c.Storage,
	)
}

func (c *Container) initHandlers() {
	c.PortfolioHandler = portfolioHandler.NewPortfolioHandler(c.PortfolioService, c.AnalyticsService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService, c.AnalyticsService)
	c.AnalyticsHandler = analyticsHandler.NewAnalyticsHandler(c.AnalyticsService)
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService)
	c.ResumeHandler = resumeHandler.NewResumeHandler(c.ResumeService, c.AnalyticsService)
}

// Cleanup releases shared resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Error("failed to close queue client", err)
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis connection", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	logger.Info("container resources released", nil)
}
