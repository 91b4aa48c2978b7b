package main

import (
	"github.com/hibiken/asynq"

	analyticsJob "portfolio-backend/internal/domains/analytics/job"
	"portfolio-backend/internal/shared"
	"portfolio-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	trackEvent       *analyticsJob.TrackEventHandler
	cleanupOldEvents *analyticsJob.CleanupOldEventsHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		trackEvent:       analyticsJob.NewTrackEventHandler(c.AnalyticsRepo),
		cleanupOldEvents: analyticsJob.NewCleanupOldEventsHandler(c.AnalyticsRepo),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeTrackEvent, h.trackEvent.ProcessTask)
	mux.HandleFunc(shared.TypeCleanupOldEvents, h.cleanupOldEvents.ProcessTask)
}
