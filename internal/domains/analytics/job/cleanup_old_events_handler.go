package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/analytics/repository"
)

// CleanupOldEventsPayload carries the retention window in days.
type CleanupOldEventsPayload struct {
	RetentionDays int `json:"retention_days,omitempty"`
}

const defaultRetentionDays = 365

// CleanupOldEventsHandler prunes analytics events past the retention window.
type CleanupOldEventsHandler struct {
	repo repository.Repository
}

func NewCleanupOldEventsHandler(repo repository.Repository) *CleanupOldEventsHandler {
	return &CleanupOldEventsHandler{repo: repo}
}

func (h *CleanupOldEventsHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload CleanupOldEventsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("cleanup payload unmarshal failed")
		return err
	}

	retention := payload.RetentionDays
	if retention <= 0 {
		retention = defaultRetentionDays
	}

	cutoff := time.Now().UTC().Add(-time.Duration(retention) * 24 * time.Hour)
	deleted, err := h.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("cleanup of old analytics events failed")
		return err
	}

	log.Info().
		Int64("events_deleted", deleted).
		Time("cutoff", cutoff).
		Msg("cleaned up old analytics events")

	return nil
}
