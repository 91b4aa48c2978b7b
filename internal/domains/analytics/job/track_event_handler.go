package job

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/analytics/model"
	"portfolio-backend/internal/domains/analytics/repository"
)

// TrackEventHandler persists analytics events delivered through the queue.
type TrackEventHandler struct {
	repo repository.Repository
}

func NewTrackEventHandler(repo repository.Repository) *TrackEventHandler {
	return &TrackEventHandler{repo: repo}
}

func (h *TrackEventHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var event model.AnalyticsEvent
	if err := json.Unmarshal(task.Payload(), &event); err != nil {
		log.Error().Err(err).Msg("track event payload unmarshal failed")
		return err
	}

	if err := h.repo.Create(ctx, &event); err != nil {
		log.Error().Err(err).Str("event_type", string(event.EventType)).Msg("track event insert failed")
		return err
	}

	return nil
}
