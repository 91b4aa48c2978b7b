package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"portfolio-backend/internal/domains/analytics/model"
	"portfolio-backend/internal/shared"
)

// Client enqueues background tasks.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

// EnqueueTrackEvent queues one analytics event for the worker to persist.
func (c *Client) EnqueueTrackEvent(ctx context.Context, event *model.AnalyticsEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal track event: %w", err)
	}

	task := asynq.NewTask(shared.TypeTrackEvent, payload)
	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueAnalytics),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue track event: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
