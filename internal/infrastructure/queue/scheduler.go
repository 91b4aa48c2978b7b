package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"portfolio-backend/internal/domains/analytics/job"
	"portfolio-backend/internal/shared"
	"portfolio-backend/pkg/logger"
)

// Scheduler registers recurring jobs.
type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddr, redisPassword string, redisDB int) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

// RegisterJobs wires all recurring jobs.
func (s *Scheduler) RegisterJobs() error {
	return s.registerCleanupOldEventsJob()
}

// Prune old analytics events daily at 3 AM UTC.
func (s *Scheduler) registerCleanupOldEventsJob() error {
	payload, err := json.Marshal(job.CleanupOldEventsPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeCleanupOldEvents, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *",
		task,
		asynq.Queue(shared.QueueAnalytics),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("failed to register CleanupOldEvents job", err)
		return err
	}

	logger.Info("registered CleanupOldEvents: daily at 3 AM UTC", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
