package shared

// Asynq task types and queues.
const (
	TypeTrackEvent       = "analytics:track_event"
	TypeCleanupOldEvents = "analytics:cleanup_old_events"

	QueueAnalytics = "analytics"
)
