package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// EventType is the kind of user-facing interaction being recorded.
type EventType string

const (
	EventPageView    EventType = "page_view"
	EventSectionView EventType = "section_view"
	EventDownload    EventType = "download"
	EventContact     EventType = "contact"
	EventProjectView EventType = "project_view"
)

var eventTypes = []interface{}{
	string(EventPageView),
	string(EventSectionView),
	string(EventDownload),
	string(EventContact),
	string(EventProjectView),
}

// AnalyticsEvent is an append-only record of one interaction.
// Created as a side effect of other operations, read only in aggregate.
type AnalyticsEvent struct {
	ID        uuid.UUID `json:"id"`
	EventType EventType `json:"event_type"`
	Section   *string   `json:"section,omitempty"`
	IPAddress *string   `json:"ip_address,omitempty"`
	UserAgent *string   `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}

// TrackRequest is the public tracking payload.
type TrackRequest struct {
	EventType string `json:"event_type"`
	Section   string `json:"section,omitempty"`
}

func (r TrackRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EventType,
			validation.Required.Error("event_type is required"),
			validation.In(eventTypes...).Error("unknown event type"),
		),
		validation.Field(&r.Section, validation.Length(0, 100)),
	)
}

// ActivityEntry is one row in the recent-activity feed; only type,
// section and timestamp are exposed.
type ActivityEntry struct {
	EventType EventType `json:"event_type"`
	Section   *string   `json:"section"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats is the windowed aggregate report.
type Stats struct {
	TotalViews         int64            `json:"total_views"`
	SectionViews       map[string]int64 `json:"section_views"`
	RecentActivity     []ActivityEntry  `json:"recent_activity"`
	ContactSubmissions int64            `json:"contact_submissions"`
	Downloads          int64            `json:"downloads"`
}
