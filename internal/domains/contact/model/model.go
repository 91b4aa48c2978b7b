package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// MessageStatus tracks triage of a contact message. No transition order
// is enforced.
type MessageStatus string

const (
	StatusUnread  MessageStatus = "unread"
	StatusRead    MessageStatus = "read"
	StatusReplied MessageStatus = "replied"
)

// ContactMessage is one submitted contact-form entry.
// Messages are never deleted; only status is mutable.
type ContactMessage struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    MessageStatus `json:"status"`
	IPAddress *string       `json:"ip_address,omitempty"`
	CreatedAt time.Time     `json:"timestamp"`
}

// CreateRequest is the public submission payload.
type CreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100).Error("name must be 2-100 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Subject,
			validation.Required.Error("subject is required"),
			validation.Length(5, 200).Error("subject must be 5-200 characters"),
		),
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
			validation.Length(10, 2000).Error("message must be 10-2000 characters"),
		),
	)
}

// UpdateStatusRequest changes a message's triage status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(
				string(StatusUnread),
				string(StatusRead),
				string(StatusReplied),
			).Error("status must be unread, read or replied"),
		),
	)
}
