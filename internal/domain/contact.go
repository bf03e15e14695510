package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContactMessage is what the contact form hands to a ContactSink.
type ContactMessage struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name" validate:"required"`
	Email      string    `json:"email" validate:"required,email"`
	Subject    string    `json:"subject" validate:"required"`
	Message    string    `json:"message" validate:"required"`
	ReceivedAt time.Time `json:"received_at"`
}

// NewContactMessage stamps a submission with an id and receive time.
func NewContactMessage(name, email, subject, message string) ContactMessage {
	return ContactMessage{
		ID:         uuid.New(),
		Name:       name,
		Email:      email,
		Subject:    subject,
		Message:    message,
		ReceivedAt: time.Now().UTC(),
	}
}

// Validate runs validation checks on the message using the defined tags.
func (m *ContactMessage) Validate() error {
	return validatorInstance.Struct(m)
}

// ContactSink accepts contact form submissions. The default sink only logs and
// notifies; nothing is persisted.
type ContactSink interface {
	Submit(ctx context.Context, msg ContactMessage) error
}
