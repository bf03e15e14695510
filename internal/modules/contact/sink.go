package contact

import (
	"context"
	"fmt"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/pubsub"
)

// Sink is the ContactSink behind the form. It accepts a message by putting it
// on the bus; delivery happens off the request path.
type Sink struct {
	publisher pubsub.Publisher
}

// NewSink creates a sink publishing to p.
func NewSink(p pubsub.Publisher) *Sink {
	return &Sink{publisher: p}
}

// Submit implements domain.ContactSink.
func (s *Sink) Submit(ctx context.Context, msg domain.ContactMessage) error {
	metadata := map[string]string{"message_id": msg.ID.String()}
	if err := pubsub.Publish(ctx, s.publisher, Submitted, msg, metadata); err != nil {
		return fmt.Errorf("publish contact message: %w", err)
	}

	middleware.FromContext(ctx).Info("Contact message accepted",
		"message_id", msg.ID, "subject", msg.Subject)
	return nil
}
