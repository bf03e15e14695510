package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/handlers"
	"github.com/nfrund/folio/internal/metrics"
	"github.com/nfrund/folio/internal/pubsub"
	"github.com/nfrund/folio/internal/rendering"
)

// Notifier forwards accepted contact messages to the site owner's inbox.
type Notifier struct {
	subscriber pubsub.Subscriber
	sender     domain.EmailSender
	renderer   rendering.Renderer
	site       handlers.SiteSource
	inbox      string
	metrics    *metrics.Manager
}

// NotifierConfig holds the notifier's collaborators.
type NotifierConfig struct {
	Subscriber pubsub.Subscriber
	Sender     domain.EmailSender
	Renderer   rendering.Renderer
	Site       handlers.SiteSource
	// Inbox overrides the profile email as the delivery address.
	Inbox   string
	Metrics *metrics.Manager
}

// NewNotifier creates a Notifier.
func NewNotifier(cfg NotifierConfig) *Notifier {
	return &Notifier{
		subscriber: cfg.Subscriber,
		sender:     cfg.Sender,
		renderer:   cfg.Renderer,
		site:       cfg.Site,
		inbox:      cfg.Inbox,
		metrics:    cfg.Metrics,
	}
}

// Start subscribes to submitted messages. Delivery runs until ctx is canceled.
func (n *Notifier) Start(ctx context.Context) error {
	slog.Info("Starting contact notifier")
	return pubsub.Subscribe(ctx, n.subscriber, Submitted, n.deliver)
}

func (n *Notifier) recipient() string {
	if n.inbox != "" {
		return n.inbox
	}
	return n.site.Current().Profile.Email
}

func (n *Notifier) deliver(ctx context.Context, msg domain.ContactMessage, _ pubsub.Message) error {
	to := n.recipient()
	if to == "" {
		slog.Warn("Contact message dropped: no inbox configured", "message_id", msg.ID)
		n.metrics.ContactDelivered(metrics.OutcomeFailed)
		return nil
	}

	body, err := n.renderer.RenderComponent(ctx, notificationEmail(msg))
	if err != nil {
		n.metrics.ContactDelivered(metrics.OutcomeFailed)
		return fmt.Errorf("render contact email: %w", err)
	}

	subject := "[Portfolio] " + msg.Subject
	if err := n.sender.Send(ctx, to, subject, string(body)); err != nil {
		n.metrics.ContactDelivered(metrics.OutcomeFailed)
		return fmt.Errorf("send contact email %s: %w", msg.ID, err)
	}

	n.metrics.ContactDelivered(metrics.OutcomeSent)
	slog.Info("Contact message delivered", "message_id", msg.ID)
	return nil
}
