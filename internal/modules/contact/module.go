package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/handlers"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/module"
	"github.com/nfrund/folio/internal/pubsub"
	"github.com/nfrund/folio/internal/registry"
	"github.com/nfrund/folio/internal/rendering"
)

// submissionsPerMinute caps form posts per client IP.
const submissionsPerMinute = 10

// ContactModule implements the module.Module interface for the contact form.
type ContactModule struct {
	module.BaseModule
	publisher  pubsub.Publisher
	subscriber pubsub.Subscriber
	renderer   rendering.Renderer
	site       handlers.SiteSource
}

// Dependencies holds all the services that the ContactModule requires to operate.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	Site       handlers.SiteSource
}

// New creates a new instance of the ContactModule, injecting its dependencies.
func New(deps Dependencies) *ContactModule {
	return &ContactModule{
		publisher:  deps.Publisher,
		subscriber: deps.Subscriber,
		renderer:   deps.Renderer,
		site:       deps.Site,
	}
}

// Name returns the module name. It is also the route prefix.
func (m *ContactModule) Name() string {
	return "contact"
}

// Register exposes the bus-backed sink so other parts of the app can submit
// messages. A sink registered earlier is kept.
func (m *ContactModule) Register(reg *registry.Registry) error {
	if _, ok := registry.Get(reg, registry.ContactSinkKey); ok {
		slog.Info("Contact sink already registered, keeping it")
		return nil
	}
	registry.Set(reg, registry.ContactSinkKey, domain.ContactSink(NewSink(m.publisher)))
	return nil
}

// Boot starts the notifier and mounts POST /contact.
func (m *ContactModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	stats, _ := registry.Get(reg, registry.MetricsKey)

	notifier := NewNotifier(NotifierConfig{
		Subscriber: m.subscriber,
		Sender:     registry.MustGet(reg, registry.EmailSenderKey),
		Renderer:   m.renderer,
		Site:       m.site,
		Inbox:      reg.Config().GetContactInbox(),
		Metrics:    stats,
	})
	if err := notifier.Start(ctx); err != nil {
		return fmt.Errorf("start contact notifier: %w", err)
	}

	slog.Info("Booting ContactModule: Setting up routes...")
	handler := NewHandler(registry.MustGet(reg, registry.ContactSinkKey), m.renderer, m.site, stats)
	g.POST("", handler.ContactPost, middleware.RateLimiter(submissionsPerMinute))
	return nil
}

// Shutdown is called on application termination. The notifier stops with the
// boot context and the bus is closed by the server.
func (m *ContactModule) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down ContactModule...")
	return nil
}
