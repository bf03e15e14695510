// Package app assembles the running site: content, bus, tracing, email,
// metrics, the HTTP server and its modules.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/email"
	"github.com/nfrund/folio/internal/metrics"
	"github.com/nfrund/folio/internal/pubsub"
	"github.com/nfrund/folio/internal/registry"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/nfrund/folio/internal/server"
)

const (
	// serviceName identifies the site in traces.
	serviceName  = "folio"
	closeTimeout = 5 * time.Second
)

// App is a fully wired site, ready to serve.
type App struct {
	Server *server.Server
	Store  *content.Store

	cfg            config.Provider
	bus            *pubsub.WatermillBridge
	shutdownTracer func(context.Context) error
}

// Bootstrap builds every service from cfg. ctx bounds background work such
// as the bus subscribers and the content watcher.
func Bootstrap(ctx context.Context, cfg config.Provider, version string) (*App, error) {
	site, err := content.Load(cfg.GetContentFile())
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	store := content.NewStore(site, cfg.GetContentFile())

	tracer, shutdownTracer, err := pubsub.SetupOTel(ctx, pubsub.TracingConfig{
		Enabled:     cfg.GetTracingEnabled(),
		ServiceName: serviceName,
		ZipkinURL:   cfg.GetTracingZipkinURL(),
		Version:     version,
	})
	if err != nil {
		return nil, fmt.Errorf("setup tracing: %w", err)
	}
	bus := pubsub.NewWatermillBridge(tracer)

	emailer, err := email.NewEmailService(cfg)
	if err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("email service: %w", err)
	}

	var stats *metrics.Manager
	if cfg.GetMetricsEnabled() {
		stats = metrics.NewManager()
	}

	renderer := rendering.NewUniversalRenderer()
	srv, err := server.New(server.Dependencies{
		Config:   cfg,
		Site:     store,
		Renderer: renderer,
		Metrics:  stats,
	})
	if err != nil {
		_ = bus.Close()
		return nil, err
	}

	reg := registry.New(cfg)
	registry.Set(reg, registry.EmailSenderKey, emailer)
	if stats != nil {
		registry.Set(reg, registry.MetricsKey, stats)
	}

	modules := NewModules(Dependencies{
		Publisher:  bus,
		Subscriber: bus,
		Renderer:   renderer,
		Site:       store,
	})
	if err := srv.InitModules(ctx, modules, reg); err != nil {
		_ = bus.Close()
		return nil, err
	}
	srv.RegisterRoutes()

	if cfg.GetContentWatch() {
		go func() {
			if err := store.Watch(ctx); err != nil {
				slog.Error("Content watcher stopped", "error", err)
			}
		}()
	}

	return &App{
		Server:         srv,
		Store:          store,
		cfg:            cfg,
		bus:            bus,
		shutdownTracer: shutdownTracer,
	}, nil
}

// Run serves until ctx is canceled, then releases the bus and flushes traces.
func (a *App) Run(ctx context.Context) error {
	err := a.Server.Start(ctx, a.cfg.GetAddr())

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	return errors.Join(err, a.Close(closeCtx))
}

// Close releases the bus and the tracer. The server must already be stopped.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if err := a.bus.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close bus: %w", err))
	}
	if err := a.shutdownTracer(ctx); err != nil {
		errs = append(errs, fmt.Errorf("flush traces: %w", err))
	}
	return errors.Join(errs...)
}
