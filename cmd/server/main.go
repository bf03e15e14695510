package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/folio/internal/app"
	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/logging"
)

// version can be set at build time.
// Example: go build -ldflags "-X 'main.version=1.2.0'"
var version = "dev"

func main() {
	logging.New()
	cfg := config.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Bootstrap(ctx, cfg, version)
	if err != nil {
		slog.Error("Failed to start", "error", err)
		os.Exit(1)
	}
	if err := a.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
