// Package module defines the lifecycle of a feature that mounts its own routes
// and services, like the contact form.
package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/registry"
)

// Module is a feature the server boots in two phases.
type Module interface {
	// Name identifies the module in logs and is its route prefix.
	Name() string

	// Register publishes the module's services. Every module registers before
	// any module boots.
	Register(reg *registry.Registry) error

	// Boot resolves services, starts subscribers and mounts routes on the
	// module's group.
	Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error

	// Shutdown releases what Boot started. Modules shut down in reverse order.
	Shutdown(ctx context.Context) error
}

// Prefix is the route group a module is mounted under.
func Prefix(m Module) string {
	return "/" + m.Name()
}

// BaseModule gives a module no-op phases to override.
type BaseModule struct{}

func (BaseModule) Register(*registry.Registry) error { return nil }

func (BaseModule) Boot(context.Context, *echo.Group, *registry.Registry) error { return nil }

func (BaseModule) Shutdown(context.Context) error { return nil }
