package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/folio/internal/module"
	"github.com/nfrund/folio/internal/registry"
)

// InitModules runs the two module phases: every module registers its services
// first, then each one boots under its own route group, /<name>.
func (s *Server) InitModules(ctx context.Context, modules []module.Module, reg *registry.Registry) error {
	for _, m := range modules {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	slog.Debug("Services registered", "keys", reg.Keys())
	for _, m := range modules {
		slog.Debug("Booting module", "module", m.Name(), "prefix", module.Prefix(m))
		if err := m.Boot(ctx, s.E.Group(module.Prefix(m)), reg); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
	}
	s.modules = append(s.modules, modules...)
	return nil
}
