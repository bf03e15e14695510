package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Shutdown stops accepting requests, waits for in-flight ones and then shuts
// the modules down in reverse boot order.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down server...")
	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("module %s: %w", m.Name(), err))
		}
	}
	return errors.Join(errs...)
}
