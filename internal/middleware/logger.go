package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey string

const loggerKey = contextKey("logger")

// Logger gives each request a logger tagged with its request ID, method and
// path. It must run after the RequestID middleware.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		l := slog.Default().With(
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"method", req.Method,
			"path", req.URL.Path,
		)
		if req.Header.Get("HX-Request") == "true" {
			l = l.With("htmx", true)
		}
		c.SetRequest(req.WithContext(WithLogger(req.Context(), l)))
		return next(c)
	}
}

// WithLogger stores l in ctx for FromContext.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the request logger, or the default one outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
