package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/middleware"
)

// setupErrorHandling logs every error a handler returns without turning it
// into an echo.HTTPError first, together with the stack, then lets echo write
// the response.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		logger := middleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		switch {
		case !errors.As(err, &he):
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		case he.Code >= http.StatusInternalServerError:
			logger.Error("Request failed", "status", he.Code, "error", err)
		case he.Internal != nil:
			logger.Debug("Request rejected", "status", he.Code, "error", he.Internal)
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
