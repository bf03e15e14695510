package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/ui"
)

// ClientHints asks browsers to send their color scheme preference. Critical-CH
// makes supporting browsers retry the first request with the hint attached.
// Responses vary on that hint so caches keep light and dark apart.
func ClientHints(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set("Accept-CH", ui.ClientHintHeader)
		h.Set("Critical-CH", ui.ClientHintHeader)
		h.Add(echo.HeaderVary, ui.ClientHintHeader)
		return next(c)
	}
}
