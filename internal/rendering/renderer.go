package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer renders any supported component type (templ or gomponents).
type Renderer interface {
	// RenderComponent renders a component to bytes, e.g. for a static export.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a full response or an htmx fragment with the given status.
	RenderPage(c echo.Context, status int, component any) error
}

// UniversalRenderer handles rendering for multiple component types.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode matches gomponents.Node without importing it.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (tr *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

// RenderComponent implements the Renderer interface.
func (tr *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tr.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface. The component is rendered to a
// buffer first so a failure can still become a proper error response.
func (tr *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	body, err := tr.RenderComponent(c.Request().Context(), component)
	if err != nil {
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer for use with c.Render(status, name, component).
func (tr *UniversalRenderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return tr.render(c.Request().Context(), data, w)
}
