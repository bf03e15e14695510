package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/nfrund/folio/internal/ui"
	"github.com/nfrund/folio/internal/view"
	"github.com/nfrund/folio/web/src/templates/pages"
)

// SiteSource hands out the portfolio content for the current request.
// content.Store satisfies it and swaps the value on reload.
type SiteSource interface {
	Current() *content.Site
}

// PageHandler serves the full document.
type PageHandler struct {
	site     SiteSource
	renderer rendering.Renderer
	now      func() time.Time
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(site SiteSource, renderer rendering.Renderer) *PageHandler {
	return &PageHandler{site: site, renderer: renderer, now: time.Now}
}

// HomeGet renders the page with the platform theme, every fade-in section
// hidden and the hero entrance playing.
func (h *PageHandler) HomeGet(c echo.Context) error {
	pref := ui.ResolvePreference(c.Request())
	data := pages.PageData{
		Site:        h.site.Current(),
		Theme:       ui.NewTheme(pref.PrefersDark),
		ThemeSource: pref.Source,
		Revealed:    ui.Revealed{},
		Hero:        ui.HeroReveal{Animate: true},
		Flash:       view.GetFlashData(c),
		Now:         h.now(),
	}
	return h.renderer.RenderPage(c, http.StatusOK, pages.Home(data))
}
