package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/metrics"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/nfrund/folio/internal/ui"
	"github.com/nfrund/folio/web/src/templates/pages"
	"github.com/nfrund/folio/web/src/templates/partials"
)

// themeSourceToggle marks a theme chosen by the visitor, which the browser
// must never correct.
const themeSourceToggle = "toggle"

// UIHandler answers the htmx requests that drive the interactive state:
// theme toggles, header transitions and section reveals.
type UIHandler struct {
	site     SiteSource
	renderer rendering.Renderer
	metrics  *metrics.Manager
	now      func() time.Time
}

// NewUIHandler creates a new UIHandler. A nil metrics manager records nothing.
func NewUIHandler(site SiteSource, renderer rendering.Renderer, m *metrics.Manager) *UIHandler {
	return &UIHandler{site: site, renderer: renderer, metrics: m, now: time.Now}
}

// bindState binds and validates a request DTO, mapping failures to 400.
func bindState(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed ui state").SetInternal(err)
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid ui state").SetInternal(err)
	}
	return nil
}

// ThemePost flips the theme and re-renders the whole app in the new scheme.
// Everything else the browser holds (header flags, revealed sections, typed
// form values) comes back unchanged. An automatic request applies the OS dark
// preference on first load: it is not counted and the hero entrance still plays.
func (h *UIHandler) ThemePost(c echo.Context) error {
	var req ThemeRequest
	if err := bindState(c, &req); err != nil {
		return err
	}

	theme := ui.NewTheme(req.Dark)
	source := themeSourceToggle
	if req.Auto {
		theme = ui.NewTheme(true)
		source = ui.MediaQuerySource
	} else {
		theme.Toggle()
		h.metrics.ThemeToggled(theme.RootClass())
	}

	trigger, err := json.Marshal(map[string]any{
		"themeChanged": map[string]bool{"dark": theme.IsDark()},
	})
	if err != nil {
		return fmt.Errorf("encode theme trigger: %w", err)
	}
	c.Response().Header().Set("HX-Trigger", string(trigger))

	middleware.FromContext(c.Request().Context()).Debug("Theme changed", "theme", theme.RootClass(), "source", source)

	data := pages.PageData{
		Site:        h.site.Current(),
		Theme:       theme,
		ThemeSource: source,
		Hero:        ui.HeroReveal{Animate: req.Auto},
		Header:      req.Header(),
		Revealed:    req.Revealed(),
		Contact:     pages.ContactState{Form: req.ContactForm},
		Now:         h.now(),
	}
	return h.renderer.RenderPage(c, http.StatusOK, pages.App(data))
}

// HeaderPost applies one header transition. An unchanged header answers 204
// so htmx leaves the element alone.
func (h *UIHandler) HeaderPost(c echo.Context) error {
	var req HeaderRequest
	if err := bindState(c, &req); err != nil {
		return err
	}

	header := req.Header()
	changed, err := header.Apply(req.HeaderAction(), req.Pixels())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !changed {
		return c.NoContent(http.StatusNoContent)
	}

	return h.renderer.RenderPage(c, http.StatusOK, partials.Header(partials.HeaderProps{
		Name:  h.site.Current().Profile.Name,
		Theme: ui.NewTheme(req.Dark),
		State: header,
	}))
}

// SectionGet reveals a fade-in section the first time it intersects the
// viewport. Repeat requests for an already revealed section render it visible
// without counting a second reveal.
func (h *UIHandler) SectionGet(c echo.Context) error {
	section, err := ui.ParseSection(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownSection) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}

	var req PageStateRequest
	if err := bindState(c, &req); err != nil {
		return err
	}

	revealed := req.Revealed()
	// The request is only sent once the section crossed the threshold.
	if revealed.Observer(section).Intersect(1.0) {
		h.metrics.SectionRevealed(string(section))
	}
	revealed[section] = true

	data := pages.PageData{
		Site:     h.site.Current(),
		Theme:    ui.NewTheme(req.Dark),
		Header:   req.Header(),
		Revealed: revealed,
		Contact:  pages.ContactState{Form: req.ContactForm},
		Now:      h.now(),
	}
	return h.renderer.RenderPage(c, http.StatusOK, pages.Section(data, section))
}
