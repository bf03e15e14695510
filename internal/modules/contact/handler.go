package contact

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/handlers"
	"github.com/nfrund/folio/internal/metrics"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/nfrund/folio/internal/ui"
	"github.com/nfrund/folio/internal/view"
	"github.com/nfrund/folio/web/src/templates/pages"
)

// redirectTarget is where a plain form post lands after submitting.
const redirectTarget = "/#contact"

// submitRequest is the posted form plus the theme flag from the header.
type submitRequest struct {
	Dark bool `form:"dark"`
	ui.ContactForm
}

// Handler serves the contact form submission.
type Handler struct {
	sink     domain.ContactSink
	renderer rendering.Renderer
	site     handlers.SiteSource
	metrics  *metrics.Manager
}

// NewHandler creates a new Handler.
func NewHandler(sink domain.ContactSink, renderer rendering.Renderer, site handlers.SiteSource, m *metrics.Manager) *Handler {
	return &Handler{sink: sink, renderer: renderer, site: site, metrics: m}
}

// ContactPost validates and submits the form.
//
// htmx requests get the form fragment back: 422 with field errors, 503 with
// the failure notice and the values kept, or 200 with the acknowledgement and
// empty fields. A plain form post is answered with a flash and a redirect.
func (h *Handler) ContactPost(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed contact form").SetInternal(err)
	}

	ctx := c.Request().Context()
	form := req.ContactForm
	_, err := ui.Submit(ctx, &form, h.sink)

	state := pages.ContactState{Form: form}
	status := http.StatusOK
	var fieldErrs ui.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		h.metrics.ContactSubmitted(metrics.OutcomeInvalid)
		state.Errors = fieldErrs
		status = http.StatusUnprocessableEntity
	case err != nil:
		middleware.FromContext(ctx).Error("Contact submission failed", "error", err)
		h.metrics.ContactSubmitted(metrics.OutcomeFailed)
		state.Notice = ui.ContactFailure
		state.Failed = true
		status = http.StatusServiceUnavailable
	default:
		h.metrics.ContactSubmitted(metrics.OutcomeAccepted)
		state.Notice = ui.ContactAck
	}

	if c.Request().Header.Get("HX-Request") != "true" {
		return h.redirect(c, state)
	}

	site := h.site.Current()
	return h.renderer.RenderPage(c, status,
		pages.ContactForm(ui.NewTheme(req.Dark), state, false, site.Profile.Email))
}

func (h *Handler) redirect(c echo.Context, state pages.ContactState) error {
	var err error
	switch {
	case len(state.Errors) > 0:
		err = view.SetFlashError(c, describe(state.Errors))
	case state.Failed:
		err = view.SetFlashError(c, state.Notice)
	default:
		err = view.SetFlashSuccess(c, state.Notice)
	}
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Could not queue flash message", "error", err)
	}
	return c.Redirect(http.StatusSeeOther, redirectTarget)
}

// describe flattens field errors into one flash line, in field order.
func describe(fe ui.FieldErrors) string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, ui.FieldLabel(f)+": "+fe[f])
	}
	return strings.Join(parts, " ")
}
