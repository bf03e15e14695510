package handlers

import (
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/folio/internal/ui"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// PageStateRequest is the client-held UI state that travels with every
// interactive request: the theme, the header flags, the revealed sections and
// whatever is typed into the contact form.
type PageStateRequest struct {
	Dark     bool     `query:"dark" form:"dark"`
	Scrolled bool     `query:"scrolled" form:"scrolled"`
	Menu     bool     `query:"menu" form:"menu"`
	Visible  []string `query:"visible" form:"visible" validate:"max=16"`
	ui.ContactForm
}

// Header rebuilds the header state.
func (r PageStateRequest) Header() ui.Header {
	return ui.Header{Scrolled: r.Scrolled, MenuOpen: r.Menu}
}

// Revealed is the set of sections the browser has already shown.
func (r PageStateRequest) Revealed() ui.Revealed {
	return ui.ParseRevealed(strings.Join(r.Visible, ","))
}

// ThemeRequest flips the theme. Auto marks the browser's one-shot
// correction to a dark OS preference rather than a visitor's click.
type ThemeRequest struct {
	PageStateRequest
	Auto bool `form:"auto"`
}

// HeaderRequest is a header transition. Scroll offsets may be fractional on
// high-density displays and negative during overscroll.
type HeaderRequest struct {
	PageStateRequest
	Offset float64 `form:"offset"`
	Action string  `form:"action" validate:"omitempty,oneof=scroll toggle-menu navigate"`
}

// HeaderAction defaults to a scroll event.
func (r HeaderRequest) HeaderAction() ui.HeaderAction {
	if r.Action == "" {
		return ui.ActionScroll
	}
	return ui.HeaderAction(r.Action)
}

// Pixels rounds the offset up so any movement past the threshold counts.
// Overscroll counts as the top of the page.
func (r HeaderRequest) Pixels() int {
	if math.IsNaN(r.Offset) {
		return 0
	}
	return int(math.Ceil(max(0, min(r.Offset, math.MaxInt32))))
}
