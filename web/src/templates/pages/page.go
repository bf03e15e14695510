package pages

import (
	"time"

	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/ui"
	"github.com/nfrund/folio/internal/view"
)

// PageData is the complete state a render of the page needs. Handlers build
// it from the request; nothing in it outlives the response.
type PageData struct {
	Site  *content.Site
	Theme ui.Theme
	// ThemeSource names where the initial theme came from; empty means the
	// light fallback, which lets the browser correct it once.
	ThemeSource string
	Header      ui.Header
	Revealed    ui.Revealed
	Hero        ui.HeroReveal
	Contact     ContactState
	Flash       view.FlashData
	// Static renders a self-contained page without server round trips.
	Static bool
	Now    time.Time
}

// ContactState is the contact form plus the outcome of the last submission.
type ContactState struct {
	Form   ui.ContactForm
	Errors ui.FieldErrors
	// Notice is the acknowledgement or failure text, shown above the form.
	Notice string
	Failed bool
}

// Observer is the visibility state section s renders with. Static pages
// cannot observe anything, so every section starts visible.
func (p PageData) Observer(s ui.Section) *ui.Observer {
	if p.Static {
		return ui.NewObserver(false)
	}
	return p.Revealed.Observer(s)
}

func (p PageData) now() time.Time {
	if p.Now.IsZero() {
		return time.Now()
	}
	return p.Now
}
