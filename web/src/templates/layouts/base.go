package layouts

import (
	"github.com/nfrund/folio/internal/ui"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Script sources loaded from a CDN.
const (
	HtmxURL     = "https://unpkg.com/htmx.org@2.0.4"
	TailwindURL = "https://cdn.tailwindcss.com"
)

// HtmxConfig lets the contact form swap its 422 and 503 answers; every other
// error status leaves the page alone.
const HtmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"422","swap":true},{"code":"503","swap":true,"error":true},{"code":"[45]..","swap":false,"error":true}]}`

// RevealGuardScript adds the js class that hides fade sections until they are
// revealed. Browsers without IntersectionObserver keep every section visible.
const RevealGuardScript = `if ("IntersectionObserver" in window) document.documentElement.classList.add("js")`

// BaseProps configures the document shell.
type BaseProps struct {
	Title       string
	Description string
	Theme       ui.Theme
	// Static drops htmx; an exported page has no server to talk to.
	Static bool
}

// Base is the full HTML document around the page body.
func Base(p BaseProps, children ...cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				cmp.If(p.Description != "", g.Meta(g.Name("description"), g.Content(p.Description))),
				g.Meta(g.Name("color-scheme"), g.Content("light dark")),
				g.TitleEl(cmp.Text(CalculateTitle(p.Title))),
				// Hides fade sections before first paint, only where they can be observed.
				g.Script(cmp.Raw(RevealGuardScript)),
				g.Script(g.Src(TailwindURL)),
				g.Link(g.Rel("stylesheet"), g.Href(Asset("css/site.css"))),
				cmp.If(!p.Static, g.Meta(g.Name("htmx-config"), g.Content(HtmxConfig))),
				cmp.If(!p.Static, g.Script(g.Src(HtmxURL), g.Defer())),
				g.Script(g.Src(Asset("js/site.js")), g.Defer()),
			),
			g.Body(
				g.Class(p.Theme.BodyClass()),
				cmp.Group(children),
			),
		),
	)
}
