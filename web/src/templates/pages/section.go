package pages

import (
	"fmt"

	"github.com/nfrund/folio/internal/ui"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

var revealTrigger = fmt.Sprintf("intersect once threshold:%.1f", ui.VisibilityThreshold)

// fadeSection wraps a section in the fade-in behaviour. While the section is
// being observed it asks the server for its revealed version the first time it
// scrolls into view; once visible it carries no trigger at all. The request
// includes the whole app so the response keeps the theme and form values.
func fadeSection(p PageData, s ui.Section, class string, children ...cmp.Node) cmp.Node {
	obs := p.Observer(s)
	classes := "py-20 fade-in-section " + class
	if obs.Visible() {
		classes += " " + ui.VisibleClass
	}
	return g.Section(
		g.ID(string(s)),
		g.Class(classes),
		cmp.If(obs.Observing(), cmp.Group{
			hx.Get("/ui/sections/" + string(s)),
			hx.Trigger(revealTrigger),
			hx.Include("#" + AppID),
			hx.Target("this"),
			hx.Swap("outerHTML"),
		}),
		// Revealed sections report themselves so a re-render keeps them visible.
		cmp.If(obs.Visible() && !p.Static, g.Input(g.Type("hidden"), g.Name("visible"), g.Value(string(s)))),
		g.Div(
			g.Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			g.Div(g.Class("max-w-5xl mx-auto"), cmp.Group(children)),
		),
	)
}

// sectionHeading is the centred title, accent rule and optional intro line.
func sectionHeading(t ui.Theme, title, intro string) cmp.Node {
	return g.Div(
		g.Class("text-center mb-12"),
		g.H2(g.Class("text-3xl md:text-4xl font-bold mb-4"), cmp.Text(title)),
		g.Div(g.Class("h-1 w-20 mx-auto "+t.Pick("bg-blue-500", "bg-blue-600"))),
		cmp.If(intro != "", g.P(
			g.Class("mt-4 max-w-2xl mx-auto "+t.Pick("text-gray-300", "text-gray-600")),
			cmp.Text(intro),
		)),
	)
}
