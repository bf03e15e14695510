package partials

import (
	"time"

	"github.com/nfrund/folio/internal/ui"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Footer renders the copyright line, the section links and the back-to-top button.
func Footer(owner string, t ui.Theme, now time.Time) cmp.Node {
	return g.Footer(
		g.Class("py-8 "+t.Pick("bg-gray-800 text-white", "bg-white text-gray-900")),
		g.Div(
			g.Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			g.Div(
				g.Class("flex flex-col md:flex-row justify-between items-center"),
				g.Div(
					g.Class("mb-4 md:mb-0"),
					g.P(g.Class(t.Pick("text-gray-300", "text-gray-600")), cmp.Text(ui.Copyright(owner, now))),
				),
				g.Div(
					g.Class("flex space-x-6"),
					cmp.Map(ui.NavSections, func(s ui.Section) cmp.Node {
						return g.A(
							g.Href(s.Anchor()),
							g.Class("transition-colors "+t.Pick("text-gray-400 hover:text-white", "text-gray-600 hover:text-gray-900")),
							cmp.Text(s.Label()),
						)
					}),
				),
				g.Button(
					g.Type("button"),
					g.Class("p-3 rounded-full transition-colors "+
						t.Pick("bg-gray-700 hover:bg-gray-600 text-gray-300", "bg-gray-100 hover:bg-gray-200 text-gray-700")),
					g.Aria("label", "Scroll to top"),
					cmp.Attr("onclick", ui.ScrollToTopScript),
					g.Span(g.Aria("hidden", "true"), cmp.Text("↑")),
				),
			),
		),
	)
}
