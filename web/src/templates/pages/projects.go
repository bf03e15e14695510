package pages

import (
	"github.com/nfrund/folio/internal/ui"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const projectsIntro = "Here are some of my recent projects. Each one was carefully crafted to solve specific problems and deliver exceptional user experiences."

// Projects is the card grid.
func Projects(p PageData) cmp.Node {
	t, profile := p.Theme, p.Site.Profile
	return fadeSection(p, ui.SectionProjects, t.Pick("bg-gray-900 text-white", "bg-gray-50 text-gray-900"),
		sectionHeading(t, "My Projects", projectsIntro),
		g.Div(
			g.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
			cmp.Map(ui.Cards(p.Site.Projects), func(card ui.Card) cmp.Node {
				return ProjectCard(card, t)
			}),
		),
		cmp.If(profile.GithubURL != "", g.Div(
			g.Class("text-center mt-12"),
			g.A(
				g.Href(profile.GithubURL),
				g.Target("_blank"),
				g.Rel("noopener noreferrer"),
				g.Class("inline-flex items-center px-6 py-3 rounded-md transition duration-300 "+
					t.Pick("bg-gray-800 text-white hover:bg-gray-700 border border-gray-700", "bg-white text-gray-800 hover:bg-gray-100 border border-gray-300 shadow-sm")),
				cmp.Text("See More on GitHub"),
			),
		)),
	)
}

// ProjectCard renders one project. The image zoom is a CSS group-hover, so
// hovering never leaves the browser.
func ProjectCard(card ui.Card, t ui.Theme) cmp.Node {
	pr := card.Project
	return g.Div(
		g.ID(card.Key()),
		g.Class("group rounded-xl overflow-hidden transition-all duration-300 transform hover:-translate-y-2 "+
			t.Pick("bg-gray-800 shadow-lg shadow-blue-500/5", "bg-white shadow-lg")),
		g.Div(
			g.Class("relative overflow-hidden"),
			g.Style("height: 200px"),
			g.Img(
				g.Src(pr.Image),
				g.Alt(pr.Title),
				g.Loading("lazy"),
				g.Class("w-full h-full object-cover transition-transform duration-700 "+card.ImageClass()),
			),
			g.Div(g.Class("absolute inset-0 bg-gradient-to-t to-transparent opacity-60 "+t.Pick("from-gray-900", "from-gray-900/70"))),
			g.Div(
				g.Class("absolute bottom-0 left-0 right-0 p-4"),
				g.H3(g.Class("text-xl font-bold text-white"), cmp.Text(pr.Title)),
			),
		),
		g.Div(
			g.Class("p-5"),
			g.P(g.Class("mb-4 "+t.Pick("text-gray-300", "text-gray-600")), cmp.Text(pr.Description)),
			g.Div(
				g.Class("flex flex-wrap gap-2 mb-4"),
				cmp.Map(pr.Tags, func(tag string) cmp.Node {
					return g.Span(g.Class("px-2 py-1 rounded-full text-xs "+t.Pick("bg-gray-700 text-gray-300", "bg-gray-100 text-gray-700")), cmp.Text(tag))
				}),
			),
			g.Div(
				g.Class("flex justify-between mt-4"),
				cmp.If(pr.GithubURL != "", g.A(
					g.Href(pr.GithubURL),
					g.Target("_blank"),
					g.Rel("noopener noreferrer"),
					g.Class("inline-flex items-center transition-colors "+t.Pick("text-gray-400 hover:text-white", "text-gray-600 hover:text-gray-900")),
					g.Aria("label", "GitHub repository for "+pr.Title),
					g.Span(cmp.Text("Code")),
				)),
				cmp.If(pr.LiveURL != "", g.A(
					g.Href(pr.LiveURL),
					g.Target("_blank"),
					g.Rel("noopener noreferrer"),
					g.Class("inline-flex items-center transition-colors "+t.Pick("text-blue-400 hover:text-blue-300", "text-blue-600 hover:text-blue-700")),
					g.Aria("label", "Live demo for "+pr.Title),
					g.Span(cmp.Text("Live Demo ↗")),
				)),
			),
		),
	)
}
