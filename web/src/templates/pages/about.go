package pages

import (
	"github.com/nfrund/folio/internal/ui"
	"github.com/nfrund/folio/internal/view"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// traitPalette colors the trait chips in turn.
var traitPalette = []struct{ dark, light string }{
	{"bg-blue-900/50 text-blue-200", "bg-blue-100 text-blue-800"},
	{"bg-green-900/50 text-green-200", "bg-green-100 text-green-800"},
	{"bg-purple-900/50 text-purple-200", "bg-purple-100 text-purple-800"},
	{"bg-yellow-900/50 text-yellow-200", "bg-yellow-100 text-yellow-800"},
}

// About is the portrait, bio and background section.
func About(p PageData) cmp.Node {
	t, profile := p.Theme, p.Site.Profile
	muted := t.Pick("text-gray-300", "text-gray-700")

	return fadeSection(p, ui.SectionAbout, t.Pick("bg-gray-800 text-white", "bg-white text-gray-900"),
		sectionHeading(t, "About Me", ""),
		g.Div(
			g.Class("grid grid-cols-1 md:grid-cols-5 gap-10 items-center"),
			g.Div(
				g.Class("md:col-span-2"),
				g.Div(
					g.Class("relative rounded-lg overflow-hidden shadow-lg "+t.Pick("shadow-blue-500/20", "shadow-xl")),
					g.Div(g.Class("absolute inset-0 "+t.Pick("bg-blue-500/10", "bg-blue-100/30"))),
					g.Img(
						g.Src(profile.Portrait),
						g.Alt("Portrait of "+profile.Name),
						g.Loading("lazy"),
						g.Class("w-full h-auto relative z-10"),
					),
				),
			),
			g.Div(
				g.Class("md:col-span-3"),
				g.H3(g.Class("text-2xl font-bold mb-4"), cmp.Textf("Hello, I'm %s!", profile.Name)),
				g.Div(
					g.Class("bio mb-6 leading-relaxed space-y-4 "+muted),
					view.TrustedHTML(p.Site.BioHTML),
				),
				g.Div(
					g.Class("grid grid-cols-1 sm:grid-cols-2 gap-4 mb-6"),
					factCard(t, "Education", profile.Education),
					factCard(t, "Experience", profile.Experience),
				),
				g.Div(
					g.Class("flex flex-wrap gap-2"),
					cmp.Group(traitChips(t, profile.Traits)),
				),
			),
		),
	)
}

func factCard(t ui.Theme, title string, lines []string) cmp.Node {
	if len(lines) == 0 {
		return nil
	}
	return g.Div(
		g.Class("p-4 rounded-lg "+t.Pick("bg-gray-700", "bg-gray-100")),
		g.H4(g.Class("font-bold mb-2"), cmp.Text(title)),
		g.P(g.Class(t.Pick("text-gray-300", "text-gray-700")), lineBreaks(lines)),
	)
}

func traitChips(t ui.Theme, traits []string) []cmp.Node {
	chips := make([]cmp.Node, len(traits))
	for i, trait := range traits {
		shade := traitPalette[i%len(traitPalette)]
		chips[i] = g.Span(g.Class("px-3 py-1 rounded-full text-sm "+t.Pick(shade.dark, shade.light)), cmp.Text(trait))
	}
	return chips
}

// lineBreaks joins lines with <br>.
func lineBreaks(lines []string) cmp.Node {
	nodes := make(cmp.Group, 0, len(lines)*2)
	for i, l := range lines {
		if i > 0 {
			nodes = append(nodes, g.Br())
		}
		nodes = append(nodes, cmp.Text(l))
	}
	return nodes
}
