package pages

import (
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/ui"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// heroNetworks are the socials linked under the tagline, in order.
var heroNetworks = []string{"github", "linkedin", "email"}

// Hero is the full-height introduction. It is not a fade-in section; its four
// parts play a staggered entrance on the first render only.
func Hero(p PageData) cmp.Node {
	t, reveal, profile := p.Theme, p.Hero, p.Site.Profile
	return g.Section(
		g.ID(string(ui.SectionHero)),
		g.Class("min-h-screen flex flex-col justify-center relative "+t.Pick("bg-gray-900 text-white", "bg-gray-50 text-gray-900")),
		g.Div(
			g.Class("absolute inset-0 overflow-hidden"),
			g.Div(g.Class("absolute -top-40 -right-40 w-96 h-96 rounded-full blur-3xl "+t.Pick("bg-blue-500/10", "bg-blue-200/40"))),
			g.Div(g.Class("absolute -bottom-20 -left-20 w-80 h-80 rounded-full blur-3xl "+t.Pick("bg-purple-500/10", "bg-purple-200/30"))),
		),
		g.Div(
			g.Class("container mx-auto px-4 sm:px-6 lg:px-8 z-10"),
			g.Div(
				g.Class("max-w-4xl mx-auto text-center"),
				g.H1(
					heroPart(reveal, ui.HeroTitle, "text-4xl sm:text-5xl md:text-6xl font-bold mb-6"),
					cmp.Text("Hi, I'm "),
					g.Span(g.Class("text-blue-500"), cmp.Text(profile.Name)),
					g.Span(g.Class("inline-block animate-wave origin-bottom-right"), cmp.Text(" 👋")),
				),
				g.P(
					heroPart(reveal, ui.HeroSubtitle, "text-xl sm:text-2xl mb-8 leading-relaxed "+t.Pick("text-gray-300", "text-gray-700")),
					cmp.Text(profile.Tagline),
				),
				g.Div(
					heroPart(reveal, ui.HeroSocials, "flex justify-center space-x-6 mb-10"),
					cmp.Map(heroSocials(profile), func(l domain.SocialLink) cmp.Node {
						return socialLink(l, "p-3 rounded-full transition-colors "+
							t.Pick("text-gray-300 hover:text-white hover:bg-gray-800", "text-gray-700 hover:text-gray-900 hover:bg-gray-200"))
					}),
				),
				g.Div(
					heroPart(reveal, ui.HeroCallToAction, "flex flex-col sm:flex-row justify-center gap-4 mt-8"),
					g.A(
						g.Href(ui.SectionProjects.Anchor()),
						g.Class("inline-flex items-center justify-center px-6 py-3 border border-transparent text-base font-medium rounded-md text-white bg-blue-600 hover:bg-blue-700 transition duration-300"),
						cmp.Text("View My Work"),
					),
					g.A(
						g.Href(ui.SectionContact.Anchor()),
						g.Class("inline-flex items-center justify-center px-6 py-3 border text-base font-medium rounded-md transition duration-300 "+
							t.Pick("bg-gray-800 text-white border-gray-700 hover:bg-gray-700", "bg-white text-gray-800 border-gray-300 hover:bg-gray-100")),
						cmp.Text("Get In Touch"),
					),
				),
			),
		),
		g.Div(
			g.Class("absolute bottom-10 left-0 right-0 flex justify-center animate-bounce"),
			g.A(
				g.Href(ui.SectionAbout.Anchor()),
				g.Class("p-2 rounded-full transition-colors "+t.Pick("text-gray-400 hover:text-white", "text-gray-600 hover:text-gray-900")),
				g.Aria("label", "Scroll down"),
				cmp.Text("↓"),
			),
		),
	)
}

// heroPart is the class and, while animating, the delay style of one part.
func heroPart(r ui.HeroReveal, el ui.HeroElement, class string) cmp.Node {
	if cls := r.Class(); cls != "" {
		class += " " + cls
	}
	return cmp.Group{
		g.Class(class),
		cmp.If(r.Animate, g.Style(r.Style(el))),
	}
}

func heroSocials(p domain.Profile) []domain.SocialLink {
	links := make([]domain.SocialLink, 0, len(heroNetworks))
	for _, n := range heroNetworks {
		if l, ok := p.Social(n); ok {
			links = append(links, l)
		}
	}
	return links
}

// socialLink opens external profiles in a new tab; mailto and tel stay in place.
func socialLink(l domain.SocialLink, class string) cmp.Node {
	external := l.Network != "email" && l.Network != "phone"
	return g.A(
		g.Href(l.URL),
		g.Class(class),
		g.Aria("label", l.Label),
		cmp.If(external, cmp.Group{g.Target("_blank"), g.Rel("noopener noreferrer")}),
		cmp.Text(l.Label),
	)
}
