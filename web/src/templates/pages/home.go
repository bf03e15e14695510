package pages

import (
	"github.com/nfrund/folio/internal/ui"
	"github.com/nfrund/folio/web/src/templates/layouts"
	"github.com/nfrund/folio/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// AppID is the root element replaced on every theme toggle.
const AppID = "app"

// Home is the full document.
func Home(p PageData) cmp.Node {
	return layouts.Base(layouts.BaseProps{
		Title:       p.Site.Profile.SiteTitle(),
		Description: p.Site.Profile.Tagline,
		Theme:       p.Theme,
		Static:      p.Static,
	}, App(p))
}

// App is everything inside <body>. It is also the fragment returned by the
// theme endpoint.
func App(p PageData) cmp.Node {
	profile := p.Site.Profile
	return g.Div(
		g.ID(AppID),
		g.Class(p.Theme.RootClass()),
		g.Data("theme-source", p.ThemeSource),
		g.Data("dark", boolString(p.Theme.IsDark())),
		partials.Header(partials.HeaderProps{
			Name:   profile.Name,
			Theme:  p.Theme,
			State:  p.Header,
			Static: p.Static,
		}),
		g.Main(
			Hero(p),
			About(p),
			Projects(p),
			Skills(p),
			Contact(p),
		),
		partials.Footer(profile.Name, p.Theme, p.now()),
	)
}

// Section renders one fade-in section on its own, for the reveal endpoint.
func Section(p PageData, s ui.Section) cmp.Node {
	switch s {
	case ui.SectionAbout:
		return About(p)
	case ui.SectionProjects:
		return Projects(p)
	case ui.SectionSkills:
		return Skills(p)
	case ui.SectionContact:
		return Contact(p)
	default:
		return nil
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
