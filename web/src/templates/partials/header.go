package partials

import (
	"strconv"

	"github.com/nfrund/folio/internal/ui"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
)

// HeaderID is the element id the header swaps itself into.
const HeaderID = "site-header"

// HeaderProps is everything the header renders from.
type HeaderProps struct {
	Name   string
	Theme  ui.Theme
	State  ui.Header
	Static bool
}

// Header renders the fixed top bar. Its hidden inputs carry the theme and
// header flags back to the server on every header or theme request.
func Header(p HeaderProps) cmp.Node {
	t := p.Theme
	return g.Header(
		g.ID(HeaderID),
		c.Classes{
			"fixed top-0 left-0 right-0 z-50 transition-all duration-300": true,
			t.Pick("bg-gray-900/90", "bg-white/90") + " backdrop-blur-md": p.State.Scrolled,
			t.Pick("shadow-lg", "shadow-md"):                              p.State.Scrolled,
			"bg-transparent":                                              !p.State.Scrolled,
		},
		cmp.If(!p.Static, cmp.Group{
			hx.Post("/ui/header"),
			hx.Trigger("scroll from:window throttle:150ms"),
			hx.Vals("js:{offset: window.scrollY}"),
			hx.Include("this"),
			hx.Target("this"),
			hx.Swap("outerHTML"),
		}),
		hidden("dark", strconv.FormatBool(t.IsDark())),
		hidden("scrolled", strconv.FormatBool(p.State.Scrolled)),
		hidden("menu", strconv.FormatBool(p.State.MenuOpen)),
		g.Div(
			g.Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			g.Div(
				g.Class("flex items-center justify-between h-16 sm:h-20"),
				g.Div(
					g.Class("flex-shrink-0"),
					g.A(
						g.Href(ui.SectionHero.Anchor()),
						g.Class("text-xl sm:text-2xl font-bold transition-colors "+t.Pick("text-white", "text-gray-900")),
						cmp.Text(p.Name),
						g.Span(g.Class("text-blue-500"), cmp.Text(".")),
					),
				),
				g.Div(
					g.Class("hidden md:block"),
					g.Nav(
						g.Class("ml-10 flex items-center space-x-8"),
						cmp.Map(ui.NavSections, func(s ui.Section) cmp.Node {
							return g.A(
								g.Href(s.Anchor()),
								g.Class("transition-colors duration-200 hover:text-blue-500 "+t.Pick("text-gray-300", "text-gray-700")),
								cmp.Text(s.Label()),
							)
						}),
						ThemeToggle(t, p.Static),
					),
				),
				g.Div(
					g.Class("flex items-center md:hidden"),
					ThemeToggle(t, p.Static),
					menuButton(p),
				),
			),
		),
		cmp.If(p.State.MenuOpen, mobileMenu(p)),
	)
}

// ThemeToggle is the light/dark switch. It posts the current theme and the
// rest of the page state, and the server answers with the re-rendered app.
// On a static export it links to the page rendered in the other theme.
func ThemeToggle(t ui.Theme, static bool) cmp.Node {
	class := "theme-toggle p-2 rounded-full transition-colors " +
		t.Pick("text-yellow-300 hover:bg-gray-800", "text-gray-700 hover:bg-gray-200")
	icon := g.Span(g.Aria("hidden", "true"), cmp.Text(t.Pick("☀", "☾")))

	if static {
		return g.A(
			g.Href(StaticPage(!t.IsDark())),
			g.Class(class),
			g.Aria("label", t.ToggleLabel()),
			g.Title(t.ToggleLabel()),
			icon,
		)
	}
	return g.Button(
		g.Type("button"),
		g.Class(class),
		g.Aria("label", t.ToggleLabel()),
		g.Title(t.ToggleLabel()),
		hx.Post("/ui/theme"),
		hx.Include("#app"),
		hx.Target("#app"),
		hx.Swap("outerHTML"),
		icon,
	)
}

// StaticPage is the exported file holding the page in the given theme.
func StaticPage(dark bool) string {
	if dark {
		return "dark.html"
	}
	return "light.html"
}

func menuButton(p HeaderProps) cmp.Node {
	t := p.Theme
	label, icon := "Open main menu", "☰"
	if p.State.MenuOpen {
		label, icon = "Close main menu", "✕"
	}
	return g.Button(
		g.Type("button"),
		g.Class("ml-4 inline-flex items-center justify-center p-2 rounded-md transition-colors "+
			t.Pick("text-gray-300 hover:text-white hover:bg-gray-800", "text-gray-700 hover:text-gray-900 hover:bg-gray-100")),
		g.Aria("expanded", strconv.FormatBool(p.State.MenuOpen)),
		cmp.If(!p.Static, hx.Vals(`{"action": "`+string(ui.ActionToggleMenu)+`"}`)),
		cmp.If(!p.Static, hx.Post("/ui/header")),
		g.Span(g.Class("sr-only"), cmp.Text(label)),
		g.Span(g.Aria("hidden", "true"), cmp.Text(icon)),
	)
}

func mobileMenu(p HeaderProps) cmp.Node {
	t := p.Theme
	return g.Div(
		g.ID("mobile-menu"),
		g.Class("md:hidden "+t.Pick("bg-gray-900", "bg-white")),
		g.Div(
			g.Class("px-2 pt-2 pb-3 space-y-1 sm:px-3"),
			cmp.Map(ui.NavSections, func(s ui.Section) cmp.Node {
				// In-page anchors keep their default scroll; htmx only closes the menu.
				return g.A(
					g.Href(s.Anchor()),
					g.Class("block px-3 py-2 rounded-md text-base font-medium "+
						t.Pick("text-gray-300 hover:text-white hover:bg-gray-800", "text-gray-700 hover:text-gray-900 hover:bg-gray-100")),
					cmp.If(!p.Static, hx.Post("/ui/header")),
					cmp.If(!p.Static, hx.Vals(`{"action": "`+string(ui.ActionNavigate)+`"}`)),
					cmp.Text(s.Label()),
				)
			}),
		),
	)
}

func hidden(name, value string) cmp.Node {
	return g.Input(g.Type("hidden"), g.Name(name), g.Value(value))
}
