package pages

import (
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/ui"
	"github.com/nfrund/folio/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// ContactFormID is the form element id; the form swaps itself on submit.
const ContactFormID = "contact-form"

const contactIntro = "Have a project in mind or want to say hello? Feel free to reach out. I'm always open to discussing new projects, creative ideas, or opportunities to be part of your vision."

// connectNetworks are the socials listed under the contact details.
var connectNetworks = []string{"twitter", "linkedin", "github"}

// Contact is the details card and the message form.
func Contact(p PageData) cmp.Node {
	t, profile := p.Theme, p.Site.Profile
	return fadeSection(p, ui.SectionContact, t.Pick("bg-gray-900 text-white", "bg-gray-50 text-gray-900"),
		sectionHeading(t, "Get In Touch", contactIntro),
		g.Div(
			g.Class("grid grid-cols-1 md:grid-cols-5 gap-10"),
			g.Div(
				g.Class("md:col-span-2"),
				contactDetails(t, profile),
			),
			g.Div(
				g.Class("md:col-span-3"),
				g.Div(
					g.Class("p-6 rounded-xl "+t.Pick("bg-gray-800", "bg-white shadow-lg")),
					g.H3(g.Class("text-xl font-bold mb-6"), cmp.Text("Send a Message")),
					partials.Flash(p.Flash, t),
					ContactForm(t, p.Contact, p.Static, profile.Email),
				),
			),
		),
	)
}

func contactDetails(t ui.Theme, profile domain.Profile) cmp.Node {
	linkClass := "transition hover:underline " + t.Pick("text-gray-300 hover:text-white", "text-gray-700 hover:text-gray-900")
	var email, phone cmp.Node
	if l, ok := profile.Social("email"); ok {
		email = g.A(g.Href(l.URL), g.Class(linkClass), cmp.Text(profile.Email))
	}
	if l, ok := profile.Social("phone"); ok {
		phone = g.A(g.Href(l.URL), g.Class(linkClass), cmp.Text(profile.Phone))
	}

	return g.Div(
		g.Class("p-6 rounded-xl "+t.Pick("bg-gray-800", "bg-white shadow-lg")),
		g.H3(g.Class("text-xl font-bold mb-6"), cmp.Text("Contact Information")),
		g.Div(
			g.Class("space-y-6"),
			cmp.If(email != nil, detailRow(t, "Email", t.Pick("bg-blue-500/10 text-blue-400", "bg-blue-100 text-blue-600"), email)),
			cmp.If(phone != nil, detailRow(t, "Phone", t.Pick("bg-green-500/10 text-green-400", "bg-green-100 text-green-600"), phone)),
			cmp.If(len(profile.Location) > 0, detailRow(t, "Location", t.Pick("bg-purple-500/10 text-purple-400", "bg-purple-100 text-purple-600"),
				g.P(g.Class(t.Pick("text-gray-300", "text-gray-700")), lineBreaks(profile.Location)))),
		),
		g.Div(
			g.Class("mt-8 pt-6 border-t "+t.Pick("border-gray-700", "border-gray-200")),
			g.H4(g.Class("text-sm font-medium mb-4"), cmp.Text("Connect with me")),
			g.Div(
				g.Class("flex space-x-4"),
				cmp.Map(connectNetworks, func(n string) cmp.Node {
					l, ok := profile.Social(n)
					if !ok {
						return nil
					}
					return socialLink(l, "p-2 rounded-full transition "+
						t.Pick("bg-gray-700 hover:bg-gray-600 text-gray-300", "bg-gray-100 hover:bg-gray-200 text-gray-700"))
				}),
			),
		),
	)
}

func detailRow(t ui.Theme, title, badge string, body cmp.Node) cmp.Node {
	return g.Div(
		g.Class("flex items-start"),
		g.Div(g.Class("p-3 rounded-full "+badge), g.Aria("hidden", "true"), cmp.Text("•")),
		g.Div(
			g.Class("ml-4"),
			g.H4(g.Class("text-sm font-medium mb-1"), cmp.Text(title)),
			body,
		),
	)
}

// ContactForm is the message form. It is also the fragment returned to htmx
// submissions, with field errors or the acknowledgement filled in. A static
// page falls back to a mailto action.
func ContactForm(t ui.Theme, s ContactState, static bool, mailto string) cmp.Node {
	return g.Form(
		g.ID(ContactFormID),
		g.Method("post"),
		cmp.If(!static, cmp.Group{
			g.Action("contact"),
			hx.Post("/contact"),
			hx.Target("this"),
			hx.Swap("outerHTML"),
			hx.Include("#site-header"),
		}),
		cmp.If(static, cmp.Group{
			g.Action("mailto:" + mailto),
			cmp.Attr("enctype", "text/plain"),
		}),
		cmp.If(s.Notice != "", partials.Notice(s.Notice, s.Failed, t)),
		g.Div(
			g.Class("grid grid-cols-1 sm:grid-cols-2 gap-6 mb-6 mt-4"),
			field(t, s, "name", "Your Name", "text", "John Doe", s.Form.Name),
			field(t, s, "email", "Your Email", "email", "john@example.com", s.Form.Email),
		),
		g.Div(g.Class("mb-6"), field(t, s, "subject", "Subject", "text", "Project Inquiry", s.Form.Subject)),
		g.Div(g.Class("mb-6"), field(t, s, "message", "Message", "", "Hello, I'd like to talk about...", s.Form.Message)),
		g.Button(
			g.Type("submit"),
			g.Class("w-full inline-flex items-center justify-center px-6 py-3 border border-transparent text-base font-medium rounded-md text-white bg-blue-600 hover:bg-blue-700 transition duration-300"),
			cmp.Text("Send Message"),
		),
	)
}

// field renders one labelled control. An empty kind renders a textarea.
func field(t ui.Theme, s ContactState, name, label, kind, placeholder, value string) cmp.Node {
	msg := s.Errors[name]
	class := "w-full px-4 py-2 rounded-lg focus:outline-none focus:ring-2 transition " +
		t.Pick("bg-gray-700 border-gray-600 text-white focus:ring-blue-500", "bg-gray-50 border border-gray-300 text-gray-900 focus:ring-blue-500")
	if msg != "" {
		class += " ring-2 ring-red-500"
	}
	attrs := cmp.Group{
		g.ID(name),
		g.Name(name),
		g.Required(),
		g.Placeholder(placeholder),
		g.Class(class),
		cmp.If(msg != "", g.Aria("invalid", "true")),
		cmp.If(msg != "", g.Aria("describedby", name+"-error")),
	}

	var control cmp.Node
	if kind == "" {
		control = g.Textarea(attrs, g.Rows("5"), cmp.Text(value))
	} else {
		control = g.Input(attrs, g.Type(kind), g.Value(value))
	}

	return g.Div(
		g.Label(
			g.For(name),
			g.Class("block text-sm font-medium mb-2 "+t.Pick("text-gray-300", "text-gray-700")),
			cmp.Text(label),
		),
		control,
		cmp.If(msg != "", g.P(g.ID(name+"-error"), g.Class("field-error mt-1 text-sm text-red-500"), cmp.Text(msg))),
	)
}
