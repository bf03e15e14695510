package contact

import (
	"github.com/nfrund/folio/internal/domain"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// notificationEmail is the HTML body forwarded to the inbox.
func notificationEmail(msg domain.ContactMessage) cmp.Node {
	return g.Div(
		g.H2(cmp.Text("New message from your portfolio")),
		g.Table(
			row("From", cmp.Text(msg.Name)),
			row("Email", g.A(g.Href("mailto:"+msg.Email), cmp.Text(msg.Email))),
			row("Subject", cmp.Text(msg.Subject)),
			row("Received", cmp.Text(msg.ReceivedAt.Format("2006-01-02 15:04 MST"))),
		),
		g.P(g.Style("white-space: pre-wrap"), cmp.Text(msg.Message)),
	)
}

func row(label string, value cmp.Node) cmp.Node {
	return g.Tr(
		g.Th(g.Style("text-align: left; padding-right: 1em"), cmp.Text(label)),
		g.Td(value),
	)
}
