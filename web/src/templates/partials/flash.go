package partials

import (
	"github.com/nfrund/folio/internal/ui"
	"github.com/nfrund/folio/internal/view"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Flash renders queued one-time messages. It renders nothing when empty.
func Flash(f view.FlashData, t ui.Theme) cmp.Node {
	if f.IsEmpty() {
		return nil
	}
	return g.Div(
		g.Class("space-y-2 mb-6"),
		g.Role("status"),
		cmp.Map(f.Success, func(msg string) cmp.Node {
			return Notice(msg, false, t)
		}),
		cmp.Map(f.Error, func(msg string) cmp.Node {
			return Notice(msg, true, t)
		}),
	)
}

// Notice is a single success or error banner.
func Notice(msg string, isError bool, t ui.Theme) cmp.Node {
	class := t.Pick("bg-green-900/50 text-green-200", "bg-green-100 text-green-800")
	if isError {
		class = t.Pick("bg-red-900/50 text-red-200", "bg-red-100 text-red-800")
	}
	return g.P(
		g.Class("notice px-4 py-3 rounded-lg text-sm "+class),
		cmp.Text(msg),
	)
}
