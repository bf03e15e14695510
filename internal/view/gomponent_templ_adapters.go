package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// gomponentComponent lets a gomponents tree be used wherever a templ.Component
// is expected, such as the renderer's templ path or a templ layout.
type gomponentComponent struct {
	node g.Node
}

func (a gomponentComponent) Render(_ context.Context, w io.Writer) error {
	return a.node.Render(w)
}

// AdaptGomponentToTempl wraps node as a templ.Component.
func AdaptGomponentToTempl(node g.Node) templ.Component {
	return gomponentComponent{node: node}
}

// templNode lets a templ.Component sit inside a gomponents tree.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

func (a templNode) Render(w io.Writer) error {
	return a.component.Render(a.ctx, w)
}

// AdaptTemplToGomponent wraps component as a gomponents.Node. gomponents does
// not pass a context when rendering, so the component sees context.Background.
func AdaptTemplToGomponent(component templ.Component) g.Node {
	return templNode{ctx: context.Background(), component: component}
}

// TrustedHTML embeds pre-rendered HTML, such as converted markdown, in a
// gomponents tree through templ's raw component. Callers own the sanitizing.
func TrustedHTML(html string) g.Node {
	return AdaptTemplToGomponent(templ.Raw(html))
}
