package view_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/nfrund/folio/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func TestAdaptGomponentToTempl(t *testing.T) {
	comp := view.AdaptGomponentToTempl(P(g.Text("hello <world>")))

	var buf bytes.Buffer
	require.NoError(t, comp.Render(context.Background(), &buf))
	assert.Equal(t, "<p>hello &lt;world&gt;</p>", buf.String())
}

func TestAdaptTemplToGomponent(t *testing.T) {
	comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<em>templ</em>")
		return err
	})

	var buf bytes.Buffer
	require.NoError(t, Div(view.AdaptTemplToGomponent(comp)).Render(&buf))
	assert.Equal(t, "<div><em>templ</em></div>", buf.String())
}

func TestTrustedHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Div(view.TrustedHTML("<p>bio</p>")).Render(&buf))
	assert.Equal(t, "<div><p>bio</p></div>", buf.String())
}
