package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAssets(t *testing.T) {
	for _, name := range []string{"static/css/site.css", "static/js/site.js"} {
		info, err := fs.Stat(FS, name)
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
}

func TestSiteScript(t *testing.T) {
	src, err := fs.ReadFile(FS, "static/js/site.js")
	require.NoError(t, err)
	js := string(src)

	t.Run("sections show when htmx is missing", func(t *testing.T) {
		assert.Contains(t, js, "if (!window.htmx)")
		assert.Contains(t, js, `classList.add("fade-in-section-visible")`)
	})

	t.Run("dark preference is applied as an automatic request", func(t *testing.T) {
		assert.Contains(t, js, `values: { auto: "true" }`)
		assert.Contains(t, js, "prefers-color-scheme: dark")
	})
}
