package ui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeToggle(t *testing.T) {
	for _, start := range []bool{true, false} {
		theme := NewTheme(start)
		theme.Toggle()
		assert.Equal(t, !start, theme.IsDark())
		theme.Toggle()
		assert.Equal(t, start, theme.IsDark(), "toggling twice must restore the original value")
	}
}

func TestThemeClasses(t *testing.T) {
	dark := NewTheme(true)
	assert.Equal(t, "dark", dark.RootClass())
	assert.Equal(t, "dark-mode", dark.BodyClass())
	assert.Equal(t, "Switch to light mode", dark.ToggleLabel())

	var light Theme
	assert.Equal(t, "light", light.RootClass())
	assert.Empty(t, light.BodyClass())
	assert.Equal(t, "a", dark.Pick("a", "b"))
	assert.Equal(t, "b", light.Pick("a", "b"))
}

func TestResolvePreference(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		hint     string
		wantDark bool
		source   string
	}{
		{"client hint dark", "/", `"dark"`, true, "client-hint"},
		{"client hint light", "/", "light", false, "client-hint"},
		{"query overrides hint", "/?theme=light", "dark", false, "query"},
		{"no signal falls back to light", "/", "", false, ""},
		{"garbage is ignored", "/?theme=purple", "sepia", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.hint != "" {
				req.Header.Set(ClientHintHeader, tt.hint)
			}
			pref := ResolvePreference(req)
			assert.Equal(t, tt.wantDark, pref.PrefersDark)
			assert.Equal(t, tt.source, pref.Source)

			// The initial theme mirrors the preference.
			assert.Equal(t, tt.wantDark, NewTheme(pref.PrefersDark).IsDark())
		})
	}
}
