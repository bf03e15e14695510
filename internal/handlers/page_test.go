package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/handlers"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/nfrund/folio/internal/ui"
	"github.com/nfrund/folio/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupPageTest(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	h := handlers.NewPageHandler(newSite(t), rendering.NewUniversalRenderer())
	e.GET("/", h.HomeGet)
	return e
}

func TestHomeGet(t *testing.T) {
	e := setupPageTest(t)

	tests := []struct {
		name       string
		target     string
		hint       string
		wantClass  string
		wantSource string
	}{
		{name: "no signal starts light", target: "/", wantClass: "light", wantSource: ""},
		{name: "client hint dark", target: "/", hint: `"dark"`, wantClass: "dark", wantSource: "client-hint"},
		{name: "query beats the client hint", target: "/?theme=light", hint: "dark", wantClass: "light", wantSource: "query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.hint != "" {
				req.Header.Set(ui.ClientHintHeader, tt.hint)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, "<!doctype html>")
			assert.Contains(t, body, `id="app" class="`+tt.wantClass+`"`)
			assert.Contains(t, body, `data-theme-source="`+tt.wantSource+`"`)
		})
	}
}

func TestHomeGetInitialState(t *testing.T) {
	e := setupPageTest(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "hero-reveal", "the hero entrance plays on the first mount")
	assert.Contains(t, body, `name="scrolled" value="false"`)
	assert.NotContains(t, body, `id="mobile-menu"`)
	for _, s := range ui.FadeSections {
		assert.Contains(t, body, `hx-get="/ui/sections/`+string(s)+`"`)
	}
	assert.NotContains(t, body, ui.VisibleClass)
}

func TestHomeGetShowsFlashOnce(t *testing.T) {
	e := setupPageTest(t)
	e.GET("/flash", func(c echo.Context) error {
		if err := view.SetFlashSuccess(c, ui.ContactAck); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/flash", nil))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	render := func(cookies []*http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	first := render(cookies)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Contains(t, first.Body.String(), "Thanks for your message!")

	second := render(first.Result().Cookies())
	assert.NotContains(t, second.Body.String(), "Thanks for your message!")
}
