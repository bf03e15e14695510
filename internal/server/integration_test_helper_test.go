package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/nfrund/folio/internal/app"
	"github.com/nfrund/folio/internal/config"
	"github.com/stretchr/testify/require"
)

// testConfig is a complete configuration that needs no environment.
func testConfig() *config.Config {
	return &config.Config{
		Addr:           "127.0.0.1:0",
		AppBaseURL:     "http://localhost:8080",
		SessionSecret:  "a-very-secret-key-for-testing-!",
		EmailProvider:  "log",
		ContactInbox:   "owner@example.com",
		MetricsEnabled: true,
	}
}

// setupTestServer wires the whole application, including modules, the same
// way the serve command does.
func setupTestServer(t *testing.T, cfg *config.Config) *app.App {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	a, err := app.Bootstrap(ctx, cfg, "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })
	return a
}

func doRequest(a *app.App, method, target string, form url.Values, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	a.Server.E.ServeHTTP(rec, req)
	return rec
}
