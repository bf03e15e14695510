package server

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/handlers"
	"github.com/nfrund/folio/internal/metrics"
	appmiddleware "github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/module"
	"github.com/nfrund/folio/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Site     handlers.SiteSource
	Renderer rendering.Renderer
	Metrics  *metrics.Manager

	modules []module.Module
}

// Dependencies holds what New needs to build a Server.
type Dependencies struct {
	Config   config.Provider
	Echo     *echo.Echo
	Site     handlers.SiteSource
	Renderer rendering.Renderer
	// Metrics may be nil when metrics are disabled.
	Metrics *metrics.Manager
}

// New creates a new Server instance and installs the middleware chain.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Site == nil {
		return nil, errors.New("server: site source is required")
	}
	if deps.Renderer == nil {
		deps.Renderer = rendering.NewUniversalRenderer()
	}
	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	if r, ok := deps.Renderer.(echo.Renderer); ok {
		e.Renderer = r
	}
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper:    func(c echo.Context) bool { return c.Path() == "/static/*" || c.Path() == "/health" },
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			appmiddleware.FromContext(c.Request().Context()).Info("Request",
				"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	if deps.Metrics != nil {
		e.Use(deps.Metrics.Middleware())
	}
	e.Use(appmiddleware.ClientHints)

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	return &Server{
		E:        e,
		Cfg:      deps.Config,
		Site:     deps.Site,
		Renderer: deps.Renderer,
		Metrics:  deps.Metrics,
	}, nil
}
