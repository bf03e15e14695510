package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/handlers"
	"github.com/nfrund/folio/web"
)

// RegisterRoutes sets up all the core application routes. Module routes are
// mounted by InitModules.
func (s *Server) RegisterRoutes() {
	pageHandler := handlers.NewPageHandler(s.Site, s.Renderer)
	uiHandler := handlers.NewUIHandler(s.Site, s.Renderer, s.Metrics)

	s.E.GET("/", pageHandler.HomeGet)

	ui := s.E.Group("/ui")
	ui.POST("/theme", uiHandler.ThemePost)
	ui.POST("/header", uiHandler.HeaderPost)
	ui.GET("/sections/:id", uiHandler.SectionGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	if s.Metrics != nil && s.Cfg.GetMetricsEnabled() {
		s.E.GET("/metrics", s.Metrics.Handler())
	}

	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
}
