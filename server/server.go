package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"station-search/config"
	"station-search/logger"
	"station-search/middleware"
	"station-search/rest"
	"station-search/usecase"
)

// Server is the HTTP API surface.
type Server struct {
	config *config.Config
	echo   *echo.Echo
}

// New builds the server with routes and middleware wired.
func New(cfg *config.Config, searchUsecase *usecase.SearchStationsUsecase) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.ReadHeaderTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.ElapsedTime())
	e.Use(middleware.OTelStatus("station-search"))

	s := &Server{config: cfg, echo: e}
	s.setupRoutes(rest.NewHandler(searchUsecase))
	return s
}

func (s *Server) setupRoutes(h *rest.Handler) {
	s.echo.GET("/v1/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	s.echo.GET("/v1/search", h.SearchNearby)
	s.echo.POST("/v1/search", h.SearchStations)
}

// Start begins serving and blocks until shutdown.
func (s *Server) Start() error {
	logger.Logger.Info("starting HTTP server", "addr", s.config.HTTP.Addr)
	return s.echo.Start(s.config.HTTP.Addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Logger.Info("shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
