// Package server provides the HTTP API of minuta.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/usecase/notes"
	"github.com/m-mizutani/minuta/pkg/usecase/project"
	"github.com/m-mizutani/minuta/pkg/usecase/search"
	"github.com/m-mizutani/minuta/pkg/utils/logging"
)

// Server wires the usecases to HTTP endpoints.
type Server struct {
	echo     *echo.Echo
	notes    *notes.UseCase
	projects *project.UseCase
	search   *search.UseCase
	logger   *slog.Logger
	config   *Config
}

// Config holds HTTP server configuration.
type Config struct {
	Addr string
}

// New creates a new HTTP server.
func New(notesUC *notes.UseCase, projectUC *project.UseCase, searchUC *search.UseCase, logger *slog.Logger, cfg *Config) (*Server, error) {
	if notesUC == nil || projectUC == nil || searchUC == nil {
		return nil, goerr.New("all usecases are required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg == nil {
		cfg = &Config{Addr: "localhost:8080"}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(logging.With(req.Context(), logger)))

			start := time.Now()
			err := next(c)

			logger.Info("http request",
				"method", req.Method,
				"uri", req.RequestURI,
				"status", c.Response().Status,
				"duration", time.Since(start),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return err
		}
	})

	s := &Server{
		echo:     e,
		notes:    notesUC,
		projects: projectUC,
		search:   searchUC,
		logger:   logger,
		config:   cfg,
	}

	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)

	api := s.echo.Group("/api")
	api.POST("/meetings/:id/extract", s.handleGenerateNotes)
	api.GET("/meetings/:id/extract", s.handleGetDefaultNotes)
	api.GET("/meetings/:id/metadata", s.handleNotesMetadata)
	api.POST("/meetings/:id/regenerate-notes", s.handleRegenerateNotes)
	api.GET("/meetings/:id/regenerate-notes", s.handleGetNotes)

	api.POST("/projects", s.handleCreateProject)
	api.GET("/projects", s.handleListProjects)
	api.DELETE("/projects/:id", s.handleDeleteProject)

	api.POST("/search/ask", s.handleAsk)
	api.GET("/search/example-questions", s.handleExampleQuestions)
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("starting http server", "addr", s.config.Addr)
	return s.echo.Start(s.config.Addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
