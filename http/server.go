// Package http provides the echo-based HTTP transport for the creative
// analysis service.
package http

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dukerupert/dokimi"
)

// Server represents the HTTP server with all its dependencies.
type Server struct {
	echo   *echo.Echo
	ln     net.Listener
	logger *slog.Logger

	// Configuration
	Addr string

	// HasRemoteAnalysis reports whether the engine was configured with a
	// remote inference credential. Exposed on the health endpoint.
	HasRemoteAnalysis bool

	// Domain services
	creativeService dokimi.CreativeService
	retailerService dokimi.RetailerService
	reportService   dokimi.ReportService

	// External services
	fileStorage dokimi.FileStorage
}

// Config holds the configuration for creating a new Server.
type Config struct {
	Addr   string
	Logger *slog.Logger

	HasRemoteAnalysis bool

	// Domain services
	CreativeService dokimi.CreativeService
	RetailerService dokimi.RetailerService
	ReportService   dokimi.ReportService

	// External services
	FileStorage dokimi.FileStorage
}

// NewServer creates a new HTTP server with the given configuration.
func NewServer(cfg Config) *Server {
	s := &Server{
		Addr:              cfg.Addr,
		logger:            cfg.Logger,
		HasRemoteAnalysis: cfg.HasRemoteAnalysis,
		creativeService:   cfg.CreativeService,
		retailerService:   cfg.RetailerService,
		reportService:     cfg.ReportService,
		fileStorage:       cfg.FileStorage,
	}

	s.echo = echo.New()
	s.echo.HideBanner = true
	s.echo.HidePort = true

	// Register middleware and routes
	s.registerMiddleware()
	s.registerRoutes()

	return s
}

// Echo returns the underlying Echo instance.
// Use sparingly - prefer registering routes through Server methods.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Open starts the HTTP server.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.echo.Server.Serve(s.ln); err != nil {
			s.logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	s.logger.Info("server started", slog.String("addr", s.Addr))
	return nil
}

// Close gracefully shuts down the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// URL returns the URL of the server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

const (
	// DefaultTimeout bounds catalog and report lookups.
	DefaultTimeout = 5 * time.Second

	// AnalysisTimeout bounds a full creative analysis, including the remote
	// inference exchanges.
	AnalysisTimeout = 90 * time.Second
)
