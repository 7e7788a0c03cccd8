package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/manosbatsis/ibanapi/cmd/application"
	"github.com/manosbatsis/ibanapi/internal/server/metrics"
	"github.com/manosbatsis/ibanapi/internal/server/middleware"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	app       application.Application
	metrics   *metrics.Metrics
	limiter   *middleware.RateLimiter
	logger    *zerolog.Logger
	config    Config
	handler   http.Handler
	startTime time.Time
}

// New creates a new server instance with the given configuration.
func New(app application.Application, cfg Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := app.Logger()
	logger.Debug().Msg("Creating new server instance")

	s := &Server{
		app:       app,
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}

	if cfg.MetricsEnabled {
		s.metrics = metrics.New()
	}
	if cfg.RateLimit > 0 {
		s.limiter = middleware.NewRateLimiter(cfg.RateLimit, logger)
	}

	s.handler = s.setupRouter()

	logger.Debug().
		Int("countries", app.Registry().Len()).
		Bool("metrics", cfg.MetricsEnabled).
		Int("rate_limit", cfg.RateLimit).
		Msg("Server instance created")
	return s, nil
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Config returns the configuration the server was built with.
func (s *Server) Config() Config {
	return s.config
}

// Shutdown stops background services. It does not close listeners; the
// owner of the http.Server drains connections first.
func (s *Server) Shutdown(_ context.Context) error {
	s.logger.Info().Msg("Shutting down server background services")
	if s.limiter != nil {
		s.limiter.Stop()
	}
	return nil
}

// Metrics returns the server's metrics, or nil when disabled.
func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}
