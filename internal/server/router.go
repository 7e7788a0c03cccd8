package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manosbatsis/ibanapi/internal/server/handlers"
	"github.com/manosbatsis/ibanapi/internal/server/middleware"
	"github.com/manosbatsis/ibanapi/internal/server/response"
)

// timeoutMessage is the body http.TimeoutHandler writes on expiry.
const timeoutMessage = `{"message":"Request timed out"}`

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	r := chi.NewRouter()

	h := handlers.New(s.app, s.metrics, s.logger, handlers.Options{
		MaxBatchSize: s.config.MaxBatchSize,
		Concurrency:  s.config.BatchConcurrency,
	})

	s.applyMiddleware(r)
	s.registerRoutes(r, h)

	var handler http.Handler = r
	if s.config.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, s.config.RequestTimeout, timeoutMessage)
	}
	return handler
}

// applyMiddleware installs the middleware chain, outermost first.
func (s *Server) applyMiddleware(r chi.Router) {
	cfg := s.config

	chain := []func(http.Handler) http.Handler{
		middleware.Recovery(s.logger),
		middleware.RequestID,
		middleware.Logger(s.logger),
		s.metrics.Middleware,
	}

	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		chain = append(chain, middleware.CORS(corsConfig))
	}

	if s.limiter != nil {
		chain = append(chain, middleware.RateLimit(s.limiter))
	}

	r.Use(middleware.Chain(chain...))
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(r chi.Router, h *handlers.Handlers) {
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		response.MethodNotAllowed(w, req.Method)
	})

	// Favicon handler (return 204 No Content to avoid 404 logs)
	r.Get("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Post("/iban", h.HandleValidateBatch)
	r.Get("/iban/{iban}", h.HandleValidate)

	r.Get("/countries", h.HandleListCountries)
	r.Get("/countries/{code}", h.HandleGetCountry)

	r.Get("/info/healthcheck", h.HandleHealth)
	r.Get("/info/version", h.HandleVersion(s.startTime))

	r.Get("/api-docs/openapi.json", h.HandleOpenAPIJSON)
	r.Get("/api-docs/openapi.yaml", h.HandleOpenAPIYAML)
	r.Get("/doc", h.HandleDocs)

	if s.config.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
}
