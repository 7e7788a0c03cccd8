// Package server provides the HTTP server of the ibanapi service.
//
// The package is layered:
//
//   - Server: core server struct with lifecycle management
//   - Config: server configuration with defaults from pkg/constants
//   - Router: chi route registration and middleware chain
//   - Handlers: HTTP request handlers organized by domain
//   - Metrics: Prometheus instruments on a private registry
//
// The architecture follows the pattern: CLI → App → Server → Router → Handlers
//
// Usage:
//
//	cfg := server.DefaultConfig()
//	cfg.Port = 3000
//
//	srv, err := server.New(app, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer srv.Shutdown(context.Background())
//
//	http.ListenAndServe(cfg.Addr(), srv.Handler())
package server

//go:generate gomarkdoc --output README.md .
