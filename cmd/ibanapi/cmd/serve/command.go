// Package serve provides the HTTP server command for the ibanapi CLI.
package serve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/manosbatsis/ibanapi/cmd/application"
	"github.com/manosbatsis/ibanapi/internal/cmd/emoji"
	"github.com/manosbatsis/ibanapi/internal/server"
	"github.com/manosbatsis/ibanapi/pkg/constants"
)

// ConfigFunc returns the server settings before flags are applied.
type ConfigFunc func() server.Config

// NewCommand creates the serve command. base supplies the configured
// settings; it is called once for flag defaults and again at run time.
func NewCommand(app application.Application, base ConfigFunc) *cobra.Command {
	defaults := base()

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server"},
		Short:   "Start the IBAN validation HTTP API",
		Long: `Start the HTTP API for IBAN validation.

Endpoints:
  - GET  /iban/{iban}            validate a single IBAN
  - POST /iban                   validate a batch of IBANs
  - GET  /countries              list supported country formats
  - GET  /countries/{code}       show one country format
  - GET  /info/healthcheck       liveness probe
  - GET  /info/version           build information
  - GET  /api-docs/openapi.json  OpenAPI document (also .yaml)
  - GET  /doc                    rendered API documentation
  - GET  /metrics                Prometheus metrics

Requests are logged with a request ID, rate limited per client IP and
bounded by a request timeout. The server drains connections on SIGINT or
SIGTERM.`,
		Example: `  # Start on the default address
  ibanapi serve

  # Listen on all interfaces, port 8080
  ibanapi serve --host 0.0.0.0 --port 8080

  # Allow browser clients from one origin
  ibanapi serve --cors-origins https://app.example.com

  # Disable rate limiting and metrics
  ibanapi serve --rate-limit 0 --metrics=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := parseConfig(cmd, base())
			return runServer(cmd, app, cfg)
		},
	}

	cmd.Flags().String("host", defaults.Host, "Bind address")
	cmd.Flags().Int("port", defaults.Port, "Server port")

	cmd.Flags().Bool("cors", defaults.CORSEnabled, "Enable CORS for all origins")
	cmd.Flags().StringSlice("cors-origins", defaults.CORSOrigins, "Allowed CORS origins (comma-separated)")

	cmd.Flags().Int("rate-limit", defaults.RateLimit, "Requests per minute per IP (0 to disable)")
	cmd.Flags().Int("max-batch-size", defaults.MaxBatchSize, "Maximum IBANs per batch request")
	cmd.Flags().Int("concurrency", defaults.BatchConcurrency, "Parallel validations per batch request")

	cmd.Flags().Duration("request-timeout", defaults.RequestTimeout, "Handler timeout (0 to disable)")
	cmd.Flags().Duration("read-timeout", defaults.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", defaults.WriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", defaults.IdleTimeout, "HTTP idle timeout")

	cmd.Flags().Bool("metrics", defaults.MetricsEnabled, "Enable the /metrics endpoint")

	return cmd
}

// runServer starts the API server and blocks until the command context ends.
func runServer(cmd *cobra.Command, app application.Application, cfg server.Config) error {
	logger := app.Logger()

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Bool("cors", cfg.CORSEnabled).
		Int("rate_limit", cfg.RateLimit).
		Int("max_batch_size", cfg.MaxBatchSize).
		Bool("metrics", cfg.MetricsEnabled).
		Int("countries", app.Registry().Len()).
		Msg("Starting API server")

	srv, err := server.New(app, cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return startWithGracefulShutdown(cmd.Context(), httpServer, srv, logger, cmd.OutOrStdout())
}

// parseConfig applies the flags the user set on top of base.
func parseConfig(cmd *cobra.Command, base server.Config) server.Config {
	cfg := base
	flags := cmd.Flags()

	if flags.Changed("host") {
		cfg.Host = mustGetString(cmd, "host")
	}
	if flags.Changed("port") {
		cfg.Port = mustGetInt(cmd, "port")
	}
	if flags.Changed("cors") {
		cfg.CORSEnabled = mustGetBool(cmd, "cors")
	}
	if flags.Changed("cors-origins") {
		cfg.CORSOrigins = mustGetStringSlice(cmd, "cors-origins")
		cfg.CORSEnabled = true
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimit = mustGetInt(cmd, "rate-limit")
	}
	if flags.Changed("max-batch-size") {
		cfg.MaxBatchSize = mustGetInt(cmd, "max-batch-size")
	}
	if flags.Changed("concurrency") {
		cfg.BatchConcurrency = mustGetInt(cmd, "concurrency")
	}
	if flags.Changed("request-timeout") {
		cfg.RequestTimeout = mustGetDuration(cmd, "request-timeout")
	}
	if flags.Changed("read-timeout") {
		cfg.ReadTimeout = mustGetDuration(cmd, "read-timeout")
	}
	if flags.Changed("write-timeout") {
		cfg.WriteTimeout = mustGetDuration(cmd, "write-timeout")
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = mustGetDuration(cmd, "idle-timeout")
	}
	if flags.Changed("metrics") {
		cfg.MetricsEnabled = mustGetBool(cmd, "metrics")
	}
	return cfg
}

// startWithGracefulShutdown serves until ctx is cancelled, then drains
// connections for up to constants.ShutdownTimeout.
func startWithGracefulShutdown(ctx context.Context, httpServer *http.Server, srv *server.Server, logger *zerolog.Logger, out io.Writer) error {
	serverErr := make(chan error, 1)

	go func() {
		logger.Info().
			Str("addr", httpServer.Addr).
			Msg("HTTP server listening")

		fmt.Fprintf(out, "IBAN API listening on http://%s\n", httpServer.Addr)
		fmt.Fprintln(out, "   Press Ctrl+C to stop")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	select {
	case err := <-serverErr:
		_ = srv.Shutdown(context.Background())
		return err
	case <-ctx.Done():
		logger.Info().Msg("Shutdown signal received")
		fmt.Fprintf(out, "\n%s Shutting down API server...\n", emoji.Stop)

		// The parent context is already cancelled.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("Background services shutdown had issues")
		}

		logger.Info().Msg("Server stopped gracefully")
		fmt.Fprintf(out, "%s API server stopped gracefully\n", emoji.Success)
		return nil
	}
}

// mustGetInt retrieves an integer flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetStringSlice retrieves a string slice flag value or panics if the flag doesn't exist.
func mustGetStringSlice(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetDuration retrieves a duration flag value or panics if the flag doesn't exist.
func mustGetDuration(cmd *cobra.Command, name string) time.Duration {
	val, err := cmd.Flags().GetDuration(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
