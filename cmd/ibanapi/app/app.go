// Package app provides the application context and dependency management
// for the ibanapi CLI. It centralizes configuration, logging and the country
// registry shared by every command.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/manosbatsis/ibanapi/cmd/application"
	"github.com/manosbatsis/ibanapi/internal/cmd/output"
	"github.com/manosbatsis/ibanapi/internal/server"
	"github.com/manosbatsis/ibanapi/pkg/countries"
	"github.com/manosbatsis/ibanapi/pkg/errors"
	"github.com/manosbatsis/ibanapi/pkg/iban"
)

var _ application.Application = (*App)(nil)

// App represents the ibanapi application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Registry and validator (lazy-initialized, singleton)
	mu        sync.RWMutex
	registry  *countries.Registry
	validator *iban.Validator
}

// New creates a new App instance with the given version information.
// The app starts from LoadConfig and can be customized using functional
// options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the --format value, or table on a terminal and
// json otherwise.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// LoadRegistry returns the country registry, loading it on first use from
// the configured countries file or the embedded data.
func (a *App) LoadRegistry() (*countries.Registry, error) {
	a.mu.RLock()
	if a.registry != nil {
		reg := a.registry
		a.mu.RUnlock()
		return reg, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.registry != nil {
		return a.registry, nil
	}

	reg := countries.Default()
	if path := a.config.CountriesFile; path != "" {
		loaded, err := countries.LoadFile(path)
		if err != nil {
			return nil, errors.NewConfigError("countries", "loading "+path, err)
		}
		reg = loaded
		a.logger.Debug().Str("file", path).Int("countries", reg.Len()).Msg("Loaded country registry")
	}

	a.registry = reg
	a.validator = iban.New(reg)
	return reg, nil
}

// Registry returns the country registry. It falls back to the embedded
// registry if the configured file cannot be loaded; commands surface that
// error earlier through LoadRegistry.
func (a *App) Registry() *countries.Registry {
	reg, err := a.LoadRegistry()
	if err != nil {
		a.logger.Warn().Err(err).Msg("Using embedded country registry")
		return countries.Default()
	}
	return reg
}

// Validator returns the validator bound to Registry.
func (a *App) Validator() *iban.Validator {
	if _, err := a.LoadRegistry(); err != nil {
		return iban.New(nil)
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.validator
}

// ServerConfig returns the HTTP server settings from the loaded config.
// The serve command uses it as its flag defaults.
func (a *App) ServerConfig() server.Config {
	cfg := server.DefaultConfig()
	c := a.config

	cfg.Host = c.Host
	cfg.Port = c.Port
	cfg.RateLimit = c.RateLimit
	cfg.CORSEnabled = c.CORSEnabled
	if c.CORSOrigins != nil {
		cfg.CORSOrigins = c.CORSOrigins
	}
	cfg.MaxBatchSize = c.MaxBatchSize
	cfg.BatchConcurrency = c.Concurrency
	cfg.RequestTimeout = c.RequestTimeout
	cfg.ReadTimeout = c.ReadTimeout
	cfg.WriteTimeout = c.WriteTimeout
	cfg.IdleTimeout = c.IdleTimeout
	cfg.MetricsEnabled = c.MetricsEnabled
	return cfg
}

// Shutdown performs graceful shutdown of the application. The app holds no
// background work of its own; servers stop through their command context.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Application shutdown")
	return nil
}

// resetRegistry drops the loaded registry so the next LoadRegistry reads
// the current configuration.
func (a *App) resetRegistry() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.registry = nil
	a.validator = nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithRegistry sets the country registry (useful for testing).
func WithRegistry(reg *countries.Registry) Option {
	return func(a *App) error {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.registry = reg
		a.validator = iban.New(reg)
		return nil
	}
}
