package server

import (
	"net"
	"strconv"
	"time"

	"github.com/manosbatsis/ibanapi/internal/server/middleware"
	"github.com/manosbatsis/ibanapi/pkg/constants"
	"github.com/manosbatsis/ibanapi/pkg/errors"
)

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// CORS settings
	CORSEnabled bool
	CORSOrigins []string

	// Performance settings
	RateLimit        int // Requests per minute per IP (0 to disable)
	MaxBatchSize     int
	BatchConcurrency int

	// RequestTimeout bounds handler execution; 0 disables the timeout.
	RequestTimeout time.Duration

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Features
	MetricsEnabled bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:             constants.DefaultHost,
		Port:             constants.DefaultPort,
		CORSEnabled:      false,
		CORSOrigins:      []string{},
		RateLimit:        constants.DefaultRateLimit,
		MaxBatchSize:     constants.MaxBatchSize,
		BatchConcurrency: constants.DefaultConcurrency,
		RequestTimeout:   constants.DefaultRequestTimeout,
		ReadTimeout:      constants.DefaultReadTimeout,
		WriteTimeout:     constants.DefaultWriteTimeout,
		IdleTimeout:      constants.DefaultIdleTimeout,
		MetricsEnabled:   true,
	}
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Port < 0 || c.Port > 65535:
		return errors.NewConfigError("server", "port must be between 0 and 65535, got "+strconv.Itoa(c.Port), nil)
	case c.RateLimit < 0:
		return errors.NewConfigError("server", "rate limit must not be negative", nil)
	case c.MaxBatchSize < 0:
		return errors.NewConfigError("server", "max batch size must not be negative", nil)
	case c.BatchConcurrency < 0:
		return errors.NewConfigError("server", "batch concurrency must not be negative", nil)
	case c.RequestTimeout < 0 || c.ReadTimeout < 0 || c.WriteTimeout < 0 || c.IdleTimeout < 0:
		return errors.NewConfigError("server", "timeouts must not be negative", nil)
	}
	if _, err := middleware.CompileOrigins(c.CORSOrigins); err != nil {
		return errors.NewConfigError("server", "invalid CORS origin", err)
	}
	return nil
}
