// Package constants provides shared constants used throughout the ibanapi codebase.
// This includes IBAN structure limits, server timeouts, and other values
// that should be consistent across the application.
package constants

import "time"

// IBAN structure constants (ISO 13616)
const (
	// MinIBANLength is the shortest input that can carry a country code and check digits
	MinIBANLength = 4

	// MaxIBANLength is the longest IBAN any country may define
	MaxIBANLength = 34

	// CountryCodeLength is the length of the ISO 3166-1 alpha-2 prefix
	CountryCodeLength = 2

	// CheckDigitsLength is the length of the check digit pair
	CheckDigitsLength = 2

	// HeaderLength is the country code plus check digits
	HeaderLength = CountryCodeLength + CheckDigitsLength

	// ChecksumModulus is the ISO 7064 MOD 97-10 modulus
	ChecksumModulus = 97

	// ChecksumValidRemainder is the remainder a valid IBAN leaves
	ChecksumValidRemainder = 1

	// PrintGroupSize is the group width of the printed IBAN form
	PrintGroupSize = 4

	// MaskVisible is the number of characters left unmasked at each end
	MaskVisible = 4
)

// Timeout constants define various timeout durations used in the application
const (
	// DefaultRequestTimeout bounds the handling time of a single HTTP request
	DefaultRequestTimeout = 10 * time.Second

	// DefaultReadTimeout is the HTTP server read timeout
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the HTTP server write timeout
	DefaultWriteTimeout = 15 * time.Second

	// DefaultIdleTimeout is the HTTP server keep-alive idle timeout
	DefaultIdleTimeout = 60 * time.Second

	// ShutdownTimeout is how long the server drains in-flight requests
	ShutdownTimeout = 30 * time.Second
)

// Limit constants define various limits and capacities
const (
	// MaxBatchSize is the maximum number of IBANs accepted by one batch request
	MaxBatchSize = 1000

	// DefaultConcurrency is the default number of IBANs validated in parallel
	DefaultConcurrency = 8

	// MaxRequestBodyBytes caps the size of a batch request body (1 MB)
	MaxRequestBodyBytes = 1 << 20

	// DefaultRateLimit is the default number of requests per minute per client
	DefaultRateLimit = 600
)

// Server defaults
const (
	// DefaultHost is the interface the HTTP server binds to
	DefaultHost = "127.0.0.1"

	// DefaultPort is the HTTP server port
	DefaultPort = 3000

	// AppName is the binary and service name
	AppName = "ibanapi"

	// EnvPrefix prefixes every environment variable read by the app
	EnvPrefix = "IBANAPI"
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatLog is the format used in log output
	TimeFormatLog = "2006-01-02 15:04:05.000"
)

// File permission constants
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
