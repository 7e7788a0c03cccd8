package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/manosbatsis/ibanapi/pkg/constants"
	"github.com/manosbatsis/ibanapi/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// CountriesFile replaces the embedded country registry when set.
	CountriesFile string

	// Validation
	Concurrency  int
	MaxBatchSize int

	// HTTP server
	Host           string
	Port           int
	RateLimit      int
	CORSEnabled    bool
	CORSOrigins    []string
	RequestTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MetricsEnabled bool

	// Logging configuration. LogLevel is the explicit --log-level flag;
	// EnvLogLevel comes from LOG_LEVEL and ranks below -v/-q.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (IBANAPI_*, plus HTTP_HOST and HTTP_PORT)
// 3. .env files
// 4. Config file (~/.ibanapi.yaml or ./.ibanapi.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file. An empty path
// searches the standard locations, where a missing file is not an error.
func LoadConfigFile(path string) (*Config, error) {
	// .env files must be loaded before viper binds the environment.
	loadEnvFiles()

	v := newViper()

	if path == "" {
		path = v.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("app", "reading config file "+path, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("." + constants.AppName)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("app", "reading config file", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile:    v.ConfigFileUsed(),
		CountriesFile: v.GetString("countries_file"),

		Concurrency:  v.GetInt("concurrency"),
		MaxBatchSize: v.GetInt("max_batch_size"),

		Host:           v.GetString("host"),
		Port:           v.GetInt("port"),
		RateLimit:      v.GetInt("rate_limit"),
		CORSEnabled:    v.GetBool("cors"),
		CORSOrigins:    v.GetStringSlice("cors_origins"),
		RequestTimeout: v.GetDuration("request_timeout"),
		ReadTimeout:    v.GetDuration("read_timeout"),
		WriteTimeout:   v.GetDuration("write_timeout"),
		IdleTimeout:    v.GetDuration("idle_timeout"),
		MetricsEnabled: v.GetBool("metrics"),

		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	return config, nil
}

// newViper returns a viper instance with defaults and environment bindings.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// The unprefixed names match what container platforms inject.
	_ = v.BindEnv("host", constants.EnvPrefix+"_HOST", "HTTP_HOST")
	_ = v.BindEnv("port", constants.EnvPrefix+"_PORT", "HTTP_PORT")

	v.SetDefault("concurrency", constants.DefaultConcurrency)
	v.SetDefault("max_batch_size", constants.MaxBatchSize)
	v.SetDefault("host", constants.DefaultHost)
	v.SetDefault("port", constants.DefaultPort)
	v.SetDefault("rate_limit", constants.DefaultRateLimit)
	v.SetDefault("cors", false)
	v.SetDefault("cors_origins", []string{})
	v.SetDefault("request_timeout", constants.DefaultRequestTimeout)
	v.SetDefault("read_timeout", constants.DefaultReadTimeout)
	v.SetDefault("write_timeout", constants.DefaultWriteTimeout)
	v.SetDefault("idle_timeout", constants.DefaultIdleTimeout)
	v.SetDefault("metrics", true)

	return v
}

// UpdateFromFlags applies parsed command flags. Flags only override when
// they were given: empty strings and false booleans keep the loaded value.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the process environment are never overwritten,
// so .env.local only fills what .env left unset.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
