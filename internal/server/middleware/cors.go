package middleware

import (
	"net/http"
	"strings"

	"github.com/manosbatsis/ibanapi/internal/matcher"
)

// CORSConfig holds CORS configuration. AllowedOrigins entries are exact
// origins, globs such as "https://*.example.com", or anchored regexes.
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	AllowAll       bool
}

// DefaultCORSConfig returns the default CORS configuration.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		AllowAll:       false,
	}
}

// CompileOrigins compiles origin patterns. Origins compare case-insensitively.
func CompileOrigins(origins []string) (*matcher.MultiMatcher, error) {
	return matcher.NewMultiMatcher(origins, matcher.Auto, &matcher.Options{CaseInsensitive: true})
}

// CORS middleware adds CORS headers to responses and answers preflight
// requests directly. It panics on an invalid origin pattern; check
// configured origins with CompileOrigins first.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	allowed, err := CompileOrigins(config.AllowedOrigins)
	if err != nil {
		panic("middleware: " + err.Error())
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if config.AllowAll || len(config.AllowedOrigins) == 0 {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if origin != "" && allowed.Match(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}

			w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
			w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
			w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
			w.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
