package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestDefaultCORSConfig tests default CORS configuration.
func TestDefaultCORSConfig(t *testing.T) {
	config := DefaultCORSConfig()

	if config.AllowAll {
		t.Error("expected AllowAll=false by default")
	}
	if len(config.AllowedOrigins) == 0 || config.AllowedOrigins[0] != "*" {
		t.Errorf("expected default origin *, got %v", config.AllowedOrigins)
	}
	if len(config.AllowedMethods) != 3 {
		t.Errorf("expected GET, POST, OPTIONS, got %v", config.AllowedMethods)
	}
}

// TestCORS tests the CORS middleware with various scenarios.
func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		config         CORSConfig
		method         string
		origin         string
		preflight      bool
		expectedOrigin string
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "allow all",
			config:         CORSConfig{AllowAll: true},
			method:         http.MethodGet,
			origin:         "https://example.com",
			expectedOrigin: "*",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "listed origin is echoed",
			config:         CORSConfig{AllowedOrigins: []string{"https://bank.example"}},
			method:         http.MethodGet,
			origin:         "https://bank.example",
			expectedOrigin: "https://bank.example",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "unlisted origin gets no header",
			config:         CORSConfig{AllowedOrigins: []string{"https://bank.example"}},
			method:         http.MethodGet,
			origin:         "https://evil.example",
			expectedOrigin: "",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "preflight short-circuits",
			config:         DefaultCORSConfig(),
			method:         http.MethodOptions,
			origin:         "https://example.com",
			preflight:      true,
			expectedOrigin: "https://example.com",
			expectedStatus: http.StatusNoContent,
			expectNext:     false,
		},
		{
			name:           "plain OPTIONS passes through",
			config:         DefaultCORSConfig(),
			method:         http.MethodOptions,
			origin:         "https://example.com",
			expectedOrigin: "https://example.com",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := CORS(tt.config)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/iban/DE44500105175407324931", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.expectedOrigin {
				t.Errorf("expected origin %q, got %q", tt.expectedOrigin, got)
			}
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if called != tt.expectNext {
				t.Errorf("expected next called=%v, got %v", tt.expectNext, called)
			}
		})
	}
}

// TestCORSOriginPatterns tests glob origins and case-insensitive matching.
func TestCORSOriginPatterns(t *testing.T) {
	handler := CORS(CORSConfig{
		AllowedOrigins: []string{"https://*.bank.example", "http://localhost:*"},
		AllowedMethods: []string{http.MethodGet},
	})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := map[string]string{
		"https://app.bank.example": "https://app.bank.example",
		"HTTPS://APP.BANK.EXAMPLE": "HTTPS://APP.BANK.EXAMPLE",
		"http://localhost:5173":    "http://localhost:5173",
		"https://bank.example":     "",
		"https://evilbank.example": "",
	}
	for origin, want := range tests {
		req := httptest.NewRequest(http.MethodGet, "/countries", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != want {
			t.Errorf("origin %q: expected %q, got %q", origin, want, got)
		}
	}
}

// TestCompileOrigins tests that invalid patterns are reported.
func TestCompileOrigins(t *testing.T) {
	if _, err := CompileOrigins([]string{"https://ok.example", "^(bad$"}); err == nil {
		t.Error("expected an error for an invalid origin pattern")
	}
	if _, err := CompileOrigins(nil); err != nil {
		t.Errorf("unexpected error for no origins: %v", err)
	}
}
