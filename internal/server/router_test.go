package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manosbatsis/ibanapi/cmd/application"
	"github.com/manosbatsis/ibanapi/internal/server/handlers"
	"github.com/manosbatsis/ibanapi/internal/server/middleware"
)

func newTestServer(t *testing.T, modify func(*Config)) *Server {
	t.Helper()
	cfg := DefaultConfig()
	cfg.RateLimit = 0
	if modify != nil {
		modify(&cfg)
	}
	srv, err := New(&application.Mock{
		VersionFunc: func() string { return "1.2.3" },
		CommitFunc:  func() string { return "abc1234" },
	}, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })
	return srv
}

func do(t *testing.T, srv *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body.Message
}

func TestValidateIBAN(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{
			name:   "electronic form",
			target: "/iban/DE44500105175407324931",
			want:   `{"iban":"DE44500105175407324931","bban":"500105175407324931","check_digits":44,"bank_identifier":"50010517","branch_identifier":null,"country_code":"DE"}`,
		},
		{
			name:   "printed form",
			target: "/iban/DE44%205001%200517%205407%203249%2031",
			want:   `{"iban":"DE44500105175407324931","bban":"500105175407324931","check_digits":44,"bank_identifier":"50010517","branch_identifier":null,"country_code":"DE"}`,
		},
		{
			name:   "lower case",
			target: "/iban/gb82west12345698765432",
			want:   `{"iban":"GB82WEST12345698765432","bban":"WEST12345698765432","check_digits":82,"bank_identifier":"WEST","branch_identifier":"123456","country_code":"GB"}`,
		},
		{
			name:   "unknown country",
			target: "/iban/XX98500105175407324931",
			want:   `{"iban":"XX98500105175407324931","bban":"500105175407324931","check_digits":98,"bank_identifier":null,"branch_identifier":null,"country_code":"XX"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, srv, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestValidateIBANRejected(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		target  string
		message string
	}{
		{"/iban/DE44500105175407324932", "Invalid IBAN: checksum mismatch: mod-97 remainder is 28, expected 1"},
		{"/iban/DE4450010517", "Invalid IBAN: invalid length for DE: expected 22 characters, got 12"},
		{"/iban/D", "Invalid IBAN: too short to parse: got 1 characters, need at least 4"},
		{"/iban/DE44-5001", "Invalid IBAN: invalid character '-' at position 4, expected letter or digit"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := do(t, srv, http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.message, message(t, w))
		})
	}
}

func TestValidateBatch(t *testing.T) {
	srv := newTestServer(t, func(c *Config) { c.MaxBatchSize = 3 })

	t.Run("mixed results keep order", func(t *testing.T) {
		w := do(t, srv, http.MethodPost, "/iban", `{"ibans":["DE44500105175407324931","DE44500105175407324932","NL91 ABNA 0417 1643 00"]}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp handlers.BatchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 3)
		assert.Equal(t, 2, resp.Valid)
		assert.Equal(t, 1, resp.Invalid)

		assert.True(t, resp.Results[0].Valid)
		require.NotNil(t, resp.Results[0].Info)
		assert.Equal(t, 44, resp.Results[0].Info.CheckDigits)

		assert.False(t, resp.Results[1].Valid)
		assert.Nil(t, resp.Results[1].Info)
		assert.Equal(t, "checksum_mismatch", resp.Results[1].Kind)
		assert.Equal(t, "Invalid IBAN: checksum mismatch: mod-97 remainder is 28, expected 1", resp.Results[1].Message)

		assert.Equal(t, "NL91 ABNA 0417 1643 00", resp.Results[2].Input)
		require.NotNil(t, resp.Results[2].Info)
		assert.Equal(t, "NL91ABNA0417164300", resp.Results[2].Info.IBAN)
	})

	badRequests := []struct {
		name string
		body string
	}{
		{"empty list", `{"ibans":[]}`},
		{"missing field", `{}`},
		{"unknown field", `{"ibans":["DE44500105175407324931"],"extra":true}`},
		{"not json", `DE44500105175407324931`},
		{"too many", `{"ibans":["a","b","c","d"]}`},
	}
	for _, tt := range badRequests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, srv, http.MethodPost, "/iban", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, message(t, w))
		})
	}
}

func TestCountries(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("list", func(t *testing.T) {
		w := do(t, srv, http.MethodGet, "/countries", "")
		require.Equal(t, http.StatusOK, w.Code)

		var list handlers.CountryList
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Equal(t, 77, list.Count)
		assert.Len(t, list.Countries, 77)
		assert.Equal(t, "AD", list.Countries[0].CountryCode)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		w := do(t, srv, http.MethodGet, "/countries/it", "")
		require.Equal(t, http.StatusOK, w.Code)

		var info map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
		assert.Equal(t, "IT", info["country_code"])
		assert.Equal(t, "Italy", info["name"])
		assert.Equal(t, float64(27), info["length"])
		assert.Equal(t, float64(23), info["bban_length"])
		assert.Equal(t, "1!a5!n5!n12!c", info["pattern"])
		assert.Equal(t, map[string]any{"start": float64(1), "end": float64(6)}, info["bank_identifier"])
		assert.Equal(t, map[string]any{"start": float64(6), "end": float64(11)}, info["branch_identifier"])
		assert.Len(t, info["fields"], 4)
	})

	t.Run("absent branch is null", func(t *testing.T) {
		w := do(t, srv, http.MethodGet, "/countries/DE", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"branch_identifier":null`)
	})

	t.Run("unknown", func(t *testing.T) {
		w := do(t, srv, http.MethodGet, "/countries/XX", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "country XX not found", message(t, w))
	})
}

func TestInfoEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)

	w := do(t, srv, http.MethodGet, "/info/healthcheck", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, srv, http.MethodGet, "/info/version", "")
	require.Equal(t, http.StatusOK, w.Code)
	var info handlers.VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "ibanapi", info.Name)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc1234", info.Commit)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.OSArch, "/")
}

func TestOpenAPIEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)

	w := do(t, srv, http.MethodGet, "/api-docs/openapi.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "3.1.0", doc["openapi"])
	assert.Contains(t, doc["paths"], "/iban/{iban}")

	w = do(t, srv, http.MethodGet, "/api-docs/openapi.yaml", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/x-yaml", w.Header().Get("Content-Type"))
	var yamlDoc map[string]any
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &yamlDoc))
	assert.Equal(t, "3.1.0", yamlDoc["openapi"])

	w = do(t, srv, http.MethodGet, "/doc", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "/api-docs/openapi.json")
}

func TestRoutingErrors(t *testing.T) {
	srv := newTestServer(t, nil)

	w := do(t, srv, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", message(t, w))

	w = do(t, srv, http.MethodDelete, "/iban/DE44500105175407324931", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Method DELETE is not supported for this endpoint", message(t, w))
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, nil)

	w := do(t, srv, http.MethodGet, "/info/healthcheck", "")
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	do(t, srv, http.MethodGet, "/iban/DE44500105175407324931", "")
	do(t, srv, http.MethodGet, "/iban/DE44500105175407324932", "")
	do(t, srv, http.MethodPost, "/iban", `{"ibans":["NL91ABNA0417164300"]}`)

	w := do(t, srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, `ibanapi_validations_total{kind="none",outcome="valid"} 2`)
	assert.Contains(t, body, `ibanapi_validations_total{kind="checksum_mismatch",outcome="invalid"} 1`)
	assert.Contains(t, body, `ibanapi_batch_size_count 1`)
	assert.Contains(t, body, `route="/iban/{iban}"`)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetricsDisabled(t *testing.T) {
	srv := newTestServer(t, func(c *Config) { c.MetricsEnabled = false })

	w := do(t, srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, srv, http.MethodGet, "/iban/DE44500105175407324931", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiting(t *testing.T) {
	srv := newTestServer(t, func(c *Config) { c.RateLimit = 2 })

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, do(t, srv, http.MethodGet, "/info/healthcheck", "").Code)
	}
	w := do(t, srv, http.MethodGet, "/info/healthcheck", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Rate limit exceeded", message(t, w))
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, func(c *Config) {
		c.CORSEnabled = true
		c.CORSOrigins = []string{"https://bank.example"}
	})

	req := httptest.NewRequest(http.MethodOptions, "/iban", nil)
	req.Header.Set("Origin", "https://bank.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://bank.example", w.Header().Get("Access-Control-Allow-Origin"))
}
