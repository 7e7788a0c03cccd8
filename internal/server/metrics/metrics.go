// Package metrics holds the Prometheus instruments of the HTTP server.
// Instruments live on a private registry so several servers (and tests)
// can coexist in one process.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/manosbatsis/ibanapi/pkg/iban"
)

const namespace = "ibanapi"

// Metrics provides observability for IBAN validation and the HTTP layer.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Validation outcomes by result and failure kind
	Validations *prometheus.CounterVec

	// Time spent in the validation pipeline
	ValidationDuration prometheus.Histogram

	// Number of IBANs per batch request
	BatchSize prometheus.Histogram

	// HTTP requests by method, route pattern and status
	Requests *prometheus.CounterVec

	// HTTP latency by method and route pattern
	RequestDuration *prometheus.HistogramVec
}

// New creates a Metrics instance with its own registry, including the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "IBAN validations by outcome and failure kind",
		}, []string{"outcome", "kind"}), // outcome: valid|invalid, kind: none|invalid_length|...

		ValidationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "validation_duration_seconds",
			Help:      "Duration of a single IBAN validation",
			Buckets:   []float64{0.000001, 0.0000025, 0.000005, 0.00001, 0.000025, 0.00005, 0.0001, 0.001},
		}),

		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of IBANs submitted per batch request",
			Buckets:   []float64{1, 5, 10, 50, 100, 250, 500, 1000},
		}),

		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Registry returns the registry the instruments are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveValidation records the outcome and duration of one validation.
func (m *Metrics) ObserveValidation(err error, d time.Duration) {
	if m == nil {
		return
	}
	m.CountValidation(err)
	m.ValidationDuration.Observe(d.Seconds())
}

// CountValidation records the outcome of one validation without timing it.
// Used for batch items.
func (m *Metrics) CountValidation(err error) {
	if m == nil {
		return
	}
	outcome, kind := "valid", "none"
	if err != nil {
		outcome, kind = "invalid", "unknown"
		var verr *iban.ValidationError
		if errors.As(err, &verr) {
			kind = verr.Kind.String()
		}
	}
	m.Validations.WithLabelValues(outcome, kind).Inc()
}

// ObserveBatch records the size of a batch request.
func (m *Metrics) ObserveBatch(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request counts and latency. It must run inside a chi
// router so the matched route pattern is known once the request completes;
// unmatched requests are grouped under "unmatched".
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		m.Requests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
