package handlers

import (
	"github.com/rs/zerolog"

	"github.com/manosbatsis/ibanapi/cmd/application"
	"github.com/manosbatsis/ibanapi/internal/server/metrics"
	"github.com/manosbatsis/ibanapi/pkg/constants"
	"github.com/manosbatsis/ibanapi/pkg/iban"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	app          application.Application
	validator    *iban.Validator
	metrics      *metrics.Metrics
	logger       *zerolog.Logger
	maxBatchSize int
	concurrency  int
}

// Options configure the batch endpoint.
type Options struct {
	MaxBatchSize int // zero selects constants.MaxBatchSize
	Concurrency  int // zero selects constants.DefaultConcurrency
}

// New creates a new Handlers instance. m may be nil when metrics are
// disabled.
func New(app application.Application, m *metrics.Metrics, logger *zerolog.Logger, opts Options) *Handlers {
	if opts.MaxBatchSize <= 0 {
		opts.MaxBatchSize = constants.MaxBatchSize
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = constants.DefaultConcurrency
	}
	return &Handlers{
		app:          app,
		validator:    app.Validator(),
		metrics:      m,
		logger:       logger,
		maxBatchSize: opts.MaxBatchSize,
		concurrency:  opts.Concurrency,
	}
}
