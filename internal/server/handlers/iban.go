package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/manosbatsis/ibanapi/internal/batch"
	"github.com/manosbatsis/ibanapi/internal/server/response"
	"github.com/manosbatsis/ibanapi/pkg/constants"
	"github.com/manosbatsis/ibanapi/pkg/errors"
	"github.com/manosbatsis/ibanapi/pkg/iban"
	"github.com/manosbatsis/ibanapi/pkg/logging"
)

// HandleValidate handles GET /iban/{iban}.
// @Summary Validate an IBAN
// @Description Validates an IBAN and decomposes it into its components
// @Tags iban
// @Produce json
// @Param iban path string true "IBAN in electronic or printed form"
// @Success 200 {object} IbanInfo
// @Failure 400 {object} response.Message
// @Router /iban/{iban} [get].
func (h *Handlers) HandleValidate(w http.ResponseWriter, r *http.Request) {
	raw := pathParam(r, "iban")
	logger := logging.FromContext(r.Context())

	start := time.Now()
	acct, err := h.validator.Validate(raw)
	h.metrics.ObserveValidation(err, time.Since(start))

	if err != nil {
		logger.Debug().
			Str("iban", iban.Mask(raw)).
			Err(err).
			Msg("IBAN rejected")
		response.InvalidIBAN(w, err)
		return
	}

	logger.Debug().
		Str("iban", acct.Masked()).
		Str("country", acct.CountryCode()).
		Msg("IBAN validated")
	response.OK(w, acct.Info())
}

// HandleValidateBatch handles POST /iban.
// @Summary Validate many IBANs
// @Description Validates up to the configured maximum number of IBANs in one request
// @Tags iban
// @Accept json
// @Produce json
// @Param request body BatchRequest true "IBANs to validate"
// @Success 200 {object} BatchResponse
// @Failure 400 {object} response.Message
// @Router /iban [post].
func (h *Handlers) HandleValidateBatch(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req BatchRequest
	if err := dec.Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body: "+err.Error())
		return
	}

	if err := h.checkBatch(req); err != nil {
		response.ErrorFromType(w, err)
		return
	}
	h.metrics.ObserveBatch(len(req.IBANs))

	results, err := batch.Run(r.Context(), h.validator, req.IBANs, batch.Options{
		Concurrency: h.concurrency,
		Observe: func(res batch.Result) {
			h.metrics.CountValidation(res.Err)
		},
	})
	if err != nil {
		// Only a canceled request context gets here; the client is gone.
		logger.Warn().Err(err).Int("size", len(req.IBANs)).Msg("Batch validation aborted")
		response.InternalError(w, err)
		return
	}

	resp := BatchResponse{Results: make([]BatchResult, len(results))}
	for i, res := range results {
		resp.Results[i] = newBatchResult(res)
	}
	resp.Valid, resp.Invalid = batch.Count(results)

	logger.Debug().
		Int("size", len(results)).
		Int("valid", resp.Valid).
		Int("invalid", resp.Invalid).
		Msg("Batch validated")
	response.OK(w, resp)
}

func (h *Handlers) checkBatch(req BatchRequest) error {
	switch n := len(req.IBANs); {
	case n == 0:
		return errors.NewValidationError("ibans", n, "at least one IBAN is required")
	case n > h.maxBatchSize:
		return errors.NewValidationError("ibans", n, fmt.Sprintf("too many IBANs: %d exceeds the limit of %d", n, h.maxBatchSize))
	}
	return nil
}

func newBatchResult(res batch.Result) BatchResult {
	out := res.Outcome()
	if !out.Valid {
		out.Message = response.InvalidIBANPrefix + out.Message
	}
	return out
}

// pathParam returns a chi URL parameter with percent-encoding removed. chi
// matches against the escaped path when one exists, so "DE44%205001" would
// otherwise arrive still encoded.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}
