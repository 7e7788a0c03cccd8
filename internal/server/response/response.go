// Package response provides the HTTP response helpers for the ibanapi
// server. Successful responses carry their payload as the JSON body;
// every failure uses the same {"message": "..."} shape.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/manosbatsis/ibanapi/pkg/errors"
	"github.com/manosbatsis/ibanapi/pkg/iban"
)

// InvalidIBANPrefix prefixes the message of every rejected IBAN.
const InvalidIBANPrefix = "Invalid IBAN: "

// Message is the body of every error response.
type Message struct {
	Message string `json:"message"`
}

// JSON writes v as JSON with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding errors are ignored as headers are already sent (best effort)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes v with a 200 status.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Fail writes a {"message"} body with the given status.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Message{Message: message})
}

// BadRequest writes a 400 error response.
func BadRequest(w http.ResponseWriter, message string) {
	Fail(w, http.StatusBadRequest, message)
}

// InvalidIBAN writes the 400 response for an IBAN rejected by the engine.
func InvalidIBAN(w http.ResponseWriter, err error) {
	BadRequest(w, InvalidIBANPrefix+err.Error())
}

// NotFound writes a 404 error response.
func NotFound(w http.ResponseWriter, message string) {
	Fail(w, http.StatusNotFound, message)
}

// MethodNotAllowed writes a 405 error response.
func MethodNotAllowed(w http.ResponseWriter, method string) {
	Fail(w, http.StatusMethodNotAllowed, "Method "+method+" is not supported for this endpoint")
}

// RateLimited writes a 429 error response.
func RateLimited(w http.ResponseWriter) {
	Fail(w, http.StatusTooManyRequests, "Rate limit exceeded")
}

// InternalError writes a 500 error response. The error itself is not
// exposed to the client.
func InternalError(w http.ResponseWriter, _ error) {
	Fail(w, http.StatusInternalServerError, "Internal server error")
}

// ErrorFromType maps typed errors to appropriate HTTP responses.
func ErrorFromType(w http.ResponseWriter, err error) {
	var ibanErr *iban.ValidationError
	if errors.As(err, &ibanErr) {
		InvalidIBAN(w, ibanErr)
		return
	}

	switch {
	case errors.IsNotFound(err):
		NotFound(w, err.Error())
	case errors.IsValidationError(err):
		BadRequest(w, err.Error())
	default:
		InternalError(w, err)
	}
}
