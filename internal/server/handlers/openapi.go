package handlers

import (
	"net/http"

	"github.com/manosbatsis/ibanapi/internal/embedded/openapi"
)

// HandleOpenAPIJSON serves the embedded OpenAPI 3.1 document in JSON format.
// @Summary Get OpenAPI document (JSON)
// @Tags meta
// @Produce json
// @Success 200 {object} object "OpenAPI 3.1 document"
// @Router /api-docs/openapi.json [get].
func (h *Handlers) HandleOpenAPIJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600") // Cache for 1 hour
	_, _ = w.Write(openapi.SpecJSON)
}

// HandleOpenAPIYAML serves the embedded OpenAPI 3.1 document in YAML format.
// @Summary Get OpenAPI document (YAML)
// @Tags meta
// @Produce application/x-yaml
// @Success 200 {string} string "OpenAPI 3.1 document"
// @Router /api-docs/openapi.yaml [get].
func (h *Handlers) HandleOpenAPIYAML(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/x-yaml")
	w.Header().Set("Cache-Control", "public, max-age=3600") // Cache for 1 hour
	_, _ = w.Write(openapi.SpecYAML)
}

// HandleDocs serves the API reference page, which renders
// /api-docs/openapi.json in the browser.
// @Summary API reference
// @Tags meta
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /doc [get].
func (h *Handlers) HandleDocs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(openapi.DocsHTML)
}
