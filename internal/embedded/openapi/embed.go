// Package openapi embeds the OpenAPI 3.1 document of the ibanapi HTTP API
// and the HTML page that renders it. The files are served by the API
// server at runtime.
package openapi

import _ "embed"

// SpecJSON contains the OpenAPI 3.1 document in JSON format.
// Served at: GET /api-docs/openapi.json
//
//go:embed openapi.json
var SpecJSON []byte

// SpecYAML contains the OpenAPI 3.1 document in YAML format.
// Served at: GET /api-docs/openapi.yaml
//
//go:embed openapi.yaml
var SpecYAML []byte

// DocsHTML is the API reference page.
// Served at: GET /doc
//
//go:embed docs.html
var DocsHTML []byte
