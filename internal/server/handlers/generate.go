// Package handlers provides HTTP request handlers for the ibanapi server.
//
// Handlers are organized by domain:
//
//   - iban.go: single and batch IBAN validation
//   - countries.go: country format registry listing and lookup
//   - health.go: health check and version information
//   - openapi.go: OpenAPI document and API reference page
//
// All handlers follow a consistent pattern:
//
//  1. Extract and validate input
//  2. Call the IBAN engine or registry
//  3. Record metrics
//  4. Transform the result into its wire model (models.go)
//  5. Write the response through the response package
//
// Handlers receive all dependencies through the Handlers struct.
package handlers

//go:generate gomarkdoc --output README.md .
