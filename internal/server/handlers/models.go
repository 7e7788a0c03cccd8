package handlers

import (
	"github.com/manosbatsis/ibanapi/internal/batch"
	"github.com/manosbatsis/ibanapi/pkg/countries"
	"github.com/manosbatsis/ibanapi/pkg/iban"
)

// IbanInfo is the decomposition of a valid IBAN.
type IbanInfo = iban.Info

// BatchRequest is the body of POST /iban.
type BatchRequest struct {
	IBANs []string `json:"ibans"`
}

// BatchResult is the outcome for one submitted IBAN.
type BatchResult = batch.Outcome

// BatchResponse is the body returned by POST /iban.
type BatchResponse struct {
	Results []BatchResult `json:"results"`
	Valid   int           `json:"valid"`
	Invalid int           `json:"invalid"`
}

// CountryInfo describes one country's IBAN format.
type CountryInfo = countries.Info

// CountryList is the body returned by GET /countries.
type CountryList struct {
	Countries []CountryInfo `json:"countries"`
	Count     int           `json:"count"`
}

// Health is the body returned by GET /info/healthcheck.
type Health struct {
	Status string `json:"status"`
}

// VersionInfo is the body returned by GET /info/version.
type VersionInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	BuiltBy   string `json:"built_by"`
	GoVersion string `json:"go_version"`
	OSArch    string `json:"os_arch"`
	Uptime    string `json:"uptime,omitempty"`
}
