// Package embedded holds the data files compiled into the ibanapi binary.
package embedded

import (
	_ "embed"
)

// CountriesFile is the name under which the embedded registry is reported
// in load errors.
const CountriesFile = "countries.yaml"

// Countries is the IBAN country format registry in YAML form.
//
//go:embed countries.yaml
var Countries []byte
