package iban

import (
	"strconv"
	"strings"

	"github.com/manosbatsis/ibanapi/pkg/constants"
)

// IBAN is a validated account number. The zero value is not valid; obtain
// one from Validate.
type IBAN struct {
	value   string
	country string
	known   bool
	parts   BBANParts
}

// String returns the electronic form.
func (i IBAN) String() string { return i.value }

// Electronic returns the IBAN without spaces, e.g. "DE44500105175407324931".
func (i IBAN) Electronic() string { return i.value }

// Printed returns the IBAN in groups of four, e.g. "DE44 5001 0517 5407 3249 31".
func (i IBAN) Printed() string {
	var b strings.Builder
	for j := 0; j < len(i.value); j += constants.PrintGroupSize {
		if j > 0 {
			b.WriteByte(' ')
		}
		end := min(j+constants.PrintGroupSize, len(i.value))
		b.WriteString(i.value[j:end])
	}
	return b.String()
}

// Masked returns the IBAN with all but the first and last four characters hidden.
func (i IBAN) Masked() string { return Mask(i.value) }

// CountryCode returns the two-letter country code.
func (i IBAN) CountryCode() string { return Normalized(i.value).CountryCode() }

// CountryName returns the registry name of the country, or "" when the
// country is not in the registry.
func (i IBAN) CountryName() string { return i.country }

// KnownCountry reports whether the country was found in the registry and
// the BBAN was decomposed.
func (i IBAN) KnownCountry() bool { return i.known }

// CheckDigits returns the check digits as a number (0-99).
func (i IBAN) CheckDigits() int {
	d, _ := strconv.Atoi(Normalized(i.value).CheckDigits())
	return d
}

// BBAN returns the national part.
func (i IBAN) BBAN() string { return Normalized(i.value).BBAN() }

// BankIdentifier returns the bank identifier when the country format has one.
func (i IBAN) BankIdentifier() (string, bool) {
	if i.parts.BankIdentifier == nil {
		return "", false
	}
	return *i.parts.BankIdentifier, true
}

// BranchIdentifier returns the branch identifier when the country format has one.
func (i IBAN) BranchIdentifier() (string, bool) {
	if i.parts.BranchIdentifier == nil {
		return "", false
	}
	return *i.parts.BranchIdentifier, true
}

// Segments returns every BBAN field in order. It is empty for unknown countries.
func (i IBAN) Segments() []Segment {
	out := make([]Segment, len(i.parts.Fields))
	copy(out, i.parts.Fields)
	return out
}

// MarshalText implements encoding.TextMarshaler using the electronic form.
func (i IBAN) MarshalText() ([]byte, error) {
	return []byte(i.value), nil
}
