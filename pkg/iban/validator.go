package iban

import (
	"github.com/manosbatsis/ibanapi/pkg/countries"
)

// Validator runs the validation pipeline against one country registry.
// It holds no other state and is safe for concurrent use.
type Validator struct {
	registry *countries.Registry
}

// New returns a Validator bound to reg. A nil reg selects countries.Default().
func New(reg *countries.Registry) *Validator {
	if reg == nil {
		reg = countries.Default()
	}
	return &Validator{registry: reg}
}

// Registry returns the registry the validator consults.
func (v *Validator) Registry() *countries.Registry {
	return v.registry
}

// Validate normalizes raw and runs the full pipeline. On failure it
// returns a *ValidationError for the first stage that rejected the input.
func (v *Validator) Validate(raw string) (IBAN, error) {
	n, err := v.ValidateShape(raw)
	if err != nil {
		lexErr := err.(*LexicalError)
		return IBAN{}, &ValidationError{Kind: lexErr.kind(), Stage: StageLexical, Err: lexErr}
	}

	if err := VerifyChecksum(n); err != nil {
		return IBAN{}, &ValidationError{Kind: ChecksumMismatch, Stage: StageChecksum, Err: err}
	}

	f, ok := v.registry.Lookup(n.CountryCode())
	if !ok {
		return IBAN{value: string(n)}, nil
	}

	parts, err := Decompose(n.BBAN(), f)
	if err != nil {
		return IBAN{}, &ValidationError{Kind: MalformedBBAN, Stage: StageDecompose, Err: err}
	}
	return IBAN{value: string(n), country: f.Name(), known: true, parts: parts}, nil
}

var defaultValidator = New(nil)

// Validate runs the pipeline against the embedded registry.
func Validate(raw string) (IBAN, error) {
	return defaultValidator.Validate(raw)
}

// MustParse is like Validate but panics on error. It is meant for
// constants in tests and examples.
func MustParse(raw string) IBAN {
	i, err := Validate(raw)
	if err != nil {
		panic("iban: MustParse: " + err.Error())
	}
	return i
}
