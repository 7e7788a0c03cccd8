package iban

import (
	"github.com/manosbatsis/ibanapi/pkg/constants"
)

// ValidateShape normalizes raw and checks it against the ISO 13616 shape:
// length bounds, a two-letter country code, two check digits and an
// alphanumeric BBAN. When the country is in the registry the total length
// must also match it. The checksum is not examined.
func (v *Validator) ValidateShape(raw string) (Normalized, error) {
	n := Normalize(raw)
	runes := []rune(n)

	if len(runes) < constants.MinIBANLength {
		return "", &LexicalError{Reason: TooShortToParse, Expected: constants.MinIBANLength, Actual: len(runes)}
	}
	if len(runes) > constants.MaxIBANLength {
		return "", &LexicalError{Reason: LengthMismatch, Expected: constants.MaxIBANLength, Actual: len(runes)}
	}

	for i, r := range runes {
		var ok bool
		var want string
		switch {
		case i < constants.CountryCodeLength:
			ok, want = isUpper(r), "letter"
		case i < constants.HeaderLength:
			ok, want = isDigit(r), "digit"
		default:
			ok, want = isUpper(r) || isDigit(r), "letter or digit"
		}
		if !ok {
			return "", &LexicalError{Reason: BadCharacter, Position: i, Char: r, Want: want}
		}
	}

	// Only ASCII remains, so byte and rune offsets agree from here on.
	norm := Normalized(n)
	if f, ok := v.registry.Lookup(norm.CountryCode()); ok && f.Length() != len(n) {
		return "", &LexicalError{
			Reason:   LengthMismatch,
			Country:  f.Code(),
			Expected: f.Length(),
			Actual:   len(n),
		}
	}
	return norm, nil
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
