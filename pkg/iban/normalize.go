package iban

import (
	"strings"
	"unicode"

	"github.com/manosbatsis/ibanapi/pkg/constants"
)

// Normalized is an IBAN in electronic form: no whitespace, upper case.
// Values returned by ValidateShape also satisfy the lexical rules, so the
// accessors below are safe to call on them.
type Normalized string

// Normalize removes all whitespace and upper-cases ASCII letters. Other
// characters are kept as they are so the lexical stage can report them.
// Normalize is idempotent.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case unicode.IsSpace(r):
			continue
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CountryCode returns the first two characters.
func (n Normalized) CountryCode() string {
	return string(n[:constants.CountryCodeLength])
}

// CheckDigits returns characters three and four.
func (n Normalized) CheckDigits() string {
	return string(n[constants.CountryCodeLength:constants.HeaderLength])
}

// BBAN returns everything after the check digits.
func (n Normalized) BBAN() string {
	return string(n[constants.HeaderLength:])
}
