package iban

import (
	"github.com/manosbatsis/ibanapi/pkg/constants"
)

// VerifyChecksum applies ISO 7064 MOD 97-10 to the whole IBAN: the first
// four characters move to the end, letters expand to two digits (A=10 ...
// Z=35), and the resulting number must leave remainder 1 modulo 97.
//
// The number is never materialized. A running remainder is folded one
// digit at a time, so 34 letters (68 digits) need no big integers.
func VerifyChecksum(n Normalized) error {
	s := string(n)
	if len(s) < constants.HeaderLength {
		return &ChecksumError{Remainder: -1}
	}
	r, ok := mod97(s[constants.HeaderLength:], s[:constants.HeaderLength])
	if !ok {
		return &ChecksumError{Remainder: -1}
	}
	if r != constants.ChecksumValidRemainder {
		return &ChecksumError{Remainder: r}
	}
	return nil
}

// CheckDigitsFor computes the two check digits an IBAN with the given
// country code and BBAN must carry. country and bban must already be
// upper case.
func CheckDigitsFor(country, bban string) (int, error) {
	if len(country) != constants.CountryCodeLength || !isUpper(rune(country[0])) || !isUpper(rune(country[1])) {
		return 0, &LexicalError{Reason: BadCharacter, Position: 0, Char: firstRune(country), Want: "letter"}
	}
	r, ok := mod97(bban, country+"00")
	if !ok {
		return 0, &ChecksumError{Remainder: -1}
	}
	return constants.ChecksumModulus + 1 - r, nil
}

// mod97 folds the digits of parts, in order, into a remainder modulo 97.
// ok is false when a character is outside 0-9 and A-Z.
func mod97(parts ...string) (r int, ok bool) {
	for _, p := range parts {
		for i := 0; i < len(p); i++ {
			c := p[i]
			switch {
			case c >= '0' && c <= '9':
				r = (r*10 + int(c-'0')) % constants.ChecksumModulus
			case c >= 'A' && c <= 'Z':
				v := int(c-'A') + 10
				r = (r*100 + v) % constants.ChecksumModulus
			default:
				return 0, false
			}
		}
	}
	return r, true
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
