package iban

import (
	"strings"

	"github.com/manosbatsis/ibanapi/pkg/constants"
)

// Mask hides an IBAN for logs: GB82WEST12345698765432 -> GB82**************5432.
// Country code and check digits (first 4) and the last 4 characters stay
// visible. Inputs of eight characters or fewer are masked completely.
// Mask accepts any string, valid or not, and never panics.
func Mask(value string) string {
	r := []rune(value)
	if len(r) <= 2*constants.MaskVisible {
		return strings.Repeat("*", len(r))
	}

	first := string(r[:constants.MaskVisible])
	last := string(r[len(r)-constants.MaskVisible:])
	middle := strings.Repeat("*", len(r)-2*constants.MaskVisible)

	return first + middle + last
}
