package iban

import (
	"fmt"

	"github.com/manosbatsis/ibanapi/pkg/errors"
)

// Sentinels matched by errors.Is against any error this package returns.
var (
	ErrInvalidCharacters = errors.New("invalid characters")
	ErrInvalidLength     = errors.New("invalid length")
	ErrChecksumMismatch  = errors.New("checksum mismatch")
	ErrMalformedBBAN     = errors.New("malformed BBAN")
)

// Kind classifies a validation failure.
type Kind int

// Failure kinds, one per pipeline outcome.
const (
	InvalidCharacters Kind = iota + 1
	InvalidLength
	ChecksumMismatch
	MalformedBBAN
)

func (k Kind) String() string {
	switch k {
	case InvalidCharacters:
		return "invalid_characters"
	case InvalidLength:
		return "invalid_length"
	case ChecksumMismatch:
		return "checksum_mismatch"
	case MalformedBBAN:
		return "malformed_bban"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k Kind) sentinel() error {
	switch k {
	case InvalidCharacters:
		return ErrInvalidCharacters
	case InvalidLength:
		return ErrInvalidLength
	case ChecksumMismatch:
		return ErrChecksumMismatch
	case MalformedBBAN:
		return ErrMalformedBBAN
	}
	return nil
}

// Stage names the pipeline step that failed.
type Stage int

// Pipeline stages.
const (
	StageLexical Stage = iota + 1
	StageChecksum
	StageDecompose
)

func (s Stage) String() string {
	switch s {
	case StageLexical:
		return "lexical"
	case StageChecksum:
		return "checksum"
	case StageDecompose:
		return "decompose"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// ValidationError is the single error type returned by Validate. Err holds
// the stage-specific detail (*LexicalError, *ChecksumError or
// *DecomposeError). Messages never contain the input itself.
type ValidationError struct {
	Kind  Kind
	Stage Stage
	Err   error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

// Unwrap implements errors.Unwrap
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support. Every validation failure is also an
// invalid-input error.
func (e *ValidationError) Is(target error) bool {
	return target == errors.ErrInvalidInput || target == e.Kind.sentinel()
}

// LexicalReason says why the lexical stage rejected an input.
type LexicalReason int

// Lexical rejection reasons.
const (
	TooShortToParse LexicalReason = iota + 1
	LengthMismatch
	BadCharacter
)

func (r LexicalReason) String() string {
	switch r {
	case TooShortToParse:
		return "too_short"
	case LengthMismatch:
		return "invalid_length"
	case BadCharacter:
		return "invalid_characters"
	}
	return fmt.Sprintf("LexicalReason(%d)", int(r))
}

// LexicalError reports a shape violation. Position is a zero-based rune
// offset into the normalized input.
type LexicalError struct {
	Reason   LexicalReason
	Position int
	Char     rune
	Want     string // character class expected at Position
	Country  string // set when the length rule came from the registry
	Expected int
	Actual   int
}

// Error implements the error interface
func (e *LexicalError) Error() string {
	switch e.Reason {
	case TooShortToParse:
		return fmt.Sprintf("too short to parse: got %d characters, need at least %d", e.Actual, e.Expected)
	case LengthMismatch:
		if e.Country != "" {
			return fmt.Sprintf("invalid length for %s: expected %d characters, got %d", e.Country, e.Expected, e.Actual)
		}
		return fmt.Sprintf("invalid length: expected at most %d characters, got %d", e.Expected, e.Actual)
	default:
		return fmt.Sprintf("invalid character %q at position %d, expected %s", e.Char, e.Position, e.Want)
	}
}

// Is implements errors.Is support
func (e *LexicalError) Is(target error) bool {
	if e.Reason == BadCharacter {
		return target == ErrInvalidCharacters
	}
	return target == ErrInvalidLength
}

// kind maps the lexical reason onto the public taxonomy.
func (e *LexicalError) kind() Kind {
	if e.Reason == BadCharacter {
		return InvalidCharacters
	}
	return InvalidLength
}

// ChecksumError reports a failed mod-97 check. Remainder is the computed
// value (1 would have been valid), or -1 when the input held characters
// outside the IBAN alphabet.
type ChecksumError struct {
	Remainder int
}

// Error implements the error interface
func (e *ChecksumError) Error() string {
	if e.Remainder < 0 {
		return "checksum mismatch: input is not a normalized IBAN"
	}
	return fmt.Sprintf("checksum mismatch: mod-97 remainder is %d, expected 1", e.Remainder)
}

// Is implements errors.Is support
func (e *ChecksumError) Is(target error) bool {
	return target == ErrChecksumMismatch
}

// DecomposeError reports a BBAN that does not fit its country format.
// Field is the index of the offending field, or -1 for a length mismatch.
type DecomposeError struct {
	Country  string
	Field    int
	Position int
	Char     rune
	Want     string
	Expected int
	Actual   int
}

// Error implements the error interface
func (e *DecomposeError) Error() string {
	if e.Field < 0 {
		return fmt.Sprintf("malformed BBAN for %s: expected %d characters, got %d", e.Country, e.Expected, e.Actual)
	}
	return fmt.Sprintf("malformed BBAN for %s: field %d has invalid character %q at position %d, expected %s",
		e.Country, e.Field, e.Char, e.Position, e.Want)
}

// Is implements errors.Is support
func (e *DecomposeError) Is(target error) bool {
	return target == ErrMalformedBBAN
}
