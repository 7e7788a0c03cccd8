package countries

import (
	"fmt"
	"strings"
)

// Charset is the character class a BBAN field accepts.
type Charset uint8

// Charsets, named after the SWIFT IBAN registry notation.
const (
	Numeric      Charset = iota + 1 // n: digits 0-9
	Alpha                           // a: upper-case letters A-Z
	Alphanumeric                    // c: digits or upper-case letters
)

// ParseCharset accepts the registry letters (n, a, c) or the long names.
func ParseCharset(s string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "digits", "numeric":
		return Numeric, nil
	case "a", "letters", "alpha":
		return Alpha, nil
	case "c", "alphanumeric":
		return Alphanumeric, nil
	}
	return 0, fmt.Errorf("unknown charset %q", s)
}

// String returns the registry letter.
func (c Charset) String() string {
	switch c {
	case Numeric:
		return "n"
	case Alpha:
		return "a"
	case Alphanumeric:
		return "c"
	}
	return fmt.Sprintf("Charset(%d)", uint8(c))
}

// Name returns a human-readable name for messages.
func (c Charset) Name() string {
	switch c {
	case Numeric:
		return "digits"
	case Alpha:
		return "letters"
	case Alphanumeric:
		return "alphanumeric"
	}
	return c.String()
}

// Allows reports whether b belongs to the class. Lower-case letters are
// never allowed; input is expected to be normalized.
func (c Charset) Allows(b byte) bool {
	digit := b >= '0' && b <= '9'
	upper := b >= 'A' && b <= 'Z'
	switch c {
	case Numeric:
		return digit
	case Alpha:
		return upper
	case Alphanumeric:
		return digit || upper
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (c Charset) MarshalText() ([]byte, error) {
	return []byte(c.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Charset) UnmarshalText(text []byte) error {
	parsed, err := ParseCharset(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Role is the meaning of a BBAN field.
type Role uint8

// Roles.
const (
	RoleBank Role = iota + 1
	RoleBranch
	RoleAccount
	RoleCheck
	RoleOther
)

// ParseRole accepts the role names used in the registry file.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bank", "bank_identifier":
		return RoleBank, nil
	case "branch", "branch_identifier":
		return RoleBranch, nil
	case "account", "account_number":
		return RoleAccount, nil
	case "check", "national_check_digit":
		return RoleCheck, nil
	case "other":
		return RoleOther, nil
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string {
	switch r {
	case RoleBank:
		return "bank"
	case RoleBranch:
		return "branch"
	case RoleAccount:
		return "account"
	case RoleCheck:
		return "check"
	case RoleOther:
		return "other"
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
