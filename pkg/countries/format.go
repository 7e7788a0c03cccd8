package countries

import (
	"strconv"
	"strings"
)

// Field is one fixed-width segment of a BBAN.
type Field struct {
	Length  int     `json:"length" yaml:"length"`
	Charset Charset `json:"charset" yaml:"charset"`
	Role    Role    `json:"role" yaml:"role"`
}

// Range is a half-open [Start, End) span of BBAN offsets.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

// Format is the IBAN layout of one country. Values are immutable once
// built by the registry and may be shared freely.
type Format struct {
	code   string
	name   string
	length int
	fields []Field
	bank   *Range
	branch *Range
}

// Code returns the ISO 3166-1 alpha-2 country code.
func (f Format) Code() string { return f.code }

// Name returns the country name.
func (f Format) Name() string { return f.name }

// Length returns the total IBAN length for the country.
func (f Format) Length() int { return f.length }

// BBANLength returns the length of the BBAN part.
func (f Format) BBANLength() int { return f.length - 4 }

// NumFields returns the number of BBAN fields.
func (f Format) NumFields() int { return len(f.fields) }

// Field returns the i-th BBAN field.
func (f Format) Field(i int) Field { return f.fields[i] }

// Fields returns a copy of the BBAN field list in declared order.
func (f Format) Fields() []Field {
	out := make([]Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// BankIdentifierRange returns where the bank identifier sits in the BBAN.
func (f Format) BankIdentifierRange() (Range, bool) {
	if f.bank == nil {
		return Range{}, false
	}
	return *f.bank, true
}

// BranchIdentifierRange returns where the branch identifier sits in the BBAN.
func (f Format) BranchIdentifierRange() (Range, bool) {
	if f.branch == nil {
		return Range{}, false
	}
	return *f.branch, true
}

// Pattern renders the BBAN layout in SWIFT registry notation, e.g. "8!n10!n".
func (f Format) Pattern() string {
	var b strings.Builder
	for _, fld := range f.fields {
		b.WriteString(strconv.Itoa(fld.Length))
		b.WriteByte('!')
		b.WriteString(fld.Charset.String())
	}
	return b.String()
}

// IsZero reports whether f is the zero Format.
func (f Format) IsZero() bool { return f.code == "" }

// newFormat computes the derived identifier ranges. Inputs are assumed to
// have passed the registry checks.
func newFormat(code, name string, length int, fields []Field) Format {
	f := Format{code: code, name: name, length: length, fields: fields}
	offset := 0
	for _, fld := range fields {
		r := Range{Start: offset, End: offset + fld.Length}
		switch fld.Role {
		case RoleBank:
			f.bank = &r
		case RoleBranch:
			f.branch = &r
		}
		offset = r.End
	}
	return f
}
