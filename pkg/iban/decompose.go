package iban

import (
	"unicode/utf8"

	"github.com/manosbatsis/ibanapi/pkg/countries"
)

// Segment is one BBAN field as found in a concrete account number.
type Segment struct {
	Role    countries.Role    `json:"role" yaml:"role"`
	Charset countries.Charset `json:"charset" yaml:"charset"`
	Start   int               `json:"start" yaml:"start"`
	Value   string            `json:"value" yaml:"value"`
}

// BBANParts is the result of splitting a BBAN along its country format.
// Concatenating the Value of every segment in order gives back the BBAN.
type BBANParts struct {
	BankIdentifier   *string
	BranchIdentifier *string
	Fields           []Segment
}

// Decompose walks the fields of f in declared order, consuming exactly
// field.Length characters for each and checking them against the field's
// charset. Positions in errors are offsets into bban.
//
// A failure here means the registry and the lexical stage disagree; inputs
// that passed ValidateShape for the same country never fail on length.
func Decompose(bban string, f countries.Format) (BBANParts, error) {
	if len(bban) != f.BBANLength() {
		return BBANParts{}, &DecomposeError{
			Country:  f.Code(),
			Field:    -1,
			Expected: f.BBANLength(),
			Actual:   len(bban),
		}
	}

	parts := BBANParts{Fields: make([]Segment, 0, f.NumFields())}
	offset := 0
	for i := 0; i < f.NumFields(); i++ {
		fld := f.Field(i)
		value := bban[offset : offset+fld.Length]
		for j := 0; j < len(value); j++ {
			if !fld.Charset.Allows(value[j]) {
				ch, _ := utf8.DecodeRuneInString(value[j:])
				return BBANParts{}, &DecomposeError{
					Country:  f.Code(),
					Field:    i,
					Position: offset + j,
					Char:     ch,
					Want:     fld.Charset.Name(),
				}
			}
		}

		seg := Segment{Role: fld.Role, Charset: fld.Charset, Start: offset, Value: value}
		parts.Fields = append(parts.Fields, seg)
		switch fld.Role {
		case countries.RoleBank:
			parts.BankIdentifier = &seg.Value
		case countries.RoleBranch:
			parts.BranchIdentifier = &seg.Value
		}
		offset += fld.Length
	}
	return parts, nil
}
