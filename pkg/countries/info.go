package countries

// Info is the serializable description of a Format. Absent identifier
// ranges are nil and serialize as null.
type Info struct {
	CountryCode      string  `json:"country_code" yaml:"country_code"`
	Name             string  `json:"name" yaml:"name"`
	Length           int     `json:"length" yaml:"length"`
	BBANLength       int     `json:"bban_length" yaml:"bban_length"`
	Pattern          string  `json:"pattern" yaml:"pattern"`
	BankIdentifier   *Range  `json:"bank_identifier" yaml:"bank_identifier"`
	BranchIdentifier *Range  `json:"branch_identifier" yaml:"branch_identifier"`
	Fields           []Field `json:"fields" yaml:"fields"`
}

// Info returns the serializable description of f.
func (f Format) Info() Info {
	info := Info{
		CountryCode: f.code,
		Name:        f.name,
		Length:      f.length,
		BBANLength:  f.BBANLength(),
		Pattern:     f.Pattern(),
		Fields:      f.Fields(),
	}
	if r, ok := f.BankIdentifierRange(); ok {
		info.BankIdentifier = &r
	}
	if r, ok := f.BranchIdentifierRange(); ok {
		info.BranchIdentifier = &r
	}
	return info
}
