package iban

// Info is the serializable decomposition of a validated IBAN. Absent
// identifiers are nil and serialize as null.
type Info struct {
	IBAN             string  `json:"iban" yaml:"iban"`
	BBAN             string  `json:"bban" yaml:"bban"`
	CheckDigits      int     `json:"check_digits" yaml:"check_digits"`
	BankIdentifier   *string `json:"bank_identifier" yaml:"bank_identifier"`
	BranchIdentifier *string `json:"branch_identifier" yaml:"branch_identifier"`
	CountryCode      string  `json:"country_code" yaml:"country_code"`
}

// Info returns the decomposition of i.
func (i IBAN) Info() Info {
	info := Info{
		IBAN:        i.String(),
		BBAN:        i.BBAN(),
		CheckDigits: i.CheckDigits(),
		CountryCode: i.CountryCode(),
	}
	if bank, ok := i.BankIdentifier(); ok {
		info.BankIdentifier = &bank
	}
	if branch, ok := i.BranchIdentifier(); ok {
		info.BranchIdentifier = &branch
	}
	return info
}
