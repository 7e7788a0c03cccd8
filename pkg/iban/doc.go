// Package iban validates International Bank Account Numbers (ISO 13616)
// and splits them into their parts.
//
// Validation runs as a fixed pipeline:
//
//	normalize -> lexical shape -> mod-97 checksum -> registry lookup -> BBAN decomposition
//
// The first failing stage decides the outcome, and the caller receives a
// single *ValidationError tagged with one Kind. A country missing from the
// registry is not an error: the checksum alone decides validity and the
// bank and branch identifiers are reported as absent.
//
// Every function here is pure. The only shared state is the read-only
// country registry, so a Validator may be used from any number of
// goroutines.
//
//	v := iban.New(countries.Default())
//	acct, err := v.Validate("DE44 5001 0517 5407 3249 31")
//	if err != nil {
//		var verr *iban.ValidationError
//		errors.As(err, &verr) // verr.Kind == iban.ChecksumMismatch, ...
//	}
//	bank, _ := acct.BankIdentifier() // "50010517"
package iban
