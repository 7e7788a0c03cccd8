package iban_test

import (
	"errors"
	"fmt"

	"github.com/manosbatsis/ibanapi/pkg/countries"
	"github.com/manosbatsis/ibanapi/pkg/iban"
)

func ExampleValidator_Validate() {
	v := iban.New(countries.Default())

	acct, err := v.Validate("GB82 WEST 1234 5698 7654 32")
	if err != nil {
		fmt.Println(err)
		return
	}
	bank, _ := acct.BankIdentifier()
	branch, _ := acct.BranchIdentifier()
	fmt.Println(acct.CountryCode(), acct.CheckDigits(), bank, branch)

	// Output: GB 82 WEST 123456
}

func ExampleValidate_error() {
	_, err := iban.Validate("DE44-00105175407324931")

	var verr *iban.ValidationError
	if errors.As(err, &verr) {
		fmt.Println(verr.Kind)
		fmt.Println("Invalid IBAN: " + verr.Error())
	}

	// Output:
	// invalid_characters
	// Invalid IBAN: invalid character '-' at position 4, expected letter or digit
}

func ExampleIBAN_Printed() {
	fmt.Println(iban.MustParse("DE44500105175407324931").Printed())
	// Output: DE44 5001 0517 5407 3249 31
}
