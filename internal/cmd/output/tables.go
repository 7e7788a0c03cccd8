package output

import (
	"fmt"
	"strconv"

	"github.com/manosbatsis/ibanapi/internal/batch"
	"github.com/manosbatsis/ibanapi/internal/cmd/emoji"
	"github.com/manosbatsis/ibanapi/pkg/countries"
	"github.com/manosbatsis/ibanapi/pkg/iban"
)

// Cell markers for the Valid column and absent values.
const (
	markValid   = emoji.Success
	markInvalid = emoji.Error
	none        = emoji.Optional
)

// ResultsToTableData converts validation results to table format. Valid
// IBANs are shown in printed form; wide adds the BBAN, check digits and the
// failure kind.
func ResultsToTableData(results []batch.Result, wide bool) Data {
	headers := []string{"Input", "Valid", "IBAN", "Country", "Bank", "Branch", "Error"}
	align := []Align{AlignLeft, AlignCenter, AlignLeft, AlignCenter, AlignLeft, AlignLeft, AlignLeft}
	if wide {
		headers = append(headers, "BBAN", "Check Digits", "Kind")
		align = append(align, AlignLeft, AlignRight, AlignLeft)
	}

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		var row []string
		if res.Valid() {
			row = []string{
				res.Input,
				markValid,
				res.IBAN.Printed(),
				countryCell(res.IBAN),
				optional(res.IBAN.BankIdentifier()),
				optional(res.IBAN.BranchIdentifier()),
				none,
			}
			if wide {
				row = append(row, res.IBAN.BBAN(), twoDigits(res.IBAN.CheckDigits()), none)
			}
		} else {
			out := res.Outcome()
			row = []string{res.Input, markInvalid, none, none, none, none, out.Message}
			if wide {
				row = append(row, none, none, out.Kind)
			}
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// CountriesToTableData converts registry formats to table format. Wide adds
// the BBAN length and identifier ranges.
func CountriesToTableData(formats []countries.Format, wide bool) Data {
	headers := []string{"Code", "Name", "Length", "Pattern"}
	align := []Align{AlignLeft, AlignLeft, AlignRight, AlignLeft}
	if wide {
		headers = append(headers, "BBAN Length", "Bank", "Branch")
		align = append(align, AlignRight, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(formats))
	for _, f := range formats {
		row := []string{f.Code(), f.Name(), strconv.Itoa(f.Length()), f.Pattern()}
		if wide {
			row = append(row,
				strconv.Itoa(f.BBANLength()),
				rangeCell(f.BankIdentifierRange()),
				rangeCell(f.BranchIdentifierRange()),
			)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// CountryToTableData renders one format as a property table followed by
// its field list.
func CountryToTableData(f countries.Format) []Data {
	props := Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{Title("country_code"), f.Code()},
			{Title("name"), f.Name()},
			{Title("length"), strconv.Itoa(f.Length())},
			{Title("bban_length"), strconv.Itoa(f.BBANLength())},
			{Title("pattern"), f.Pattern()},
			{Title("bank_identifier"), rangeCell(f.BankIdentifierRange())},
			{Title("branch_identifier"), rangeCell(f.BranchIdentifierRange())},
		},
	}

	fields := Data{
		Headers:         []string{"#", "Role", "Length", "Charset", "Offset"},
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignRight, AlignLeft, AlignLeft},
	}
	offset := 0
	for i, fld := range f.Fields() {
		fields.Rows = append(fields.Rows, []string{
			strconv.Itoa(i + 1),
			fld.Role.String(),
			strconv.Itoa(fld.Length),
			fld.Charset.Name(),
			spanCell(offset, offset+fld.Length),
		})
		offset += fld.Length
	}

	return []Data{props, fields}
}

func countryCell(acct iban.IBAN) string {
	if name := acct.CountryName(); name != "" {
		return acct.CountryCode() + " (" + name + ")"
	}
	return acct.CountryCode()
}

func optional(v string, ok bool) string {
	if !ok {
		return none
	}
	return v
}

func rangeCell(r countries.Range, ok bool) string {
	if !ok {
		return none
	}
	return spanCell(r.Start, r.End)
}

func spanCell(start, end int) string {
	return strconv.Itoa(start) + "-" + strconv.Itoa(end)
}

func twoDigits(n int) string {
	return fmt.Sprintf("%02d", n)
}
