package iban_test

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manosbatsis/ibanapi/pkg/iban"
)

func TestInfo(t *testing.T) {
	info := iban.MustParse("GB82 WEST 1234 5698 7654 32").Info()

	assert.Equal(t, "GB82WEST12345698765432", info.IBAN)
	assert.Equal(t, "WEST12345698765432", info.BBAN)
	assert.Equal(t, 82, info.CheckDigits)
	assert.Equal(t, "GB", info.CountryCode)
	require.NotNil(t, info.BankIdentifier)
	assert.Equal(t, "WEST", *info.BankIdentifier)
	require.NotNil(t, info.BranchIdentifier)
	assert.Equal(t, "123456", *info.BranchIdentifier)
}

func TestInfoAbsentIdentifiersAreNull(t *testing.T) {
	info := iban.MustParse("DE44500105175407324931").Info()

	data, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{"iban":"DE44500105175407324931","bban":"500105175407324931","check_digits":44,"bank_identifier":"50010517","branch_identifier":null,"country_code":"DE"}`, string(data))

	data, err = yaml.Marshal(iban.MustParse("XX98500105175407324931").Info())
	require.NoError(t, err)
	assert.Contains(t, string(data), "bank_identifier: null")
	assert.Contains(t, string(data), "country_code: XX")
}
