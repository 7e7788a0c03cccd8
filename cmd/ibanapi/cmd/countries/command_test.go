package countries

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manosbatsis/ibanapi/cmd/application"
	pkgcountries "github.com/manosbatsis/ibanapi/pkg/countries"
	"github.com/manosbatsis/ibanapi/pkg/errors"
)

func execute(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(&application.Mock{
		OutputFormatFunc: func() string { return format },
	})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCountriesJSON(t *testing.T) {
	out, err := execute(t, "json")
	require.NoError(t, err)

	var infos []pkgcountries.Info
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	assert.Len(t, infos, pkgcountries.Default().Len())
	assert.Equal(t, "AD", infos[0].CountryCode)
}

func TestListCountriesTable(t *testing.T) {
	out, err := execute(t, "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Germany")
	assert.Contains(t, out, "8!n10!n")
	assert.NotContains(t, out, "BBAN LENGTH")

	out, err = execute(t, "wide")
	require.NoError(t, err)
	assert.Contains(t, out, "BBAN LENGTH")
}

func TestShowCountry(t *testing.T) {
	out, err := execute(t, "json", " gb ")
	require.NoError(t, err)

	var info pkgcountries.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "GB", info.CountryCode)
	assert.Equal(t, 22, info.Length)
	require.NotNil(t, info.BranchIdentifier)
	assert.Equal(t, pkgcountries.Range{Start: 4, End: 10}, *info.BranchIdentifier)
	assert.Len(t, info.Fields, 3)
}

func TestShowCountryTable(t *testing.T) {
	out, err := execute(t, "table", "IT")
	require.NoError(t, err)
	assert.Contains(t, out, "Italy")
	assert.Contains(t, out, "check")
	assert.Contains(t, out, "alphanumeric")
}

func TestShowUnknownCountry(t *testing.T) {
	_, err := execute(t, "json", "XX")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, "country XX not found", err.Error())
}

func TestTooManyArgs(t *testing.T) {
	_, err := execute(t, "json", "DE", "FR")
	assert.Error(t, err)
}
