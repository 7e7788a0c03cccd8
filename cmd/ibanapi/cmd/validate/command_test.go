package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manosbatsis/ibanapi/cmd/application"
	"github.com/manosbatsis/ibanapi/internal/batch"
	pkgerrors "github.com/manosbatsis/ibanapi/pkg/errors"
)

func execute(t *testing.T, format, stdin string, args ...string) (string, error) {
	t.Helper()
	mock := &application.Mock{
		OutputFormatFunc: func() string { return format },
	}
	cmd := NewCommand(mock)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decode(t *testing.T, out string) []batch.Outcome {
	t.Helper()
	var outcomes []batch.Outcome
	require.NoError(t, json.Unmarshal([]byte(out), &outcomes), out)
	return outcomes
}

func TestValidateArgsJSON(t *testing.T) {
	out, err := execute(t, "json", "", "gb82 west 1234 5698 7654 32", "NL91ABNA0417164300")
	require.NoError(t, err)

	outcomes := decode(t, out)
	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].Valid)
	assert.Equal(t, "GB82WEST12345698765432", outcomes[0].Info.IBAN)
	require.NotNil(t, outcomes[0].Info.BankIdentifier)
	assert.Equal(t, "WEST", *outcomes[0].Info.BankIdentifier)
	assert.Equal(t, "NL", outcomes[1].Info.CountryCode)
	assert.Nil(t, outcomes[1].Info.BranchIdentifier)
}

func TestValidateInvalidExitsNonZero(t *testing.T) {
	out, err := execute(t, "json", "", "DE44500105175407324931", "DE4450010517540732493")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidIBANs))
	assert.Equal(t, "invalid IBANs: 1 of 2", err.Error())

	outcomes := decode(t, out)
	require.Len(t, outcomes, 2)
	assert.False(t, outcomes[1].Valid)
	assert.Equal(t, "invalid_length", outcomes[1].Kind)
	assert.Equal(t, "invalid length for DE: expected 22 characters, got 21", outcomes[1].Message)
}

func TestValidateTable(t *testing.T) {
	out, err := execute(t, "table", "", "GB82WEST12345698765432")
	require.NoError(t, err)
	assert.Contains(t, out, "GB82 WEST 1234 5698 7654 32")
	assert.Contains(t, out, "GB (United Kingdom)")
	assert.Contains(t, out, "✓")
}

func TestValidateWide(t *testing.T) {
	out, err := execute(t, "wide", "", "GB82WEST12345698765432", "GB00WEST12345698765432")
	require.Error(t, err)
	assert.Contains(t, out, "WEST12345698765432")
	assert.Contains(t, out, "checksum_mismatch")
}

func TestValidateYAML(t *testing.T) {
	out, err := execute(t, "yaml", "", "DE44500105175407324931")
	require.NoError(t, err)
	assert.Contains(t, out, "- input: DE44500105175407324931\n  valid: true\n")
	assert.Contains(t, out, "branch_identifier: null")
}

func TestValidateStdin(t *testing.T) {
	stdin := "# accounts\nDE44500105175407324931\n\n  NL91ABNA0417164300  \n"
	out, err := execute(t, "json", stdin, "--file", "-")
	require.NoError(t, err)

	outcomes := decode(t, out)
	require.Len(t, outcomes, 2)
	assert.Equal(t, "NL91ABNA0417164300", outcomes[1].Input)
}

func TestValidateFileAndArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ibans.txt")
	require.NoError(t, os.WriteFile(path, []byte("NL91ABNA0417164300\n"), 0o600))

	out, err := execute(t, "json", "", "DE44500105175407324931", "--file", path, "--concurrency", "1")
	require.NoError(t, err)

	outcomes := decode(t, out)
	require.Len(t, outcomes, 2)
	assert.Equal(t, "DE44500105175407324931", outcomes[0].Input)
	assert.Equal(t, "NL91ABNA0417164300", outcomes[1].Input)
}

func TestValidateMissingFile(t *testing.T) {
	_, err := execute(t, "json", "", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	var ioErr *pkgerrors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "open", ioErr.Operation)
}

func TestValidateNoInput(t *testing.T) {
	_, err := execute(t, "json", "")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidationError(err))

	_, err = execute(t, "json", "# only a comment\n", "--file", "-")
	assert.True(t, pkgerrors.IsValidationError(err))
}
