package countries_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manosbatsis/ibanapi/pkg/countries"
)

func TestCharsetAllows(t *testing.T) {
	tests := []struct {
		charset countries.Charset
		allowed string
		denied  string
	}{
		{countries.Numeric, "0123456789", "AZaz-"},
		{countries.Alpha, "ABCXYZ", "09az "},
		{countries.Alphanumeric, "09AZ", "az-_"},
	}
	for _, tt := range tests {
		t.Run(tt.charset.Name(), func(t *testing.T) {
			for i := 0; i < len(tt.allowed); i++ {
				assert.True(t, tt.charset.Allows(tt.allowed[i]), "%q", tt.allowed[i])
			}
			for i := 0; i < len(tt.denied); i++ {
				assert.False(t, tt.charset.Allows(tt.denied[i]), "%q", tt.denied[i])
			}
		})
	}
	assert.False(t, countries.Charset(0).Allows('1'))
}

func TestParseCharset(t *testing.T) {
	for in, want := range map[string]countries.Charset{
		"n": countries.Numeric, "A": countries.Alpha, "c": countries.Alphanumeric,
		"digits": countries.Numeric, " letters ": countries.Alpha,
	} {
		got, err := countries.ParseCharset(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := countries.ParseCharset("z")
	assert.Error(t, err)
}

func TestParseRole(t *testing.T) {
	for in, want := range map[string]countries.Role{
		"bank": countries.RoleBank, "Branch": countries.RoleBranch, "account": countries.RoleAccount,
		"check": countries.RoleCheck, "other": countries.RoleOther,
	} {
		got, err := countries.ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, want.String(), got.String())
	}
	_, err := countries.ParseRole("iban")
	assert.Error(t, err)
}

func TestFieldJSON(t *testing.T) {
	b, err := json.Marshal(countries.Field{Length: 8, Charset: countries.Numeric, Role: countries.RoleBank})
	require.NoError(t, err)
	assert.JSONEq(t, `{"length":8,"charset":"digits","role":"bank"}`, string(b))
}

func TestFieldJSONDecode(t *testing.T) {
	var f countries.Field
	require.NoError(t, json.Unmarshal([]byte(`{"length":5,"charset":"letters","role":"branch"}`), &f))
	assert.Equal(t, countries.Field{Length: 5, Charset: countries.Alpha, Role: countries.RoleBranch}, f)

	assert.Error(t, json.Unmarshal([]byte(`{"charset":"hex"}`), &f))
	assert.Error(t, json.Unmarshal([]byte(`{"role":"owner"}`), &f))
}
