package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "simple address", email: "test@example.com", want: true},
		{name: "plus tag and subdomain", email: "user.name+tag@example.co.uk", want: true},
		{name: "surrounding whitespace", email: "  test@example.com ", want: true},
		{name: "no at sign", email: "invalid", want: false},
		{name: "missing local part", email: "@example.com", want: false},
		{name: "missing domain", email: "test@", want: false},
		{name: "label starting with hyphen", email: "test@-example.com", want: false},
		{name: "empty", email: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	email, err := ValidateEmail("  a@b.com  ")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)

	_, err = ValidateEmail("invalid")
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "email", validationErr.Field)
	assert.Equal(t, "Invalid email address format", err.Error())
}

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "int", value: 1, want: true},
		{name: "large int", value: 100, want: true},
		{name: "digit string", value: "42", want: true},
		{name: "padded digit string", value: " 42 ", want: true},
		{name: "integral float", value: float64(7), want: true},
		{name: "json number", value: json.Number("12"), want: true},
		{name: "zero", value: 0, want: false},
		{name: "negative", value: -1, want: false},
		{name: "fraction", value: 1.5, want: false},
		{name: "letters", value: "abc", want: false},
		{name: "trailing letters", value: "42abc", want: false},
		{name: "zero string", value: "0", want: false},
		{name: "nil", value: nil, want: false},
		{name: "bool", value: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidID(tt.value))
		})
	}
}

func TestValidateID(t *testing.T) {
	id, err := ValidateID(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	id, err = ValidateID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ValidateID(0)
	assert.EqualError(t, err, "Invalid ID: must be a positive integer")

	_, err = ValidateID("invalid")
	assert.Error(t, err)
}

func TestParseIDArray(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int64
		wantErr bool
	}{
		{name: "plain list", input: "1,2,3", want: []int64{1, 2, 3}},
		{name: "whitespace around segments", input: " 10 , 20 , 30 ", want: []int64{10, 20, 30}},
		{name: "empty string", input: "", want: []int64{}},
		{name: "whitespace only", input: "   ", want: []int64{}},
		{name: "empty segments skipped", input: "1,,2,", want: []int64{1, 2}},
		{name: "non numeric segment", input: "1,abc,3", wantErr: true},
		{name: "zero segment", input: "1,0", wantErr: true},
		{name: "negative segment", input: "-4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIDArray(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocale(t *testing.T) {
	assert.True(t, IsValidLocale("en_GB"))
	assert.True(t, IsValidLocale("fr_FR"))
	assert.False(t, IsValidLocale("invalid"))
	assert.False(t, IsValidLocale("en"))

	locale, err := ValidateLocale("en_GB")
	require.NoError(t, err)
	assert.Equal(t, "en_GB", locale)

	_, err = ValidateLocale("invalid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid locale. Must be one of: de_CH")
}

func TestRoleType(t *testing.T) {
	assert.True(t, IsValidRoleType(0))
	assert.True(t, IsValidRoleType(5))
	assert.True(t, IsValidRoleType(float64(3)))
	assert.False(t, IsValidRoleType(6))
	assert.False(t, IsValidRoleType(-1))
	assert.False(t, IsValidRoleType("0"))
	assert.False(t, IsValidRoleType(2.5))

	roleType, err := ValidateRoleType(0)
	require.NoError(t, err)
	assert.Equal(t, RoleType_Administrator, roleType)
	assert.Equal(t, "Administrator", roleType.String())

	_, err = ValidateRoleType(6)
	assert.Error(t, err)
}

func TestValidateNonEmptyString(t *testing.T) {
	value, err := ValidateNonEmptyString("  team  ", "name")
	require.NoError(t, err)
	assert.Equal(t, "team", value)

	_, err = ValidateNonEmptyString("   ", "name")
	assert.EqualError(t, err, "Missing required field: name")

	_, err = ValidateNonEmptyString(12, "name")
	assert.Error(t, err)
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("123e4567-e89b-12d3-a456-426614174000"))
	assert.True(t, IsValidUUID("123E4567-E89B-12D3-A456-426614174000"))
	assert.False(t, IsValidUUID("123e4567e89b12d3a456426614174000"))
	assert.False(t, IsValidUUID("urn:uuid:123e4567-e89b-12d3-a456-426614174000"))
	assert.False(t, IsValidUUID("{123e4567-e89b-12d3-a456-426614174000}"))
	assert.False(t, IsValidUUID("123e4567-e89b-12d3-a456-42661417400g"))
}

func TestBuildEndpoint(t *testing.T) {
	endpoint, err := BuildEndpoint("/1/mail_hostings/{mail_hosting_id}/mailboxes/{mailbox_name}/forwarding/{address}", map[string]string{
		"mail_hosting_id": "12",
		"mailbox_name":    "info",
		"address":         "a b/c@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "/1/mail_hostings/12/mailboxes/info/forwarding/a%20b%2Fc%40example.com", endpoint)

	_, err = BuildEndpoint("/2/zones/{zone}", map[string]string{})
	require.Error(t, err)
	assert.Equal(t, "Missing required field: zone", err.Error())
}

func TestEncodeURLParam(t *testing.T) {
	assert.Equal(t, "it's(ok)!*~", EncodeURLParam("it's(ok)!*~"))
	assert.Equal(t, "a%2Bb%26c", EncodeURLParam("a+b&c"))
}

func TestPathParams(t *testing.T) {
	assert.Equal(t, []string{"account_id", "channel"}, PathParams("/1/videos/{account_id}/channels/{channel}"))
	assert.Empty(t, PathParams("/1/profile"))
}

func TestParseOrReturn(t *testing.T) {
	assert.Equal(t, map[string]any{"name": "x"}, ParseOrReturn(`{"name":"x"}`))
	assert.Equal(t, "not json", ParseOrReturn("not json"))
	assert.Equal(t, 5, ParseOrReturn(5))

	object, err := ParseJSONObject(`{"size": 2}`, "database_data")
	require.NoError(t, err)
	assert.Equal(t, json.Number("2"), object["size"])

	_, err = ParseJSONObject("[1,2]", "database_data")
	assert.Error(t, err)

	object, err = ParseJSONObject(nil, "database_data")
	require.NoError(t, err)
	assert.Empty(t, object)
}
