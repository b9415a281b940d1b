package validation

import (
	"testing"

	domainerrors "taskhub/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "simple", email: "a@b.co", valid: true},
		{name: "subdomain", email: "first.last@mail.example.com", valid: true},
		{name: "no at", email: "ab.co", valid: false},
		{name: "no dot after at", email: "a@b", valid: false},
		{name: "empty local part", email: "@b.co", valid: false},
		{name: "inner space", email: "a b@c.de", valid: false},
		{name: "double at", email: "a@@b.co", valid: false},
		{name: "empty", email: "", valid: false},
		{name: "non breaking space", email: "a\u00a0b@c.de", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Email(tt.email)
			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				assert.Equal(t, "Invalid email format", res.Message)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	assert.False(t, Password("1234567").Valid)
	assert.Equal(t, "Password must be at least 8 characters long", Password("1234567").Message)
	assert.True(t, Password("12345678").Valid)
	assert.False(t, Password("").Valid)
	// Length is counted in characters: four 3-byte runes are still too short.
	assert.False(t, Password("密碼密碼").Valid)
	assert.True(t, Password("密碼密碼密碼密碼").Valid)
}

func TestCredentials(t *testing.T) {
	res := Credentials("a@b.co", "password1")
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.NoError(t, res.Err())

	res = Credentials("bad", "short")
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Invalid email format"}, res.Errors["email"])
	assert.Equal(t, []string{"Password must be at least 8 characters long"}, res.Errors["password"])

	res = Credentials("a@b.co", "short")
	assert.False(t, res.Valid)
	assert.NotContains(t, res.Errors, "email")
	assert.Contains(t, res.Errors, "password")
}

func TestRequiredFields(t *testing.T) {
	body := map[string]any{
		"name":  "  ",
		"email": "a@b.co",
		"title": nil,
	}

	res := RequiredFields(body, "name", "email", "password", "title", "priority")
	require.False(t, res.Valid)
	assert.Equal(t, []string{"Name is required"}, res.Errors["name"])
	assert.Equal(t, []string{"Password is required"}, res.Errors["password"])
	assert.Equal(t, []string{"Title is required"}, res.Errors["title"])
	assert.Equal(t, []string{"priority is required"}, res.Errors["priority"])
	assert.NotContains(t, res.Errors, "email")

	err := res.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []string{"name", "password", "priority", "title"}, appErr.Details().Fields())
}

func TestRequiredFieldsAllPresent(t *testing.T) {
	res := RequiredFields(map[string]any{"email": "a@b.co", "password": 12345678}, "email", "password")
	assert.True(t, res.Valid)
	assert.NoError(t, res.Err())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
}
