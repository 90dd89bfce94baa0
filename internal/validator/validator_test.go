package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Email string `json:"user_email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=company freelancer"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&samplePayload{Email: "not-an-email"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "user_email")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["user_email"])
}

func TestValidate_OneOf(t *testing.T) {
	v := New()

	err := v.Validate(&samplePayload{Email: "ok@test.com", Role: "admin"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors["role"], "company, freelancer")
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&samplePayload{Email: "ok@test.com", Role: "freelancer"}))
	assert.NoError(t, v.Validate(&samplePayload{Email: "ok@test.com"}))
}
