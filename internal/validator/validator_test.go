package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,is-user-role"`
}

func TestValidate_OK(t *testing.T) {
	v := New()
	err := v.Validate(registerPayload{
		Email:    "someone@example.com",
		Password: "long-enough",
		Role:     "candidate",
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(registerPayload{
		Email:    "not-an-email",
		Password: "short",
		Role:     "candidate",
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
	assert.NotContains(t, vErr.Errors, "Email")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}

func TestValidate_CustomEnumRules(t *testing.T) {
	v := New()

	type payload struct {
		Role    string `json:"role" validate:"omitempty,is-user-role"`
		Status  string `json:"status" validate:"omitempty,is-user-status"`
		JobType string `json:"job_type" validate:"omitempty,is-job-type"`
	}

	assert.NoError(t, v.Validate(payload{Role: "employer", Status: "approved", JobType: "part_time"}))

	// Empty values pass; presence is the job of 'required'.
	assert.NoError(t, v.Validate(payload{}))

	err := v.Validate(payload{Role: "superuser"})
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "role")

	assert.Error(t, v.Validate(payload{Status: "banned"}))
	assert.Error(t, v.Validate(payload{JobType: "gig"}))
}

func TestValidate_OneofMessage(t *testing.T) {
	v := New()

	type payload struct {
		Status string `json:"status" validate:"required,oneof=approved rejected"`
	}

	err := v.Validate(payload{Status: "pending"})
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be one of: approved, rejected", vErr.Errors["status"])
}

func TestValidationError_Error(t *testing.T) {
	vErr := &ValidationError{Errors: map[string]string{"email": "This field is required"}}
	assert.Contains(t, vErr.Error(), "email")
	assert.Contains(t, vErr.Error(), "Validation failed")
}
