package auth

import (
	"testing"

	"seniorwork_backend/internal/models"
	"seniorwork_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caller(role models.UserRole, status models.UserStatus) Caller {
	return Caller{ID: "caller-1", Role: role, Status: status}
}

func TestAuthorize_RoleMatrix(t *testing.T) {
	tests := []struct {
		name    string
		caller  Caller
		action  Action
		allowed bool
	}{
		{"approved employer creates job", caller(models.UserRoleEmployer, models.UserStatusApproved), ActionJobCreate, true},
		{"candidate cannot create job", caller(models.UserRoleCandidate, models.UserStatusApproved), ActionJobCreate, false},
		{"admin cannot create job", caller(models.UserRoleAdmin, models.UserStatusApproved), ActionJobCreate, false},
		{"approved candidate applies", caller(models.UserRoleCandidate, models.UserStatusApproved), ActionApplicationCreate, true},
		{"employer cannot apply", caller(models.UserRoleEmployer, models.UserStatusApproved), ActionApplicationCreate, false},
		{"admin moderates applications", caller(models.UserRoleAdmin, models.UserStatusApproved), ActionApplicationModerate, true},
		{"candidate issues invoice", caller(models.UserRoleCandidate, models.UserStatusApproved), ActionInvoiceIssue, true},
		{"candidate cannot settle invoice", caller(models.UserRoleCandidate, models.UserStatusApproved), ActionInvoiceSettle, false},
		{"employer settles invoice", caller(models.UserRoleEmployer, models.UserStatusApproved), ActionInvoiceSettle, true},
		{"candidate cannot use admin routes", caller(models.UserRoleCandidate, models.UserStatusApproved), ActionAdminUsers, false},
		{"admin uses admin routes", caller(models.UserRoleAdmin, models.UserStatusApproved), ActionAdminUsers, true},
		{"unknown action denied", caller(models.UserRoleAdmin, models.UserStatusApproved), Action("does:not-exist"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.caller, tt.action)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAuthorize_StatusGate(t *testing.T) {
	err := Authorize(caller(models.UserRoleEmployer, models.UserStatusPending), ActionJobCreate)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "not approved")

	err = Authorize(caller(models.UserRoleEmployer, models.UserStatusRejected), ActionJobCreate)
	require.Error(t, err)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestAuthorize_AdminSkipsStatusGate(t *testing.T) {
	// Admins are seeded as approved; the gate does not apply to them.
	err := Authorize(caller(models.UserRoleAdmin, models.UserStatusPending), ActionApplicationModerate)
	assert.NoError(t, err)
}

func TestAuthorizeOwner(t *testing.T) {
	owner := Caller{ID: "owner-1", Role: models.UserRoleEmployer, Status: models.UserStatusApproved}
	stranger := Caller{ID: "other-1", Role: models.UserRoleEmployer, Status: models.UserStatusApproved}
	admin := Caller{ID: "admin-1", Role: models.UserRoleAdmin, Status: models.UserStatusApproved}

	assert.NoError(t, AuthorizeOwner(owner, ActionJobUpdate, "owner-1"))
	assert.Error(t, AuthorizeOwner(stranger, ActionJobUpdate, "owner-1"))
	assert.NoError(t, AuthorizeOwner(admin, ActionJobUpdate, "owner-1"))

	// Role check still runs before ownership.
	candidate := Caller{ID: "owner-1", Role: models.UserRoleCandidate, Status: models.UserStatusApproved}
	assert.Error(t, AuthorizeOwner(candidate, ActionJobUpdate, "owner-1"))
}

func TestIsParticipant(t *testing.T) {
	c := Caller{ID: "u1", Role: models.UserRoleCandidate, Status: models.UserStatusApproved}
	admin := Caller{ID: "a1", Role: models.UserRoleAdmin, Status: models.UserStatusApproved}

	assert.True(t, IsParticipant(c, "u1", "u2"))
	assert.False(t, IsParticipant(c, "u2", "u3"))
	assert.True(t, IsParticipant(admin, "u2", "u3"))
	assert.False(t, IsParticipant(c))
}
