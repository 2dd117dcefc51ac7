package integration_test

import (
	"net/http"
	"testing"

	"seniorwork_backend/internal/models"
	"seniorwork_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestRegister_CreatesPendingAccount(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "newcomer@test.local",
		"password": "long-enough-password",
		"name":     "New Comer",
		"role":     "candidate",
	})

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, `"status":"pending"`)
	assert.Contains(t, body, "access_token")
}

func TestRegister_RejectsAdminRole(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "sneaky@test.local",
		"password": "long-enough-password",
		"name":     "Sneaky",
		"role":     "admin",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	user := helpers.CreateUser(t, ts.DB, models.UserRoleCandidate, models.UserStatusApproved)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    user.Email,
		"password": "long-enough-password",
		"name":     "Duplicate",
		"role":     "candidate",
	})

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "Email already in use")
}

func TestLogin_BadPassword(t *testing.T) {
	ts := GetTestServer(t)
	user := helpers.CreateUser(t, ts.DB, models.UserRoleCandidate, models.UserStatusApproved)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Invalid email or password")
}

func TestLogin_PendingAccountCanLogin(t *testing.T) {
	ts := GetTestServer(t)

	// Pending users may log in to check their status; privileged actions
	// stay blocked until approval.
	_, token := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusPending)
	assert.NotEmpty(t, token)
}

func TestRefresh_RotatesToken(t *testing.T) {
	ts := GetTestServer(t)
	user := helpers.CreateUser(t, ts.DB, models.UserRoleCandidate, models.UserStatusApproved)

	_, loginBody := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": helpers.TestPassword,
	})

	var loginResp struct {
		RefreshToken string `json:"refresh_token"`
	}
	helpers.DecodeJSON(t, loginBody, &loginResp)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": loginResp.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// The consumed token must not work a second time.
	res2, _ := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": loginResp.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res2.StatusCode)
}

func TestProtectedRoute_RequiresToken(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
