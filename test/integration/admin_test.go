package integration_test

import (
	"net/http"
	"testing"

	"seniorwork_backend/internal/models"
	"seniorwork_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestAdminListUsers_FilterByStatus(t *testing.T) {
	ts := GetTestServer(t)
	helpers.CreateUser(t, ts.DB, models.UserRoleCandidate, models.UserStatusPending)
	approved := helpers.CreateUser(t, ts.DB, models.UserRoleCandidate, models.UserStatusApproved)
	_, adminToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleAdmin, models.UserStatusApproved)

	res, body := ts.SendRequest(t, "GET", "/api/v1/admin/users?status=approved&role=candidate", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, approved.Email)
	assert.NotContains(t, body, `"status":"pending"`)
}

func TestAdminApproval_TakesEffectOnNextRequest(t *testing.T) {
	ts := GetTestServer(t)
	employer, employerToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleEmployer, models.UserStatusPending)
	_, adminToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleAdmin, models.UserStatusApproved)

	jobReq := map[string]interface{}{
		"title":       "Part-time librarian",
		"description": "Sorting and cataloguing in a quiet environment",
		"company":     "City Library",
		"location":    "Almaty",
		"job_type":    "part_time",
	}

	res, _ := ts.SendRequest(t, "POST", "/api/v1/jobs", employerToken, jobReq)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res2, _ := ts.SendRequest(t, "PUT", "/api/v1/admin/users/"+employer.ID+"/status", adminToken, map[string]interface{}{
		"status": "approved",
	})
	assert.Equal(t, http.StatusOK, res2.StatusCode)

	// Same token, no re-login: account status is read from the database per request.
	res3, _ := ts.SendRequest(t, "POST", "/api/v1/jobs", employerToken, jobReq)
	assert.Equal(t, http.StatusCreated, res3.StatusCode)
}

func TestAdminUpdateStatus_SelfAndAdminTargetsRejected(t *testing.T) {
	ts := GetTestServer(t)
	admin, adminToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleAdmin, models.UserStatusApproved)
	otherAdmin := helpers.CreateUser(t, ts.DB, models.UserRoleAdmin, models.UserStatusApproved)

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/admin/users/"+admin.ID+"/status", adminToken, map[string]interface{}{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res2, _ := ts.SendRequest(t, "PUT", "/api/v1/admin/users/"+otherAdmin.ID+"/status", adminToken, map[string]interface{}{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusForbidden, res2.StatusCode)
}

func TestAdminRejection_NotifiesUser(t *testing.T) {
	ts := GetTestServer(t)
	candidate, candidateToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusPending)
	_, adminToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleAdmin, models.UserStatusApproved)

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/admin/users/"+candidate.ID+"/status", adminToken, map[string]interface{}{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	_, body := ts.SendRequest(t, "GET", "/api/v1/notifications", candidateToken, nil)
	assert.Contains(t, body, "rejected")
}

func TestAdminDeleteUser(t *testing.T) {
	ts := GetTestServer(t)
	candidate, candidateToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)
	_, adminToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleAdmin, models.UserStatusApproved)

	res, _ := ts.SendRequest(t, "DELETE", "/api/v1/admin/users/"+candidate.ID, adminToken, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res2, _ := ts.SendRequest(t, "GET", "/api/v1/users/me", candidateToken, nil)
	assert.Equal(t, http.StatusNotFound, res2.StatusCode)
}

func TestAdminStats(t *testing.T) {
	ts := GetTestServer(t)
	ts.ResetTables(t)

	employer, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleEmployer, models.UserStatusApproved)
	helpers.CreateUser(t, ts.DB, models.UserRoleCandidate, models.UserStatusPending)
	helpers.CreateJob(t, ts.DB, employer.ID, "Evening receptionist")
	_, adminToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleAdmin, models.UserStatusApproved)

	res, body := ts.SendRequest(t, "GET", "/api/v1/admin/stats", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"active_jobs":1`)
	assert.Contains(t, body, `"pending":1`)
}

func TestAdminRoutes_ForbiddenForNonAdmin(t *testing.T) {
	ts := GetTestServer(t)
	_, candidateToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/admin/users", candidateToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
