package integration_test

import (
	"net/http"
	"testing"
	"time"

	"seniorwork_backend/internal/models"
	"seniorwork_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestSubmitApplication_FullFlow(t *testing.T) {
	ts := GetTestServer(t)
	employer := helpers.CreateUser(t, ts.DB, models.UserRoleEmployer, models.UserStatusApproved)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Application Target")
	candidate, token := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	res, body := ts.SendRequest(t, "POST", "/api/v1/applications", token, map[string]interface{}{
		"job_id":       job.ID,
		"cover_letter": "I bring decades of experience.",
	})

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, `"status":"pending"`)

	// Counter bumped in the same transaction.
	var updated models.Job
	assert.NoError(t, ts.DB.First(&updated, "id = ?", job.ID).Error)
	assert.Equal(t, 1, updated.ApplicationsCount)

	// Both sides were notified.
	var employerNotifs, candidateNotifs int64
	ts.DB.Model(&models.Notification{}).Where("user_id = ?", employer.ID).Count(&employerNotifs)
	ts.DB.Model(&models.Notification{}).Where("user_id = ?", candidate.ID).Count(&candidateNotifs)
	assert.GreaterOrEqual(t, employerNotifs, int64(1))
	assert.GreaterOrEqual(t, candidateNotifs, int64(1))
}

func TestSubmitApplication_DuplicateConflicts(t *testing.T) {
	ts := GetTestServer(t)
	employer := helpers.CreateUser(t, ts.DB, models.UserRoleEmployer, models.UserStatusApproved)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Duplicate Target")
	_, token := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/applications", token, map[string]interface{}{
		"job_id": job.ID,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res2, body := ts.SendRequest(t, "POST", "/api/v1/applications", token, map[string]interface{}{
		"job_id": job.ID,
	})
	assert.Equal(t, http.StatusConflict, res2.StatusCode)
	assert.Contains(t, body, "already applied")

	// The counter did not double count.
	var updated models.Job
	assert.NoError(t, ts.DB.First(&updated, "id = ?", job.ID).Error)
	assert.Equal(t, 1, updated.ApplicationsCount)
}

func TestSubmitApplication_DeadlinePassed(t *testing.T) {
	ts := GetTestServer(t)
	employer := helpers.CreateUser(t, ts.DB, models.UserRoleEmployer, models.UserStatusApproved)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Expired Application Target")
	past := time.Now().Add(-time.Hour)
	ts.DB.Model(job).Update("deadline", past)

	_, token := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	res, body := ts.SendRequest(t, "POST", "/api/v1/applications", token, map[string]interface{}{
		"job_id": job.ID,
	})

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "deadline")
}

func TestSubmitApplication_PendingCandidateForbidden(t *testing.T) {
	ts := GetTestServer(t)
	employer := helpers.CreateUser(t, ts.DB, models.UserRoleEmployer, models.UserStatusApproved)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Pending Candidate Target")
	_, token := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusPending)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/applications", token, map[string]interface{}{
		"job_id": job.ID,
	})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestUpdateApplicationStatus_EmployerDecides(t *testing.T) {
	ts := GetTestServer(t)
	employer, employerToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleEmployer, models.UserStatusApproved)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Decision Target")
	candidate, candidateToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	_, submitBody := ts.SendRequest(t, "POST", "/api/v1/applications", candidateToken, map[string]interface{}{
		"job_id": job.ID,
	})
	var app struct {
		ID string `json:"id"`
	}
	helpers.DecodeJSON(t, submitBody, &app)

	res, body := ts.SendRequest(t, "PUT", "/api/v1/applications/"+app.ID+"/status", employerToken, map[string]interface{}{
		"status": "accepted",
		"rating": 4,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"status":"accepted"`)
	assert.Contains(t, body, `"rating":4`)

	// The rating was written with the decision, not just echoed back.
	var stored models.Application
	assert.NoError(t, ts.DB.First(&stored, "id = ?", app.ID).Error)
	if assert.NotNil(t, stored.Rating) {
		assert.Equal(t, 4, *stored.Rating)
	}

	// The candidate was notified of the decision.
	var count int64
	ts.DB.Model(&models.Notification{}).
		Where("user_id = ? AND title = ?", candidate.ID, "Application accepted").
		Count(&count)
	assert.Equal(t, int64(1), count)

	// Terminal status, no further transitions.
	res2, _ := ts.SendRequest(t, "PUT", "/api/v1/applications/"+app.ID+"/status", employerToken, map[string]interface{}{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusConflict, res2.StatusCode)
}

func TestUpdateApplicationStatus_StrangerForbidden(t *testing.T) {
	ts := GetTestServer(t)
	employer := helpers.CreateUser(t, ts.DB, models.UserRoleEmployer, models.UserStatusApproved)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Stranger Target")
	_, candidateToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	_, submitBody := ts.SendRequest(t, "POST", "/api/v1/applications", candidateToken, map[string]interface{}{
		"job_id": job.ID,
	})
	var app struct {
		ID string `json:"id"`
	}
	helpers.DecodeJSON(t, submitBody, &app)

	_, strangerToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleEmployer, models.UserStatusApproved)

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/applications/"+app.ID+"/status", strangerToken, map[string]interface{}{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestWithdrawApplication_ReleasesCounter(t *testing.T) {
	ts := GetTestServer(t)
	employer := helpers.CreateUser(t, ts.DB, models.UserRoleEmployer, models.UserStatusApproved)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Withdraw Target")
	_, token := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	_, submitBody := ts.SendRequest(t, "POST", "/api/v1/applications", token, map[string]interface{}{
		"job_id": job.ID,
	})
	var app struct {
		ID string `json:"id"`
	}
	helpers.DecodeJSON(t, submitBody, &app)

	res, _ := ts.SendRequest(t, "DELETE", "/api/v1/applications/"+app.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	var updated models.Job
	assert.NoError(t, ts.DB.First(&updated, "id = ?", job.ID).Error)
	assert.Equal(t, 0, updated.ApplicationsCount)

	// Re-applying after withdrawal is allowed again.
	res2, _ := ts.SendRequest(t, "POST", "/api/v1/applications", token, map[string]interface{}{
		"job_id": job.ID,
	})
	assert.Equal(t, http.StatusCreated, res2.StatusCode)
}

func TestApplicationJourney_RegisterApproveApply(t *testing.T) {
	ts := GetTestServer(t)
	employer := helpers.CreateUser(t, ts.DB, models.UserRoleEmployer, models.UserStatusApproved)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Journey Target")
	_, adminToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleAdmin, models.UserStatusApproved)

	// Fresh registration starts pending.
	res, regBody := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "journey@test.local",
		"password": "long-enough-pass",
		"name":     "Journey Candidate",
		"role":     "candidate",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var reg struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	helpers.DecodeJSON(t, regBody, &reg)

	apply := map[string]interface{}{"job_id": job.ID}

	res2, _ := ts.SendRequest(t, "POST", "/api/v1/applications", reg.AccessToken, apply)
	assert.Equal(t, http.StatusForbidden, res2.StatusCode)

	res3, _ := ts.SendRequest(t, "PUT", "/api/v1/admin/users/"+reg.User.ID+"/status", adminToken, map[string]interface{}{
		"status": "approved",
	})
	assert.Equal(t, http.StatusOK, res3.StatusCode)

	// Same token works once approved.
	res4, _ := ts.SendRequest(t, "POST", "/api/v1/applications", reg.AccessToken, apply)
	assert.Equal(t, http.StatusCreated, res4.StatusCode)

	res5, _ := ts.SendRequest(t, "POST", "/api/v1/applications", reg.AccessToken, apply)
	assert.Equal(t, http.StatusConflict, res5.StatusCode)

	var updated models.Job
	assert.NoError(t, ts.DB.First(&updated, "id = ?", job.ID).Error)
	assert.Equal(t, 1, updated.ApplicationsCount)
}
