package integration_test

import (
	"net/http"
	"testing"
	"time"

	"seniorwork_backend/internal/models"
	"seniorwork_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestCreateJob_ApprovedEmployer(t *testing.T) {
	ts := GetTestServer(t)
	_, token := helpers.CreateAndLoginUser(t, ts, models.UserRoleEmployer, models.UserStatusApproved)

	res, body := ts.SendRequest(t, "POST", "/api/v1/jobs", token, map[string]interface{}{
		"title":       "Retail Assistant",
		"company":     "Corner Shop",
		"location":    "Hamburg",
		"job_type":    "part_time",
		"category":    "retail",
		"description": "Friendly part time role",
		"salary":      "15 EUR/h",
	})

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, "Retail Assistant")
	assert.Contains(t, body, `"is_active":true`)
}

func TestCreateJob_PendingEmployerForbidden(t *testing.T) {
	ts := GetTestServer(t)
	_, token := helpers.CreateAndLoginUser(t, ts, models.UserRoleEmployer, models.UserStatusPending)

	res, body := ts.SendRequest(t, "POST", "/api/v1/jobs", token, map[string]interface{}{
		"title":       "Should Fail",
		"company":     "Nope",
		"job_type":    "full_time",
		"description": "Pending employers cannot post",
	})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "not approved")
}

func TestCreateJob_CandidateForbidden(t *testing.T) {
	ts := GetTestServer(t)
	_, token := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/jobs", token, map[string]interface{}{
		"title":       "Should Fail",
		"company":     "Nope",
		"job_type":    "full_time",
		"description": "Candidates cannot post jobs",
	})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestListJobs_Public(t *testing.T) {
	ts := GetTestServer(t)
	employer := helpers.CreateUser(t, ts.DB, models.UserRoleEmployer, models.UserStatusApproved)
	helpers.CreateJob(t, ts.DB, employer.ID, "Public Listing Job")

	res, body := ts.SendRequest(t, "GET", "/api/v1/jobs?page=1&page_size=50", "", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Public Listing Job")
	assert.Contains(t, body, "pagination")
}

func TestListJobs_PaginationEnvelope(t *testing.T) {
	ts := GetTestServer(t)
	employer := helpers.CreateUser(t, ts.DB, models.UserRoleEmployer, models.UserStatusApproved)
	helpers.CreateJob(t, ts.DB, employer.ID, "Envelope Job QQ1")
	helpers.CreateJob(t, ts.DB, employer.ID, "Envelope Job QQ2")

	res, body := ts.SendRequest(t, "GET", "/api/v1/jobs?q=Envelope+Job+QQ&page=1&page_size=1", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var list struct {
		Pagination struct {
			CurrentPage int   `json:"current_page"`
			PageSize    int   `json:"page_size"`
			TotalCount  int64 `json:"total_count"`
			TotalPages  int   `json:"total_pages"`
			HasNext     bool  `json:"has_next"`
			HasPrev     bool  `json:"has_prev"`
		} `json:"pagination"`
	}
	helpers.DecodeJSON(t, body, &list)

	assert.Equal(t, 1, list.Pagination.CurrentPage)
	assert.Equal(t, 1, list.Pagination.PageSize)
	assert.Equal(t, int64(2), list.Pagination.TotalCount)
	assert.Equal(t, 2, list.Pagination.TotalPages)
	assert.True(t, list.Pagination.HasNext)
	assert.False(t, list.Pagination.HasPrev)

	res2, body2 := ts.SendRequest(t, "GET", "/api/v1/jobs?q=Envelope+Job+QQ&page=2&page_size=1", "", nil)
	assert.Equal(t, http.StatusOK, res2.StatusCode)
	helpers.DecodeJSON(t, body2, &list)
	assert.False(t, list.Pagination.HasNext)
	assert.True(t, list.Pagination.HasPrev)
}

func TestListJobs_HidesInactiveAndExpired(t *testing.T) {
	ts := GetTestServer(t)
	employer := helpers.CreateUser(t, ts.DB, models.UserRoleEmployer, models.UserStatusApproved)

	inactive := helpers.CreateJob(t, ts.DB, employer.ID, "Inactive Job XYZ")
	ts.DB.Model(inactive).Update("is_active", false)

	expired := helpers.CreateJob(t, ts.DB, employer.ID, "Expired Job XYZ")
	past := time.Now().Add(-24 * time.Hour)
	ts.DB.Model(expired).Update("deadline", past)

	res, body := ts.SendRequest(t, "GET", "/api/v1/jobs?q=XYZ", "", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, "Inactive Job XYZ")
	assert.NotContains(t, body, "Expired Job XYZ")
}

func TestUpdateJob_OnlyOwner(t *testing.T) {
	ts := GetTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, models.UserRoleEmployer, models.UserStatusApproved)
	job := helpers.CreateJob(t, ts.DB, owner.ID, "Owned Job")

	_, otherToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleEmployer, models.UserStatusApproved)

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/jobs/"+job.ID, otherToken, map[string]interface{}{
		"title": "Hijacked",
	})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestSaveJob_AndListSaved(t *testing.T) {
	ts := GetTestServer(t)
	employer := helpers.CreateUser(t, ts.DB, models.UserRoleEmployer, models.UserStatusApproved)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Saveable Job")

	_, token := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/save", token, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	// Saving twice conflicts.
	res2, _ := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/save", token, nil)
	assert.Equal(t, http.StatusConflict, res2.StatusCode)

	res3, body := ts.SendRequest(t, "GET", "/api/v1/jobs/saved", token, nil)
	assert.Equal(t, http.StatusOK, res3.StatusCode)
	assert.Contains(t, body, "Saveable Job")
	assert.Contains(t, body, `"is_saved":true`)
}

func TestGetJob_IncrementsViews(t *testing.T) {
	ts := GetTestServer(t)
	employer := helpers.CreateUser(t, ts.DB, models.UserRoleEmployer, models.UserStatusApproved)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Viewed Job")

	res, _ := ts.SendRequest(t, "GET", "/api/v1/jobs/"+job.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var viewed models.Job
	assert.NoError(t, ts.DB.First(&viewed, "id = ?", job.ID).Error)
	assert.Equal(t, 1, viewed.ViewsCount)
}
