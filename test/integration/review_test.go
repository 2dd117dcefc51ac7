package integration_test

import (
	"net/http"
	"testing"

	"seniorwork_backend/internal/models"
	"seniorwork_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestCreateReview_CompletedContractOnly(t *testing.T) {
	ts := GetTestServer(t)
	employer, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleEmployer, models.UserStatusApproved)
	candidate, candidateToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	active := helpers.CreateContract(t, ts.DB, employer.ID, candidate.ID, models.ContractStatusActive)

	res, body := ts.SendRequest(t, "POST", "/api/v1/reviews", candidateToken, map[string]interface{}{
		"contract_id": active.ID,
		"rating":      5,
		"comment":     "Great employer",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "completed")
}

func TestCreateReview_AndDuplicateRejected(t *testing.T) {
	ts := GetTestServer(t)
	employer, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleEmployer, models.UserStatusApproved)
	candidate, candidateToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)
	contract := helpers.CreateContract(t, ts.DB, employer.ID, candidate.ID, models.ContractStatusCompleted)

	res, body := ts.SendRequest(t, "POST", "/api/v1/reviews", candidateToken, map[string]interface{}{
		"contract_id": contract.ID,
		"rating":      4,
		"comment":     "Good collaboration",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	// The review targets the other party.
	assert.Contains(t, body, employer.ID)

	res2, _ := ts.SendRequest(t, "POST", "/api/v1/reviews", candidateToken, map[string]interface{}{
		"contract_id": contract.ID,
		"rating":      1,
		"comment":     "Changed my mind",
	})
	assert.Equal(t, http.StatusConflict, res2.StatusCode)
}

func TestListReviews_PublicWithAverage(t *testing.T) {
	ts := GetTestServer(t)
	employer, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleEmployer, models.UserStatusApproved)
	candidateA, tokenA := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)
	candidateB, tokenB := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)

	contractA := helpers.CreateContract(t, ts.DB, employer.ID, candidateA.ID, models.ContractStatusCompleted)
	contractB := helpers.CreateContract(t, ts.DB, employer.ID, candidateB.ID, models.ContractStatusCompleted)

	ts.SendRequest(t, "POST", "/api/v1/reviews", tokenA, map[string]interface{}{
		"contract_id": contractA.ID,
		"rating":      5,
	})
	ts.SendRequest(t, "POST", "/api/v1/reviews", tokenB, map[string]interface{}{
		"contract_id": contractB.ID,
		"rating":      3,
	})

	// No auth needed to read reviews.
	res, body := ts.SendRequest(t, "GET", "/api/v1/users/"+employer.ID+"/reviews", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"average_rating":4`)
	assert.Contains(t, body, `"review_count":2`)
}

func TestDeleteReview_AdminOnly(t *testing.T) {
	ts := GetTestServer(t)
	employer, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleEmployer, models.UserStatusApproved)
	candidate, candidateToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleCandidate, models.UserStatusApproved)
	contract := helpers.CreateContract(t, ts.DB, employer.ID, candidate.ID, models.ContractStatusCompleted)

	_, body := ts.SendRequest(t, "POST", "/api/v1/reviews", candidateToken, map[string]interface{}{
		"contract_id": contract.ID,
		"rating":      2,
		"comment":     "Disputed review",
	})
	var review struct {
		ID string `json:"id"`
	}
	helpers.DecodeJSON(t, body, &review)

	res, _ := ts.SendRequest(t, "DELETE", "/api/v1/reviews/"+review.ID, candidateToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	_, adminToken := helpers.CreateAndLoginUser(t, ts, models.UserRoleAdmin, models.UserStatusApproved)
	res2, _ := ts.SendRequest(t, "DELETE", "/api/v1/reviews/"+review.ID, adminToken, nil)
	assert.Equal(t, http.StatusNoContent, res2.StatusCode)
}
