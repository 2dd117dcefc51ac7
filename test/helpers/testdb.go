package helpers

import (
	"fmt"
	"testing"

	"seniorwork_backend/internal/auth"
	"seniorwork_backend/internal/models"

	"gorm.io/gorm"
)

const TestPassword = "test-password-123"

var userSeq int

// CreateUser inserts a user with a real bcrypt hash so login works.
func CreateUser(t *testing.T, db *gorm.DB, role models.UserRole, status models.UserStatus) *models.User {
	hash, err := auth.HashPassword(TestPassword)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	userSeq++
	user := &models.User{
		Email:        fmt.Sprintf("user%d@test.local", userSeq),
		PasswordHash: hash,
		Name:         fmt.Sprintf("Test User %d", userSeq),
		Role:         role,
		Status:       status,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// Login returns an access token for the given user.
func Login(t *testing.T, ts *TestServer, user *models.User) string {
	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": TestPassword,
	})
	if res.StatusCode != 200 {
		t.Fatalf("login failed for %s: %s", user.Email, body)
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	DecodeJSON(t, body, &resp)
	return resp.AccessToken
}

// CreateAndLoginUser combines CreateUser and Login.
func CreateAndLoginUser(t *testing.T, ts *TestServer, role models.UserRole, status models.UserStatus) (*models.User, string) {
	user := CreateUser(t, ts.DB, role, status)
	return user, Login(t, ts, user)
}

// CreateJob inserts an active job for the employer.
func CreateJob(t *testing.T, db *gorm.DB, employerID, title string) *models.Job {
	job := &models.Job{
		EmployerID:  employerID,
		Title:       title,
		Company:     "Test Company",
		Location:    "Berlin",
		JobType:     models.JobTypePartTime,
		Category:    "retail",
		Description: "Test description",
		IsActive:    true,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("failed to create test job: %v", err)
	}
	return job
}

// CreateContract inserts a contract in the given status.
func CreateContract(t *testing.T, db *gorm.DB, employerID, candidateID string, status models.ContractStatus) *models.Contract {
	contract := &models.Contract{
		EmployerID:  employerID,
		CandidateID: candidateID,
		Title:       "Test Contract",
		HourlyRate:  25,
		Status:      status,
	}
	if err := db.Create(contract).Error; err != nil {
		t.Fatalf("failed to create test contract: %v", err)
	}
	return contract
}
