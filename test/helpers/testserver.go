package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"seniorwork_backend/database"
	"seniorwork_backend/internal/app"
	"seniorwork_backend/internal/config"
	"seniorwork_backend/internal/handlers"
	"seniorwork_backend/internal/logger"
	"seniorwork_backend/internal/repositories"
	"seniorwork_backend/internal/routes"
	"seniorwork_backend/internal/services"
	"seniorwork_backend/internal/validator"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer wraps an httptest server backed by the real router and a test
// database.
type TestServer struct {
	Server   *httptest.Server
	DB       *gorm.DB
	Services *services.ServiceContainer
}

// NewTestServer connects to the test database from DATABASE_URL, migrates
// the schema and starts the full HTTP stack with emails suppressed.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init("test")

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	repos := services.Repositories{
		User:         repositories.NewUserRepository(db),
		RefreshToken: repositories.NewRefreshTokenRepository(db),
		Job:          repositories.NewJobRepository(db),
		SavedJob:     repositories.NewSavedJobRepository(db),
		Application:  repositories.NewApplicationRepository(db),
		Notification: repositories.NewNotificationRepository(db),
		Message:      repositories.NewMessageRepository(db),
		Contract:     repositories.NewContractRepository(db),
		Review:       repositories.NewReviewRepository(db),
	}

	container := services.NewServiceContainer(repos, app.NewNoopEmailProvider())
	appHandlers := handlers.NewAppHandlers(container, validator.New())
	router := routes.SetupRouter(db, appHandlers)

	return &TestServer{
		Server:   httptest.NewServer(router),
		DB:       db,
		Services: container,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ResetTables truncates all tables between test groups.
func (ts *TestServer) ResetTables(t *testing.T) {
	err := ts.DB.Exec(`TRUNCATE TABLE
		reviews, time_entries, invoices, contracts,
		messages, notifications, applications, saved_jobs, jobs,
		refresh_tokens, users
		RESTART IDENTITY CASCADE`).Error
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// SendRequest performs an HTTP request against the test server and returns
// the response plus its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	bodyBytes, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(bodyBytes)
}

// DecodeJSON unmarshals a response body into out.
func DecodeJSON(t *testing.T, body string, out interface{}) {
	if err := json.Unmarshal([]byte(body), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", body, err)
	}
}
