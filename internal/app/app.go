package app

import (
	"context"
	"fmt"

	"seniorwork_backend/database"
	"seniorwork_backend/internal/auth"
	"seniorwork_backend/internal/config"
	"seniorwork_backend/internal/email"
	"seniorwork_backend/internal/handlers"
	"seniorwork_backend/internal/logger"
	"seniorwork_backend/internal/models"
	"seniorwork_backend/internal/repositories"
	"seniorwork_backend/internal/routes"
	"seniorwork_backend/internal/services"
	"seniorwork_backend/internal/validator"
	"seniorwork_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// App holds the wired application.
type App struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Services *services.ServiceContainer
}

// New builds the application: DB connection, migrations, repositories,
// services, handlers and routes.
func New() (*App, error) {
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
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

	emailProvider := newEmailProvider(cfg)
	container := services.NewServiceContainer(repos, emailProvider)

	if err := seedFirstAdmin(db, cfg); err != nil {
		return nil, fmt.Errorf("seed first admin: %w", err)
	}

	v := validator.New()
	appHandlers := handlers.NewAppHandlers(container, v)
	router := routes.SetupRouter(db, appHandlers)

	return &App{
		DB:       db,
		Router:   router,
		Services: container,
	}, nil
}

// Run starts the background workers and the HTTP server, blocking until the
// server exits.
func (a *App) Run(ctx context.Context) error {
	cfg := config.GetConfig()

	workers.NewJobWorker(repositories.NewJobRepository(a.DB)).Start(ctx)
	workers.NewCleanupWorker(
		repositories.NewRefreshTokenRepository(a.DB),
		repositories.NewNotificationRepository(a.DB),
	).Start(ctx)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr, "env", cfg.Server.Env)
	return a.Router.Run(addr)
}

// newEmailProvider returns the SMTP provider when configured, otherwise a
// no-op provider so local development works without a mail server.
func newEmailProvider(cfg *config.Config) email.Provider {
	smtpCfg := &email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}

	provider, err := email.NewSMTPProvider(smtpCfg)
	if err != nil {
		logger.Warn("smtp not configured, emails disabled", "reason", err.Error())
		return NewNoopEmailProvider()
	}
	return provider
}

// seedFirstAdmin creates the initial admin account when configured and no
// admin exists yet. Admins are never created through registration.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hash, err := auth.HashPassword(cfg.FirstAdminPassword)
		if err != nil {
			return err
		}

		admin := &models.User{
			Email:        cfg.FirstAdminEmail,
			PasswordHash: hash,
			Name:         "Administrator",
			Role:         models.UserRoleAdmin,
			Status:       models.UserStatusApproved,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		logger.Info("seeded first admin", "email", cfg.FirstAdminEmail)
		return nil
	})
}
