package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"seniorwork_backend/internal/auth"
	"seniorwork_backend/internal/config"
	"seniorwork_backend/internal/email"
	"seniorwork_backend/internal/logger"
	"seniorwork_backend/internal/models"
	"seniorwork_backend/internal/repositories"
	"seniorwork_backend/internal/services/dto"
	"seniorwork_backend/pkg/apperrors"
)

type AuthService struct {
	userRepo            repositories.UserRepository
	refreshTokenRepo    repositories.RefreshTokenRepository
	notificationService *NotificationService
	emailProvider       email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	notificationService *NotificationService,
	emailProvider email.Provider,
) *AuthService {
	return &AuthService{
		userRepo:            userRepo,
		refreshTokenRepo:    refreshTokenRepo,
		notificationService: notificationService,
		emailProvider:       emailProvider,
	}
}

// Register creates a pending account. New candidates and employers cannot
// act until an admin approves them, but they can log in and see their status.
func (s *AuthService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.UserRole(req.Role)
	if role != models.UserRoleCandidate && role != models.UserRoleEmployer {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         role,
		Status:       models.UserStatusPending,
	}

	if err := s.userRepo.Create(user); err != nil {
		if err == repositories.ErrUserAlreadyExists {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.notificationService.NotifyAdmins(
		models.NotificationTypeInfo,
		"New registration pending review",
		user.Name+" ("+string(user.Role)+") is waiting for account approval.",
		"/admin/users?status=pending",
	)

	if err := s.emailProvider.SendWelcome(user.Email, user.Name, string(user.Role)); err != nil {
		logger.WithError(err).Warn("failed to send welcome email", "user_id", user.ID)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh rotates the refresh token: the presented token is consumed and a
// new pair is issued. A reused token therefore fails.
func (s *AuthService) Refresh(req dto.RefreshRequest) (*dto.AuthResponse, error) {
	stored, err := s.refreshTokenRepo.FindByToken(req.RefreshToken)
	if err != nil {
		if err == repositories.ErrRefreshTokenNotFound {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.refreshTokenRepo.DeleteByToken(stored.Token)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.refreshTokenRepo.DeleteByToken(stored.Token); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Logout(req dto.LogoutRequest) error {
	err := s.refreshTokenRepo.DeleteByToken(req.RefreshToken)
	if err != nil && err != repositories.ErrRefreshTokenNotFound {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	record := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().AddDate(0, 0, cfg.JWT.RefreshTTLDay),
	}
	if err := s.refreshTokenRepo.Create(record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewAuthResponse(accessToken, refreshToken, user)
	return &resp, nil
}

func generateRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
