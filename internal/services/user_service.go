package services

import (
	"seniorwork_backend/internal/auth"
	"seniorwork_backend/internal/email"
	"seniorwork_backend/internal/logger"
	"seniorwork_backend/internal/models"
	"seniorwork_backend/internal/repositories"
	"seniorwork_backend/internal/services/dto"
	"seniorwork_backend/pkg/apperrors"
)

type UserService struct {
	userRepo            repositories.UserRepository
	refreshTokenRepo    repositories.RefreshTokenRepository
	jobRepo             repositories.JobRepository
	applicationRepo     repositories.ApplicationRepository
	notificationService *NotificationService
	emailProvider       email.Provider
}

func NewUserService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	notificationService *NotificationService,
	emailProvider email.Provider,
) *UserService {
	return &UserService{
		userRepo:            userRepo,
		refreshTokenRepo:    refreshTokenRepo,
		jobRepo:             jobRepo,
		applicationRepo:     applicationRepo,
		notificationService: notificationService,
		emailProvider:       emailProvider,
	}
}

// LoadCaller resolves the authenticated principal for authorization checks.
// Status always comes from the database, never from the token, so an admin
// decision applies to the very next request.
func (s *UserService) LoadCaller(userID string) (auth.Caller, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return auth.Caller{}, apperrors.ErrInvalidToken
		}
		return auth.Caller{}, apperrors.InternalError(err)
	}
	return auth.CallerFromUser(user), nil
}

func (s *UserService) GetProfile(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewProfileResponse(user)
	return &resp, nil
}

// GetPublicProfile returns the public projection of any user.
func (s *UserService) GetPublicProfile(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.BirthYear != nil {
		fields["birth_year"] = *req.BirthYear
	}
	if req.Skills != nil {
		fields["skills"] = *req.Skills
	}
	if req.Experience != nil {
		fields["experience"] = *req.Experience
	}
	if req.Education != nil {
		fields["education"] = *req.Education
	}
	if req.Preferences != nil {
		fields["preferences"] = *req.Preferences
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateProfile(userID, fields); err != nil {
			if err == repositories.ErrUserNotFound {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
	}

	return s.GetProfile(userID)
}

func (s *UserService) ChangePassword(userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateProfile(userID, map[string]interface{}{"password_hash": hash}); err != nil {
		return apperrors.InternalError(err)
	}

	// Existing sessions are revoked after a password change.
	if err := s.refreshTokenRepo.DeleteByUser(userID); err != nil {
		logger.WithError(err).Warn("failed to revoke refresh tokens", "user_id", userID)
	}
	return nil
}

// --- admin operations ---

func (s *UserService) ListUsers(caller auth.Caller, query dto.ListUsersQuery) ([]dto.UserResponse, dto.Pagination, error) {
	if err := auth.Authorize(caller, auth.ActionAdminUsers); err != nil {
		return nil, dto.Pagination{}, err
	}

	criteria := repositories.UserFilter{
		Role:     models.UserRole(query.Role),
		Status:   models.UserStatus(query.Status),
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	users, total, err := s.userRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return items, dto.NewPagination(query.Page, query.PageSize, total), nil
}

// UpdateUserStatus is the approval workflow: an admin moves an account
// between pending, approved and rejected. The user is notified in-app and
// by email.
func (s *UserService) UpdateUserStatus(caller auth.Caller, userID string, req dto.UpdateUserStatusRequest) (*dto.UserResponse, error) {
	if err := auth.Authorize(caller, auth.ActionAdminUsers); err != nil {
		return nil, err
	}
	if caller.ID == userID {
		return nil, apperrors.ErrCannotModifySelf
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role == models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	status := models.UserStatus(req.Status)
	if err := s.userRepo.UpdateStatus(userID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.Status = status

	switch status {
	case models.UserStatusApproved:
		s.notificationService.NotifyUser(userID, models.NotificationTypeSuccess,
			"Account approved",
			"Your account has been approved. You can now use the platform.",
			"/dashboard", "Go to dashboard")
		if err := s.emailProvider.SendAccountDecision(user.Email, user.Name, true); err != nil {
			logger.WithError(err).Warn("failed to send approval email", "user_id", userID)
		}
	case models.UserStatusRejected:
		s.notificationService.NotifyUser(userID, models.NotificationTypeError,
			"Account rejected",
			"Your account application was not approved.",
			"", "")
		if err := s.emailProvider.SendAccountDecision(user.Email, user.Name, false); err != nil {
			logger.WithError(err).Warn("failed to send rejection email", "user_id", userID)
		}
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) DeleteUser(caller auth.Caller, userID string) error {
	if err := auth.Authorize(caller, auth.ActionAdminUsers); err != nil {
		return err
	}
	if caller.ID == userID {
		return apperrors.ErrCannotModifySelf
	}

	err := s.userRepo.Delete(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserService) PlatformStats(caller auth.Caller) (*dto.PlatformStatsResponse, error) {
	if err := auth.Authorize(caller, auth.ActionAdminStats); err != nil {
		return nil, err
	}

	usersByStatus, err := s.userRepo.CountByStatus()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	activeJobs, err := s.jobRepo.CountActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	appsByStatus, err := s.applicationRepo.CountByStatus()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.PlatformStatsResponse{
		UsersByStatus:        make(map[models.UserStatus]int64, len(usersByStatus)),
		ActiveJobs:           activeJobs,
		ApplicationsByStatus: appsByStatus,
	}
	for status, count := range usersByStatus {
		stats.UsersByStatus[models.UserStatus(status)] = count
	}
	return stats, nil
}
