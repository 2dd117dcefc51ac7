package dto

import (
	"time"

	"seniorwork_backend/internal/models"

	"gorm.io/datatypes"
)

// UserResponse is the public projection of a user. The password hash never
// leaves the models layer, but keeping an explicit DTO also pins the wire
// shape independently of model changes.
type UserResponse struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	Role      models.UserRole   `json:"role"`
	Status    models.UserStatus `json:"status"`
	Bio       string            `json:"bio,omitempty"`
	Location  string            `json:"location,omitempty"`
	BirthYear *int              `json:"birth_year,omitempty"`
	Skills    datatypes.JSON    `json:"skills,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		Status:    user.Status,
		Bio:       user.Bio,
		Location:  user.Location,
		BirthYear: user.BirthYear,
		Skills:    user.Skills,
		CreatedAt: user.CreatedAt,
	}
}

// ProfileResponse adds the private profile sections the owner (or an admin)
// may see.
type ProfileResponse struct {
	UserResponse
	Experience  datatypes.JSON `json:"experience,omitempty"`
	Education   datatypes.JSON `json:"education,omitempty"`
	Preferences datatypes.JSON `json:"preferences,omitempty"`
}

func NewProfileResponse(user *models.User) ProfileResponse {
	return ProfileResponse{
		UserResponse: NewUserResponse(user),
		Experience:   user.Experience,
		Education:    user.Education,
		Preferences:  user.Preferences,
	}
}

type UpdateProfileRequest struct {
	Name        *string         `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Bio         *string         `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Location    *string         `json:"location,omitempty" validate:"omitempty,max=200"`
	BirthYear   *int            `json:"birth_year,omitempty" validate:"omitempty,min=1900,max=2100"`
	Skills      *datatypes.JSON `json:"skills,omitempty"`
	Experience  *datatypes.JSON `json:"experience,omitempty"`
	Education   *datatypes.JSON `json:"education,omitempty"`
	Preferences *datatypes.JSON `json:"preferences,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type ListUsersQuery struct {
	Role     string `form:"role" validate:"omitempty,is-user-role"`
	Status   string `form:"status" validate:"omitempty,is-user-status"`
	Search   string `form:"q"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected pending"`
}

// PlatformStatsResponse backs the admin dashboard.
type PlatformStatsResponse struct {
	UsersByStatus        map[models.UserStatus]int64        `json:"users_by_status"`
	ActiveJobs           int64                              `json:"active_jobs"`
	ApplicationsByStatus map[models.ApplicationStatus]int64 `json:"applications_by_status"`
}
