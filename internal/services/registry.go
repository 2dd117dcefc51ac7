package services

import (
	"seniorwork_backend/internal/email"
	"seniorwork_backend/internal/repositories"
)

// ServiceContainer wires every service onto the shared repositories.
type ServiceContainer struct {
	Auth         *AuthService
	User         *UserService
	Job          *JobService
	Application  *ApplicationService
	Notification *NotificationService
	Message      *MessageService
	Contract     *ContractService
	Review       *ReviewService
}

type Repositories struct {
	User         repositories.UserRepository
	RefreshToken repositories.RefreshTokenRepository
	Job          repositories.JobRepository
	SavedJob     repositories.SavedJobRepository
	Application  repositories.ApplicationRepository
	Notification repositories.NotificationRepository
	Message      repositories.MessageRepository
	Contract     repositories.ContractRepository
	Review       repositories.ReviewRepository
}

func NewServiceContainer(repos Repositories, emailProvider email.Provider) *ServiceContainer {
	notification := NewNotificationService(repos.Notification, repos.User)

	return &ServiceContainer{
		Auth:         NewAuthService(repos.User, repos.RefreshToken, notification, emailProvider),
		User:         NewUserService(repos.User, repos.RefreshToken, repos.Job, repos.Application, notification, emailProvider),
		Job:          NewJobService(repos.Job, repos.SavedJob),
		Application:  NewApplicationService(repos.Application, repos.Job, repos.User, notification),
		Notification: notification,
		Message:      NewMessageService(repos.Message, repos.User, notification),
		Contract:     NewContractService(repos.Contract, repos.User, notification),
		Review:       NewReviewService(repos.Review, repos.Contract, notification),
	}
}
