package handlers

import (
	"seniorwork_backend/internal/services"
	"seniorwork_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Admin        *AdminHandler
	Job          *JobHandler
	Application  *ApplicationHandler
	Notification *NotificationHandler
	Message      *MessageHandler
	Contract     *ContractHandler
	Review       *ReviewHandler
	Health       *HealthHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v, container.User)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, container.Auth),
		User:         NewUserHandler(base, container.User),
		Admin:        NewAdminHandler(base, container.User, container.Notification),
		Job:          NewJobHandler(base, container.Job),
		Application:  NewApplicationHandler(base, container.Application),
		Notification: NewNotificationHandler(base, container.Notification),
		Message:      NewMessageHandler(base, container.Message),
		Contract:     NewContractHandler(base, container.Contract),
		Review:       NewReviewHandler(base, container.Review),
		Health:       NewHealthHandler(),
	}
}

// RegisterAll mounts every handler under the given group.
func (h *AppHandlers) RegisterAll(r *gin.RouterGroup) {
	h.Auth.RegisterRoutes(r)
	h.User.RegisterRoutes(r)
	h.Admin.RegisterRoutes(r)
	h.Job.RegisterRoutes(r)
	h.Application.RegisterRoutes(r)
	h.Notification.RegisterRoutes(r)
	h.Message.RegisterRoutes(r)
	h.Contract.RegisterRoutes(r)
	h.Review.RegisterRoutes(r)
}
