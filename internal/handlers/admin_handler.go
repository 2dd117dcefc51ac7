package handlers

import (
	"seniorwork_backend/internal/middleware"
	"seniorwork_backend/internal/models"
	"seniorwork_backend/internal/services"
	"seniorwork_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	BaseHandler
	userService         *services.UserService
	notificationService *services.NotificationService
}

func NewAdminHandler(
	base BaseHandler,
	userService *services.UserService,
	notificationService *services.NotificationService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:         base,
		userService:         userService,
		notificationService: notificationService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/users", h.ListUsers)
		admin.PUT("/users/:id/status", h.UpdateUserStatus)
		admin.DELETE("/users/:id", h.DeleteUser)
		admin.GET("/stats", h.Stats)
		admin.POST("/notifications/broadcast", h.Broadcast)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var query dto.ListUsersQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.PageSize = h.ParsePagination(c)

	items, pagination, err := h.userService.ListUsers(caller, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, dto.ListResponse[dto.UserResponse]{Items: items, Pagination: pagination})
}

func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateUserStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUserStatus(caller, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(caller, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	stats, err := h.userService.PlatformStats(caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, stats)
}

func (h *AdminHandler) Broadcast(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var req dto.BroadcastRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	count, err := h.notificationService.Broadcast(caller, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"recipients": count})
}
