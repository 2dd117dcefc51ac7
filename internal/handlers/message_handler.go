package handlers

import (
	"seniorwork_backend/internal/middleware"
	"seniorwork_backend/internal/services"
	"seniorwork_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	BaseHandler
	messageService *services.MessageService
}

func NewMessageHandler(base BaseHandler, messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{BaseHandler: base, messageService: messageService}
}

func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup) {
	messages := r.Group("/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.POST("", h.Send)
		messages.GET("/conversations", h.ListConversations)
		messages.GET("/unread-count", h.UnreadCount)
		messages.GET("/:peer_id", h.ListThread)
	}
}

func (h *MessageHandler) Send(c *gin.Context) {
	caller, ok := h.LoadCaller(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message, err := h.messageService.Send(caller, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, message)
}

func (h *MessageHandler) ListConversations(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	conversations, err := h.messageService.ListConversations(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"conversations": conversations})
}

func (h *MessageHandler) ListThread(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	page, pageSize := h.ParsePagination(c)
	items, pagination, err := h.messageService.ListThread(userID, c.Param("peer_id"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, dto.ListResponse[dto.MessageResponse]{Items: items, Pagination: pagination})
}

func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	count, err := h.messageService.UnreadCount(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, dto.UnreadCountResponse{Count: count})
}
